package server_test

import (
	"crypto/x509"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authgate/core/server"
)

func TestSelfSignedCertificateDNSName(t *testing.T) {
	t.Parallel()

	cert, err := server.SelfSignedCertificate("auth.example.com")
	require.NoError(t, err)
	require.Len(t, cert.Certificate, 1)

	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"auth.example.com"}, parsed.DNSNames)
	assert.Equal(t, "auth.example.com", parsed.Subject.CommonName)
	assert.NoError(t, parsed.VerifyHostname("auth.example.com"))
	assert.True(t, parsed.NotAfter.After(time.Now().Add(300*24*time.Hour)))
}

func TestSelfSignedCertificateIPHost(t *testing.T) {
	t.Parallel()

	cert, err := server.SelfSignedCertificate("127.0.0.1")
	require.NoError(t, err)

	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	require.Len(t, parsed.IPAddresses, 1)
	assert.True(t, parsed.IPAddresses[0].Equal(net.ParseIP("127.0.0.1")))
	assert.Empty(t, parsed.DNSNames)
}

func TestSelfSignedCertificateRequiresHost(t *testing.T) {
	t.Parallel()

	_, err := server.SelfSignedCertificate("")
	assert.Error(t, err)
}

func TestSelfSignedTLSConfig(t *testing.T) {
	t.Parallel()

	cfg, err := server.SelfSignedTLSConfig("localhost")
	require.NoError(t, err)
	assert.Len(t, cfg.Certificates, 1)
	assert.GreaterOrEqual(t, cfg.MinVersion, uint16(0x0303)) // TLS 1.2
}
