// ABOUTME: Tests for the hardened transport settings
// ABOUTME: Guards TLS minimum version and the absence of a response header timeout

package http

import (
	"crypto/tls"
	"testing"
)

func TestSecureTransport(t *testing.T) {
	tr := SecureTransport()

	if tr.TLSClientConfig == nil || tr.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %v; want TLS 1.2", tr.TLSClientConfig)
	}
	if tr.TLSHandshakeTimeout == 0 {
		t.Error("TLSHandshakeTimeout not set")
	}
	if tr.ResponseHeaderTimeout != 0 {
		t.Errorf("ResponseHeaderTimeout = %v; long answers need none", tr.ResponseHeaderTimeout)
	}
	if tr.Proxy == nil {
		t.Error("proxy environment ignored")
	}
	if tr.DialContext == nil {
		t.Error("DialContext not set")
	}
}
