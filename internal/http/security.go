// ABOUTME: Hardened HTTP transport shared by the chat server client
// ABOUTME: Bounds dial and TLS handshake time and requires TLS 1.2+; response time is left to callers

package http

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// SecureTransport returns a transport with connection-level timeouts.
// There is no response header timeout: LLM answers can take minutes, so
// callers bound exchanges with a context instead.
func SecureTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 4,
	}
}
