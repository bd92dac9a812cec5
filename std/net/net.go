/*
Package net fetches documents with a single request/response datagram
exchange.

The request is an HTTP/1.1 GET sent as one UDP datagram to the host and
port of the URL. The server answers with one datagram of at most
MaxDatagramSize bytes, an HTTP-style response whose body follows the
header block.
*/
package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// MaxDatagramSize is the largest response accepted by Fetch.
const MaxDatagramSize = 1000

var (
	// ErrDatagramTooLarge is returned for responses exceeding MaxDatagramSize.
	ErrDatagramTooLarge = errors.New("response datagram too large")
	// ErrUnsupportedScheme is returned for URLs other than http.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
)

// tracer traces with key 'webling.net'.
func tracer() tracing.Trace {
	return tracing.Select("webling.net")
}

// Fetch requests rawURL and returns the response body decoded as UTF-8.
// Invalid byte sequences are replaced by U+FFFD. The deadline of ctx
// bounds the whole exchange; cancelling ctx aborts it.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", rawURL, err)
	}
	if u.Scheme != "http" {
		return "", fmt.Errorf("fetching %s: %w %q", rawURL, ErrUnsupportedScheme, u.Scheme)
	}
	addr := u.Host
	if u.Port() == "" {
		addr = net.JoinHostPort(u.Hostname(), "80")
	}
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "udp", addr)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	req := Request(u)
	tracer().Debugf("net: sending %d bytes to %s", len(req), addr)
	if _, err := conn.Write(req); err != nil {
		return "", fmt.Errorf("sending request to %s: %w", addr, err)
	}
	buf := make([]byte, MaxDatagramSize+1)
	n, err := conn.Read(buf)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		} else if errors.Is(err, os.ErrDeadlineExceeded) {
			err = context.DeadlineExceeded
		}
		return "", fmt.Errorf("reading response from %s: %w", addr, err)
	}
	if n > MaxDatagramSize {
		return "", fmt.Errorf("reading response from %s: %w", addr, ErrDatagramTooLarge)
	}
	tracer().Debugf("net: received %d bytes from %s", n, addr)
	return Body(buf[:n]), nil
}

// Request builds the request datagram for u.
func Request(u *url.URL) []byte {
	path := u.RequestURI()
	return []byte("GET " + path + " HTTP/1.1\r\nHost: " + u.Host + "\r\n\r\n")
}

// Body extracts the body of a response datagram. Without a header
// separator the whole datagram is the body.
func Body(resp []byte) string {
	s := string(resp)
	if i := strings.Index(s, "\r\n\r\n"); i >= 0 {
		s = s[i+4:]
	} else if i := strings.Index(s, "\n\n"); i >= 0 {
		s = s[i+2:]
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}

// IsNetworkURL returns true if the string looks like an HTTP URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://")
}
