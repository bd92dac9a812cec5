package net

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve answers one request datagram with response and reports the
// request it received.
func serve(t *testing.T, response []byte) (string, <-chan string) {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { pc.Close() })
	requests := make(chan string, 1)
	go func() {
		buf := make([]byte, 2048)
		n, addr, err := pc.ReadFrom(buf)
		if err != nil {
			close(requests)
			return
		}
		requests <- string(buf[:n])
		if response != nil {
			pc.WriteTo(response, addr)
		}
	}()
	return pc.LocalAddr().String(), requests
}

func TestFetch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webling.net")
	defer teardown()
	//
	addr, requests := serve(t, []byte("HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n<body>hällo</body>"))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	body, err := Fetch(ctx, "http://"+addr+"/index.html?x=1")
	require.NoError(t, err)
	assert.Equal(t, "<body>hällo</body>", body)
	assert.Equal(t, "GET /index.html?x=1 HTTP/1.1\r\nHost: "+addr+"\r\n\r\n", <-requests)
}

func TestFetch_TooLarge(t *testing.T) {
	addr, _ := serve(t, []byte(strings.Repeat("x", MaxDatagramSize+1)))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Fetch(ctx, "http://"+addr+"/")
	assert.ErrorIs(t, err, ErrDatagramTooLarge)
}

func TestFetch_LargestDatagram(t *testing.T) {
	addr, _ := serve(t, []byte(strings.Repeat("y", MaxDatagramSize)))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	body, err := Fetch(ctx, "http://"+addr+"/")
	require.NoError(t, err)
	assert.Len(t, body, MaxDatagramSize)
}

func TestFetch_Timeout(t *testing.T) {
	addr, _ := serve(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := Fetch(ctx, "http://"+addr+"/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestFetch_Scheme(t *testing.T) {
	_, err := Fetch(context.Background(), "ftp://127.0.0.1/index.html")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestBody(t *testing.T) {
	assert.Equal(t, "body", Body([]byte("HTTP/1.1 200 OK\r\n\r\nbody")))
	assert.Equal(t, "body", Body([]byte("HTTP/1.1 200 OK\n\nbody")))
	assert.Equal(t, "<html></html>", Body([]byte("<html></html>")), "no header block")
	assert.Equal(t, "a\uFFFDb", Body([]byte("a\xffb")))
	assert.Equal(t, "", Body([]byte("HTTP/1.1 204 No Content\r\n\r\n")))
}

func TestRequest(t *testing.T) {
	u, err := url.Parse("http://example.org")
	require.NoError(t, err)
	assert.Equal(t, "GET / HTTP/1.1\r\nHost: example.org\r\n\r\n", string(Request(u)))
}

func TestIsNetworkURL(t *testing.T) {
	assert.True(t, IsNetworkURL("http://127.0.0.1:8888/index.html"))
	assert.False(t, IsNetworkURL("index.html"))
	assert.False(t, IsNetworkURL("file:///tmp/x.html"))
}
