package resource

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<div>\xff</div>"), 0o644))
	f := NewFetcher(time.Second)
	for _, uri := range []string{path, "file://" + path} {
		body, err := f.Fetch(context.Background(), uri)
		require.NoError(t, err)
		assert.Equal(t, "<div>\uFFFD</div>", body)
	}
	_, err := f.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetcher_Network(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()
	go func() {
		buf := make([]byte, 1024)
		_, addr, err := pc.ReadFrom(buf)
		if err == nil {
			pc.WriteTo([]byte("HTTP/1.1 200 OK\r\n\r\n"+DefaultDocument[:200]), addr)
		}
	}()
	body, err := NewFetcher(5*time.Second).Fetch(context.Background(), "http://"+pc.LocalAddr().String()+"/index.html")
	require.NoError(t, err)
	assert.Equal(t, DefaultDocument[:200], body)
}

func TestFetcher_NetworkTimeout(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()
	start := time.Now()
	_, err = NewFetcher(50*time.Millisecond).Fetch(context.Background(), "http://"+pc.LocalAddr().String()+"/")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
