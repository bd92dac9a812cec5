package resource

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	stdnet "webling/std/net"
)

// Fetcher retrieves documents by URI.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (string, error)
}

// DefaultFetcher fetches http URLs with a datagram exchange and reads
// everything else from the local file system.
type DefaultFetcher struct {
	timeout time.Duration
}

// NewFetcher creates a DefaultFetcher. A positive timeout bounds each
// network fetch.
func NewFetcher(timeout time.Duration) *DefaultFetcher {
	return &DefaultFetcher{timeout: timeout}
}

// Fetch retrieves the document at uri.
func (f *DefaultFetcher) Fetch(ctx context.Context, uri string) (string, error) {
	if !stdnet.IsNetworkURL(uri) {
		path := strings.TrimPrefix(uri, "file://")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return strings.ToValidUTF8(string(data), "\uFFFD"), nil
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	tracer().Infof("fetching %s", uri)
	return stdnet.Fetch(ctx, uri)
}
