package registry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vango-dev/elements/internal/errors"
)

// DefaultClient is used by Fetch when no client is given.
var DefaultClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads and validates the manifest published at url.
func Fetch(ctx context.Context, client *http.Client, url string) (*Manifest, error) {
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New("E140").Wrap(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.New("E140").
			WithDetail("Could not connect to registry: " + err.Error()).
			WithSuggestion("Check your internet connection or the registry url in elements.json")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("E140").
			WithDetail(fmt.Sprintf("Registry returned status %d", resp.StatusCode))
	}
	return Decode(resp.Body)
}
