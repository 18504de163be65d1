package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
)

const maxScriptSize = 1 << 20

// loadScript reads a replay script from a file or an http(s) URL.
func loadScript(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, swipecell.NewInfrastructureError("read_script", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, swipecell.NewInfrastructureError("fetch_script", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, swipecell.NewInfrastructureError("fetch_script", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, swipecell.NewInfrastructureError("fetch_script", fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize+1))
	if err != nil {
		return nil, swipecell.NewInfrastructureError("fetch_script", err)
	}
	if len(data) > maxScriptSize {
		return nil, swipecell.NewInfrastructureError("fetch_script", fmt.Errorf("script larger than %d bytes", maxScriptSize))
	}
	return data, nil
}
