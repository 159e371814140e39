package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	tunnelAttempts = 10
	tunnelInterval = 3 * time.Second
	tunnelTimeout  = 5 * time.Second
)

type tunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectTunnelURL asks the local ngrok API for a public URL, preferring HTTPS.
// ngrok may still be starting, so the lookup is retried.
func detectTunnelURL(ctx context.Context, apiBase string, interval time.Duration) (string, error) {
	client := &http.Client{Timeout: tunnelTimeout}

	var lastErr error
	for attempt := 1; attempt <= tunnelAttempts; attempt++ {
		url, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err

		if attempt == tunnelAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("tunnel API not usable after %d attempts: %w", tunnelAttempts, lastErr)
	}
	return "", fmt.Errorf("no active tunnel after %d attempts", tunnelAttempts)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels tunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
