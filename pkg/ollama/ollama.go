package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type ollamaImpl struct {
	baseURL    string
	model      string
	healthTTL  time.Duration
	httpClient *http.Client
	breaker    *circuitBreaker

	checks    singleflight.Group
	mu        sync.Mutex
	available bool
	checkedAt time.Time
	now       func() time.Time
}

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		healthTTL:  cfg.HealthTTL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    newCircuitBreaker(cfg.MaxFailures, cfg.OpenTimeout),
		now:        time.Now,
	}
}

func (c *ollamaImpl) Model() string {
	return c.model
}

func (c *ollamaImpl) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	req.Stream = false

	result, err := c.breaker.execute(func() (interface{}, error) {
		return c.chat(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*ChatResponse), nil
}

func (c *ollamaImpl) chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(raw))
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}
	return &out, nil
}

func (c *ollamaImpl) ListModels(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func (c *ollamaImpl) Available(ctx context.Context) bool {
	if c.breaker.open() {
		return false
	}

	if available, fresh := c.cached(); fresh {
		return available
	}

	// Concurrent callers share one check; the lock only guards the cached result.
	v, _, _ := c.checks.Do(checkKey, func() (any, error) {
		checkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), checkTimeout)
		defer cancel()

		available := c.check(checkCtx)
		c.mu.Lock()
		c.available = available
		c.checkedAt = c.now()
		c.mu.Unlock()
		return available, nil
	})
	return v.(bool)
}

func (c *ollamaImpl) cached() (available, fresh bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkedAt.IsZero() || c.now().Sub(c.checkedAt) >= c.healthTTL {
		return false, false
	}
	return c.available, true
}

func (c *ollamaImpl) check(ctx context.Context) bool {
	names, err := c.ListModels(ctx)
	if err != nil {
		return false
	}
	for _, name := range names {
		if name == c.model || name == c.model+latestTag {
			return true
		}
	}
	return false
}
