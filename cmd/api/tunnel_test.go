package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTunnelURL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tunnels", r.URL.Path)
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
	}))
	defer srv.Close()

	url, err := detectTunnelURL(context.Background(), srv.URL, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "https://a.ngrok.io", url)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDetectTunnelURL_NoTunnel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer srv.Close()

	_, err := detectTunnelURL(context.Background(), srv.URL, time.Millisecond)
	assert.ErrorContains(t, err, "no active tunnel")
}

func TestDetectTunnelURL_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := detectTunnelURL(ctx, "http://127.0.0.1:1", time.Second)
	assert.Error(t, err)
}
