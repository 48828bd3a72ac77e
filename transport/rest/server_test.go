package rest

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe4x4/internal/repository"
	"github.com/rocketscienceinc/tictactoe4x4/internal/service"
	"github.com/rocketscienceinc/tictactoe4x4/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Shutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, "test", repository.NewMemoryGameRepository(), service.NewBotService(), nil)
	server := New(logger, nil, manager)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	url := "http://" + listener.Addr().String() + "/ping"

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(listener)
	}()

	client := &http.Client{Timeout: time.Second}

	// Given: the server answers
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	// When: shutting down
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	// Then: Serve returns without an error
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}

	// Then: the port no longer answers
	client.Transport = &http.Transport{DisableKeepAlives: true}
	_, err = client.Get(url)
	assert.Error(t, err)
}
