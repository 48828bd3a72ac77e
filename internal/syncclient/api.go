package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

// GameAPI is the request/response contract of the authoritative game service.
type GameAPI interface {
	StartGame(ctx context.Context) (entity.GameState, error)
	GameState(ctx context.Context) (entity.GameState, error)
	MakeMove(ctx context.Context, position int) (entity.MoveResult, error)
	MakeOpponentMove(ctx context.Context, difficulty entity.Difficulty) (entity.MoveResult, error)
}

type APIOptions struct {
	RequestTimeout time.Duration
	MaxRetries     uint64
}

type httpAPI struct {
	baseURL string
	client  *http.Client
	opts    APIOptions
}

// NewHTTPAPI talks to the REST service at baseURL. Reads and game starts are retried with
// exponential backoff; move submissions are sent exactly once.
func NewHTTPAPI(baseURL string, opts APIOptions) GameAPI {
	return &httpAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: opts.RequestTimeout},
		opts:    opts,
	}
}

func (that *httpAPI) StartGame(ctx context.Context) (entity.GameState, error) {
	var state entity.GameState
	err := that.retry(ctx, func() error {
		return that.expectOK(ctx, http.MethodPost, "/start", nil, &state)
	})

	return state, err
}

func (that *httpAPI) GameState(ctx context.Context) (entity.GameState, error) {
	var state entity.GameState
	err := that.retry(ctx, func() error {
		return that.expectOK(ctx, http.MethodGet, "/game-state", nil, &state)
	})

	return state, err
}

func (that *httpAPI) MakeMove(ctx context.Context, position int) (entity.MoveResult, error) {
	return that.submit(ctx, "/make-move", map[string]int{"position": position})
}

func (that *httpAPI) MakeOpponentMove(ctx context.Context, difficulty entity.Difficulty) (entity.MoveResult, error) {
	return that.submit(ctx, "/make-ai-move", map[string]entity.Difficulty{"difficulty": difficulty})
}

// submit accepts 200 and 422 as answers; 422 carries the rejection reason.
func (that *httpAPI) submit(ctx context.Context, path string, body any) (entity.MoveResult, error) {
	var result entity.MoveResult

	status, err := that.do(ctx, http.MethodPost, path, body, &result)
	if err != nil {
		return entity.MoveResult{}, err
	}

	switch status {
	case http.StatusOK, http.StatusUnprocessableEntity:
		return result, nil
	default:
		return entity.MoveResult{}, networkError(fmt.Errorf("%s: unexpected status %d", path, status))
	}
}

func (that *httpAPI) expectOK(ctx context.Context, method, path string, body, out any) error {
	status, err := that.do(ctx, method, path, body, out)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		err = networkError(fmt.Errorf("%s: unexpected status %d", path, status))
		if status < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}

		return err
	}

	return nil
}

// do sends one request and decodes 200 and 422 bodies into out. Transport errors and
// undecodable bodies are network failures.
func (that *httpAPI) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := that.client.Do(req)
	if err != nil {
		return 0, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnprocessableEntity {
		return resp.StatusCode, nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, networkError(fmt.Errorf("%s: failed to decode response: %w", path, err))
	}

	return resp.StatusCode, nil
}

func (that *httpAPI) retry(ctx context.Context, operation func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, that.opts.MaxRetries), ctx))
	if err != nil && !errors.Is(err, apperror.ErrNetworkFailure) {
		return networkError(err)
	}

	return err
}

func networkError(err error) error {
	return fmt.Errorf("%w: %w", apperror.ErrNetworkFailure, err)
}
