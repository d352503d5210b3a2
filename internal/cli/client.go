package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/fairychess/internal/api/request"
	"github.com/mcoot/fairychess/internal/api/response"
)

const userAgent = "fairychess-cli"

// Client talks to a fairychess server's /api/v1 endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL. A computer move at
// high depth can take a while, hence the generous timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// APIError is the error body returned by the server
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// decodeError turns a failed response body into an error
func decodeError(status int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != "" {
		return fmt.Errorf("%s", errResp.Error.String())
	}
	return fmt.Errorf("HTTP %d: %s", status, strings.TrimSpace(string(body)))
}

// do sends body as JSON and decodes the reply into result when non-nil
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

func gamePath(id string, parts ...string) string {
	path := "/api/v1/games/" + url.PathEscape(id)
	for _, p := range parts {
		path += "/" + p
	}
	return path
}

func (c *Client) Health(ctx context.Context) (HealthResult, error) {
	var out HealthResult
	err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &out)
	return out, err
}

func (c *Client) Modes(ctx context.Context) (response.Modes, error) {
	var out response.Modes
	err := c.do(ctx, http.MethodGet, "/api/v1/modes", nil, &out)
	return out, err
}

func (c *Client) CreateGame(ctx context.Context, req request.CreateGameRequest) (response.Game, error) {
	var out response.Game
	err := c.do(ctx, http.MethodPost, "/api/v1/games", req, &out)
	return out, err
}

func (c *Client) ListGames(ctx context.Context) (response.GameList, error) {
	var out response.GameList
	err := c.do(ctx, http.MethodGet, "/api/v1/games", nil, &out)
	return out, err
}

func (c *Client) GetGame(ctx context.Context, id string) (response.Game, error) {
	var out response.Game
	err := c.do(ctx, http.MethodGet, gamePath(id), nil, &out)
	return out, err
}

// Touch clicks square (x, y) of a game's board
func (c *Client) Touch(ctx context.Context, id string, x, y int) (response.MoveResult, error) {
	var out response.MoveResult
	err := c.do(ctx, http.MethodPost, gamePath(id, "touch"), request.TouchRequest{X: &x, Y: &y}, &out)
	return out, err
}

// Ready asks the server to play the computer's move
func (c *Client) Ready(ctx context.Context, id string) (response.MoveResult, error) {
	var out response.MoveResult
	err := c.do(ctx, http.MethodPost, gamePath(id, "ready"), nil, &out)
	return out, err
}

func (c *Client) Restart(ctx context.Context, id string) (response.Game, error) {
	var out response.Game
	err := c.do(ctx, http.MethodPost, gamePath(id, "restart"), nil, &out)
	return out, err
}

// NewGame switches a game's mode and opponent
func (c *Client) NewGame(ctx context.Context, id string, req request.NewGameRequest) (response.Game, error) {
	var out response.Game
	err := c.do(ctx, http.MethodPost, gamePath(id, "new"), req, &out)
	return out, err
}

func (c *Client) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, gamePath(id), nil, nil)
}

// Events opens the game's event stream. The caller closes the body.
func (c *Client) Events(ctx context.Context, id string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+gamePath(id, "events"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", userAgent)

	// No timeout for SSE
	stream := &http.Client{Transport: c.httpClient.Transport}
	resp, err := stream.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, decodeError(resp.StatusCode, body)
	}
	return resp.Body, nil
}
