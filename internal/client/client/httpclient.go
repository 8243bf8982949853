package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/useraccounts/internal/client/models"
	"github.com/dmitrijs2005/useraccounts/internal/common"
)

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// HTTPClient talks to the server's JSON API. The AuthToken cookie is managed
// by hand instead of a cookie jar so the token can be persisted between runs.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPost, "/user/register", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPost, "/user/login", models.LoginRequest{Email: email, Password: password}, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return sessionError(c.do(ctx, http.MethodGet, "/user/logout", nil, nil))
}

func (c *HTTPClient) WhoAmI(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodGet, "/user/token-relogin", nil, &account); err != nil {
		return nil, sessionError(err)
	}
	return &account, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// sessionError turns a 400 on a cookie-only endpoint into ErrUnauthorized.
func sessionError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	}
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.AddCookie(&http.Cookie{Name: common.AuthTokenCookieName, Value: token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.updateToken(resp)

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return newAPIError(resp.StatusCode, resp.Status)
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var msg string
		_ = json.Unmarshal(env.Data, &msg)
		return newAPIError(resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// updateToken follows Set-Cookie for AuthToken, including deletion.
func (c *HTTPClient) updateToken(resp *http.Response) {
	for _, ck := range resp.Cookies() {
		if ck.Name != common.AuthTokenCookieName {
			continue
		}
		if ck.MaxAge < 0 || ck.Value == "" {
			c.SetToken("")
		} else {
			c.SetToken(ck.Value)
		}
	}
}
