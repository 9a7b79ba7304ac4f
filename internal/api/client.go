// Package api implements the HTTP client for the One Click recipe
// service. All calls are single synchronous request/response round
// trips; failures are classified by [ErrorKind] so the submit flow can
// tell a rejected payload from an unreachable server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// Client talks to the recipe service.
type Client struct {
	baseURL string // e.g. "http://localhost:8080/api"
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Login exchanges credentials for the user's identity record.
func (c *Client) Login(ctx context.Context, userName, password string) (domain.User, error) {
	var resp userResponse
	err := c.post(ctx, "login", "/user/login", loginRequest{UserName: userName, Password: password}, &resp)
	if err != nil {
		return domain.User{}, err
	}
	return resp.toDomain(), nil
}

// SignUp registers a new account and returns the created identity.
func (c *Client) SignUp(ctx context.Context, user domain.User) (domain.User, error) {
	req := signUpRequest{
		UserName: user.UserName,
		Password: user.Password,
		Name:     user.Name,
		Phone:    user.Phone,
		Email:    user.Email,
		Tz:       user.TaxID,
	}
	var resp userResponse
	if err := c.post(ctx, "signup", "/user/signin", req, &resp); err != nil {
		return domain.User{}, err
	}
	return resp.toDomain(), nil
}

// Categories fetches the category reference catalog.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var resp []categoryResponse
	if err := c.get(ctx, "categories", "/category", &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(resp))
	for i, cat := range resp {
		out[i] = domain.Category{ID: cat.ID, Name: cat.Name}
	}
	return out, nil
}

// Recipes fetches the full recipe collection for the catalog view.
func (c *Client) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	var resp []recipeResponse
	if err := c.get(ctx, "recipes", "/recipe", &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Recipe, len(resp))
	for i, rec := range resp {
		out[i] = rec.toDomain()
	}
	return out, nil
}

// CreateRecipe submits a new recipe and returns the persisted record.
func (c *Client) CreateRecipe(ctx context.Context, req CreateRecipeRequest) (domain.Recipe, error) {
	var resp recipeResponse
	if err := c.post(ctx, "create recipe", "/recipe", req, &resp); err != nil {
		return domain.Recipe{}, err
	}
	return resp.toDomain(), nil
}

// EditRecipe submits changes to an existing recipe.
func (c *Client) EditRecipe(ctx context.Context, req EditRecipeRequest) (domain.Recipe, error) {
	var resp recipeResponse
	if err := c.post(ctx, "edit recipe", "/recipe/edit", req, &resp); err != nil {
		return domain.Recipe{}, err
	}
	return resp.toDomain(), nil
}

// post sends a JSON body and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: ErrKindRequest, Op: op, Err: fmt.Errorf("marshal body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return &Error{Kind: ErrKindRequest, Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("api: POST %s (%d bytes)", path, len(jsonData))
	return c.do(op, req, out)
}

// get fetches a JSON resource into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &Error{Kind: ErrKindRequest, Op: op, Err: fmt.Errorf("create request: %w", err)}
	}

	c.log.Debug("api: GET %s", path)
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: ErrKindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: ErrKindNetwork, Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: ErrKindServer, Op: op, Status: resp.StatusCode, Body: truncate(string(respBody), 200)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: ErrKindRequest, Op: op, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
