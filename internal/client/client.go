package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PSrandula/issue-tracker-app/internal/issue"
)

// Client talks to a running API server, attaching the bearer token to every
// request.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResp struct {
	Token string `json:"token"`
}

type errorResp struct {
	Message string `json:"message"`
}

// Login obtains and stores a token for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var res tokenResp
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &res)
	if err != nil {
		return err
	}
	c.Token = res.Token
	return nil
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, email, password string) error {
	var res tokenResp
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email": email, "password": password,
	}, &res)
	if err != nil {
		return err
	}
	c.Token = res.Token
	return nil
}

func (c *Client) List(ctx context.Context, q issue.ListQuery) (*issue.ListResult, error) {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" && q.Status != issue.FilterAll {
		v.Set("status", q.Status)
	}
	if q.Priority != "" && q.Priority != issue.FilterAll {
		v.Set("priority", q.Priority)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("limit", strconv.Itoa(q.PageSize))
	}

	path := "/api/issues"
	if enc := v.Encode(); enc != "" {
		path += "?" + enc
	}

	// Tolerate a bare array alongside the proper envelope.
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return decodeListResponse(raw)
}

func (c *Client) Get(ctx context.Context, id uint64) (*issue.Issue, error) {
	var is issue.Issue
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/issues/%d", id), nil, &is); err != nil {
		return nil, err
	}
	return &is, nil
}

func (c *Client) Create(ctx context.Context, f issue.Fields) (*issue.Issue, error) {
	var is issue.Issue
	if err := c.do(ctx, http.MethodPost, "/api/issues", f, &is); err != nil {
		return nil, err
	}
	return &is, nil
}

func (c *Client) Update(ctx context.Context, id uint64, f issue.Fields) (*issue.Issue, error) {
	var is issue.Issue
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/issues/%d", id), f, &is); err != nil {
		return nil, err
	}
	return &is, nil
}

func (c *Client) Delete(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/issues/%d", id), nil, nil)
}

func (c *Client) ExportCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/issues/export", nil)
	if err != nil {
		return "", err
	}
	c.authorize(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp.StatusCode, body)
	}
	return string(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

func apiError(status int, body []byte) error {
	var er errorResp
	if json.Unmarshal(body, &er) == nil && er.Message != "" {
		return fmt.Errorf("api: %s (status %d)", er.Message, status)
	}
	return fmt.Errorf("api: status %d", status)
}

func decodeListResponse(raw json.RawMessage) (*issue.ListResult, error) {
	var bare []issue.Issue
	if err := json.Unmarshal(raw, &bare); err == nil {
		return &issue.ListResult{Issues: bare, TotalPages: 1, StatusCounts: map[string]int64{}}, nil
	}

	var env issue.ListResult
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.Issues == nil {
		env.Issues = []issue.Issue{}
	}
	if env.TotalPages < 1 {
		env.TotalPages = 1
	}
	if env.StatusCounts == nil {
		env.StatusCounts = map[string]int64{}
	}
	return &env, nil
}
