package egrul

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

var (
	// ErrNoToken indicates the submission step returned no session token.
	ErrNoToken = errors.New("egrul: no search token in response")
	// ErrNotFound indicates the registry returned no matching records.
	ErrNotFound = errors.New("egrul: no matching records")
	// ErrNoDirector indicates the matched record carries no parsable director field.
	ErrNoDirector = errors.New("egrul: record has no director field")
)

// tokenResponse models the submission step payload.
type tokenResponse struct {
	Token string `json:"t"`
}

// Record represents a single registry search match. The director field holds
// text shaped like "ГЕНЕРАЛЬНЫЙ ДИРЕКТОР: Фамилия Имя Отчество".
type Record struct {
	Name     string `json:"n"`
	INN      string `json:"i"`
	Director string `json:"g"`
}

type searchResponse struct {
	Rows []Record `json:"rows"`
}

// Finder defines the registry lookup operation used by the resolver.
type Finder interface {
	FindDirector(ctx context.Context, inn string) (string, error)
}

// Client provides access to the EGRUL search endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	tokenDelay time.Duration
	httpClient *http.Client
}

var _ Finder = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent on both steps.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(agent) != "" {
			c.userAgent = strings.TrimSpace(agent)
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithTokenDelay sets the pause between the token submission and the result
// fetch. The public endpoint rejects back-to-back requests.
func WithTokenDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay >= 0 {
			c.tokenDelay = delay
		}
	}
}

// New creates an EGRUL client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("egrul base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  defaultUserAgent,
		tokenDelay: time.Second,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FindDirector resolves the head/director full name recorded for the supplied
// identifier. Transport failures, missing tokens, empty result sets, and
// unparsable records all surface as errors; the caller decides how to treat
// them.
func (c *Client) FindDirector(ctx context.Context, inn string) (string, error) {
	inn = strings.TrimSpace(inn)
	if inn == "" {
		return "", errors.New("identifier must not be empty")
	}

	token, err := c.submitQuery(ctx, inn)
	if err != nil {
		return "", err
	}

	if err := sleepContext(ctx, c.tokenDelay); err != nil {
		return "", err
	}

	rows, err := c.fetchResults(ctx, token, inn)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNotFound
	}

	_, name, found := strings.Cut(rows[0].Director, ":")
	if !found {
		return "", ErrNoDirector
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNoDirector
	}
	return name, nil
}

func (c *Client) submitQuery(ctx context.Context, inn string) (string, error) {
	form := url.Values{}
	form.Set("vyp3CaptchaToken", "")
	form.Set("page", "")
	form.Set("query", inn)
	form.Set("region", "")
	form.Set("PreventChromeAutocomplete", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("submit query: unexpected status %s", resp.Status)
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode submit response: %w", err)
	}
	token := strings.TrimSpace(payload.Token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (c *Client) fetchResults(ctx context.Context, token, inn string) ([]Record, error) {
	endpoint, err := url.Parse(c.baseURL + "/search-result/" + url.PathEscape(token))
	if err != nil {
		return nil, fmt.Errorf("parse result url: %w", err)
	}
	params := url.Values{}
	params.Set("r", strconv.FormatInt(nonce(), 10))
	params.Set("_", inn)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build result request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch results: unexpected status %s", resp.Status)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode result response: %w", err)
	}
	return payload.Rows, nil
}

// nonce mirrors the 14-digit cache-busting value the registry front end sends.
func nonce() int64 {
	return 10_000_000_000_000 + rand.Int63n(90_000_000_000_000)
}

func sleepContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
