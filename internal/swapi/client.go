package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Repository defines the reads the state containers' owners perform.
// It is implemented by *Client and can be faked in tests.
type Repository interface {
	ListPeople(ctx context.Context, page int, search string) (Page, error)
	GetPerson(ctx context.Context, id string) (Person, error)
}

// Ensure Client implements Repository at compile time.
var _ Repository = (*Client)(nil)

const (
	// DefaultBaseURL is the public SWAPI root.
	DefaultBaseURL   = "https://swapi.dev/api"
	defaultUserAgent = "holocron/0.1"
	defaultTimeout   = 10 * time.Second
)

// Options configure a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration // zero uses the default
	HTTPClient *http.Client  // overrides Timeout when set
	Logger     *slog.Logger
}

// Client talks to the SWAPI people endpoints. It never retries and never
// caches.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       *slog.Logger
}

// NewClient builds a Client for the given options.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: defaultUserAgent,
		log:       logger.With("adapter", "swapi"),
	}, nil
}

// ListPeople fetches one page of people. Pages below 1 are requested as page
// 1. An empty search term is not sent at all.
func (c *Client) ListPeople(ctx context.Context, page int, search string) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	if term := strings.TrimSpace(search); term != "" {
		values.Set("search", term)
	}
	rel := &url.URL{Path: "people/", RawQuery: values.Encode()}

	var payload Page
	if err := c.doURL(ctx, "list", rel, &payload); err != nil {
		return Page{}, err
	}
	c.log.DebugContext(ctx, "people page fetched",
		slog.Int("page", page),
		slog.String("search", search),
		slog.Int("count", payload.Count),
		slog.Int("results", len(payload.Results)),
	)
	return payload, nil
}

// GetPerson fetches a single person by identifier.
func (c *Client) GetPerson(ctx context.Context, id string) (Person, error) {
	if c == nil {
		return Person{}, fmt.Errorf("client is nil")
	}
	id = strings.Trim(strings.TrimSpace(id), "/")
	if id == "" {
		return Person{}, &FetchError{Op: "get", URL: "people/", Err: fmt.Errorf("person id required")}
	}
	rel := &url.URL{Path: "people/" + url.PathEscape(id) + "/"}

	var payload Person
	if err := c.doURL(ctx, "get", rel, &payload); err != nil {
		return Person{}, err
	}
	c.log.DebugContext(ctx, "person fetched", slog.String("id", id), slog.String("name", payload.Name))
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, op string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel).String()
	fail := func(status int, err error) error {
		c.log.WarnContext(ctx, "swapi request failed",
			slog.String("op", op),
			slog.String("url", reqURL),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		return &FetchError{Op: op, URL: reqURL, StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.DebugContext(ctx, "swapi request", slog.String("op", op), slog.String("url", reqURL))
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fail(0, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// parseBaseURL normalizes the configured root so relative endpoint paths
// resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
