package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"

	"github.com/abhisek/pathway/internal/roadmap"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// maxErrorBody caps the body text kept on *ErrStatus.
const maxErrorBody = 512

// HTTPProvider implements Provider over the provider's JSON endpoints.
type HTTPProvider struct {
	client      *http.Client
	roadmapURL  string
	progressURL string
}

// NewHTTPProvider creates an HTTPProvider. The session token, when set,
// is stored in the client's cookie jar for the base URL.
func NewHTTPProvider(cfg Config) (*HTTPProvider, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if cfg.SessionToken != "" {
		jar.SetCookies(base, []*http.Cookie{{
			Name:  cfg.SessionCookie,
			Value: cfg.SessionToken,
			Path:  "/",
		}})
	}

	return &HTTPProvider{
		client: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		},
		roadmapURL:  base.String() + cfg.RoadmapPath,
		progressURL: base.String() + cfg.ProgressPath,
	}, nil
}

func (p *HTTPProvider) FetchRoadmap(ctx context.Context) ([]roadmap.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.roadmapURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build roadmap request: %w", err)
	}

	body, _, err := p.do(req)
	if err != nil {
		return nil, err
	}

	if err := validateRoadmap(body); err != nil {
		return nil, err
	}

	var nodes []roadmap.Node
	if err := json.Unmarshal(body, &nodes); err != nil {
		return nil, &ErrInvalidResponse{Content: body, Err: err}
	}
	return nodes, nil
}

func (p *HTTPProvider) UpdateProgress(ctx context.Context, update ProgressUpdate) (*Ack, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("encode progress update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.progressURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build progress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := p.do(req)
	if err != nil {
		return nil, err
	}

	ack := &Ack{StatusCode: status}
	if len(body) > 0 && json.Valid(body) {
		ack.Body = json.RawMessage(body)
	}
	return ack, nil
}

func (p *HTTPProvider) Name() string {
	return KindHTTP
}

// do sends req and returns the body of a 2xx response. Transport errors
// become *ErrUnavailable and other statuses become *ErrStatus.
func (p *HTTPProvider) do(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(req.Context()); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &ErrUnavailable{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := strings.TrimSpace(string(body))
		text = truncateUTF8(text, maxErrorBody)
		return nil, resp.StatusCode, &ErrStatus{Code: resp.StatusCode, Body: text}
	}
	return body, resp.StatusCode, nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
