package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bankclients/internal/domain"
)

type HTTPOptions struct {
	BaseURL   string
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client // 为空时按 Timeout 新建
}

// HTTPSource GET <base><endpoint>，返回完整用户列表
type HTTPSource struct {
	client    *http.Client
	url       string
	userAgent string
}

func NewHTTPSource(o HTTPOptions) (*HTTPSource, error) {
	raw := strings.TrimRight(o.BaseURL, "/") + "/" + strings.TrimLeft(o.Endpoint, "/")
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("source url %q: scheme must be http or https", raw)
	}
	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}
	return &HTTPSource{client: client, url: u.String(), userAgent: o.UserAgent}, nil
}

func (s *HTTPSource) URL() string { return s.url }

func (s *HTTPSource) FetchUsers(ctx context.Context) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request to %s: %w", s.url, err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("request to %s failed with status %d: %s", s.url, res.StatusCode, b)
	}
	return decodeUsers(res.Body)
}
