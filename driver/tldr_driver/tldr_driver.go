// Package tldr_driver retrieves raw digest pages over HTTP.
package tldr_driver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"unrot/domain"
)

// maxPageBytes bounds how much of a digest page is read into memory.
const maxPageBytes = 5 << 20

type TLDRDriver struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewTLDRDriver(baseURL string, timeout time.Duration, userAgent string) *TLDRDriver {
	return &TLDRDriver{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// PageURL builds {base}/{category}/{date}.
func (d *TLDRDriver) PageURL(category, date string) string {
	return fmt.Sprintf("%s/%s/%s", d.baseURL, url.PathEscape(category), url.PathEscape(date))
}

// FetchPage returns the markup of the digest page for category and date.
// A non-2xx response is reported as *domain.ExternalHTTPError.
func (d *TLDRDriver) FetchPage(ctx context.Context, category, date string) (string, error) {
	target := d.PageURL(category, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build digest request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch digest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: target}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read digest body: %w", err)
	}

	return string(body), nil
}
