package inputs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoSession is returned when a download is attempted without a session cookie.
var ErrNoSession = errors.New("no session cookie configured (set session in .aoc/config.yaml or AOC_SESSION)")

// maxInputSize guards against an unexpected response body.
const maxInputSize = 4 << 20

// Fetcher downloads personal puzzle inputs.
type Fetcher struct {
	BaseURL   string
	Session   string
	UserAgent string
	Client    *http.Client
}

// NewFetcher returns a Fetcher using an http.Client with the given timeout.
func NewFetcher(baseURL, session, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Session:   session,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the input for (year, day).
func (f *Fetcher) Fetch(ctx context.Context, year, day int) ([]byte, error) {
	if f.Session == "" {
		return nil, ErrNoSession
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(f.BaseURL, "/"), year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s: %s", url, resp.Status, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// Ensure makes sure the input for (year, day) exists in store, downloading it
// when missing or when force is set. It reports whether a download happened.
func Ensure(ctx context.Context, store *Store, f *Fetcher, year, day int, force bool) (bool, error) {
	if !force && store.Exists(year, day) {
		return false, nil
	}

	data, err := f.Fetch(ctx, year, day)
	if err != nil {
		return false, err
	}
	if err := store.Save(year, day, data); err != nil {
		return false, err
	}
	return true, nil
}
