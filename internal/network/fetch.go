package network

import (
	"context"
	"fmt"
	"io"

	fhttp "github.com/bogdanfinn/fhttp"
)

// FetchError reports a failed page retrieval. Status is zero when no
// response was received.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: http %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Get issues a GET for target and returns the response when its status is
// 2xx. A Blocked status is retried through the next proxy while the rotator
// still has one. The caller closes the body.
func (c *Client) Get(ctx context.Context, target string, headers map[string]string) (*fhttp.Response, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	applyHeaders(req, headers)

	attempts := 1
	if c.rotator != nil && len(c.rotator.proxies) > 1 {
		attempts = len(c.rotator.proxies)
	}
	status := 0
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := c.Do(req)
		if err != nil {
			return nil, &FetchError{URL: target, Err: err}
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}
		resp.Body.Close()
		status = resp.StatusCode
		if !Blocked(status) || c.rotator == nil || !c.rotator.Available() {
			break
		}
	}
	return nil, &FetchError{URL: target, Status: status}
}

// FetchHTML returns the raw body of target.
func (c *Client) FetchHTML(ctx context.Context, target string) (string, error) {
	resp, err := c.Get(ctx, target, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: target, Err: err}
	}
	return string(body), nil
}

func applyHeaders(req *fhttp.Request, headers map[string]string) {
	if _, ok := headers["accept"]; !ok {
		req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}
	if _, ok := headers["accept-language"]; !ok {
		req.Header.Set("accept-language", "en-US,en;q=0.9")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}
