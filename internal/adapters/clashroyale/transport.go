package clashroyale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultBase = "https://proxy.royaleapi.dev/v1"

type Client struct {
	apiKey  string
	http    *http.Client
	baseURL string
	retry   RetryPolicy
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBase,
		retry:   DefaultRetryPolicy(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configured: false si no hay API key; ninguna llamada sale a la red en ese caso.
func (c *Client) Configured() bool { return c.apiKey != "" }

// doJSON arma la URL, agrega Authorization y reintenta los 429 según la RetryPolicy.
// Devuelve cuántos 429 vio, aunque termine en error.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, out any) (int, error) {
	if !c.Configured() {
		return 0, ErrMissingAPIKey
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	limited := 0
	err := retry.Do(ctx, c.retry.backoff(), func(ctx context.Context) error {
		err := c.once(ctx, method, u, out)
		if errors.Is(err, ErrRateLimited) {
			limited++
			return retry.RetryableError(err)
		}
		return err
	})
	return limited, err
}

func (c *Client) once(ctx context.Context, method, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("clash royale http: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("clash royale decode: %w", err)
	}
	return nil
}
