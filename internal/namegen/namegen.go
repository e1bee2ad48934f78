// Package namegen fetches random pilot names from the randommer.io API.
package namegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NameURL is the randommer.io single-name endpoint.
const NameURL = "https://randommer.io/api/Name?nameType=firstname&quantity=1"

// ErrStatus is wrapped when the server answers with a non-2xx status.
var ErrStatus = errors.New("namegen: unexpected status")

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

var client = &http.Client{Timeout: 10 * time.Second}

// GetPage sends a GET request to rawURL and returns the body as text.
// A non-empty apiKey is sent as the X-Api-Key query parameter.
func GetPage(ctx context.Context, rawURL, apiKey string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("namegen: bad url %q: %w", rawURL, err)
	}
	if apiKey != "" {
		q := u.Query()
		q.Set("X-Api-Key", apiKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("namegen: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("namegen: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("namegen: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	return string(body), nil
}

// RandomName asks randommer.io for one first name.
func RandomName(ctx context.Context, apiKey string) (string, error) {
	return randomNameFrom(ctx, NameURL, apiKey)
}

func randomNameFrom(ctx context.Context, rawURL, apiKey string) (string, error) {
	body, err := GetPage(ctx, rawURL, apiKey)
	if err != nil {
		return "", err
	}
	name := parseName(body)
	if name == "" {
		return "", fmt.Errorf("namegen: empty name in response %q", body)
	}
	return name, nil
}

// parseName extracts the first name from a response that is either a JSON
// string array (["Ada"]) or plain text.
func parseName(body string) string {
	s := strings.TrimSpace(body)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	first, _, _ := strings.Cut(s, ",")
	return strings.Trim(strings.TrimSpace(first), `"`)
}
