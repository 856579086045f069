package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks to the yt-dlp extraction sidecar over localhost HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *HTTPClient) Extract(ctx context.Context, videoURL string) (*TrackMeta, error) {
	endpoint := fmt.Sprintf("%s/extract?url=%s", c.baseURL, url.QueryEscape(videoURL))

	var meta TrackMeta
	if err := c.doRequest(ctx, endpoint, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (c *HTTPClient) Download(ctx context.Context, videoURL, format string) (*DownloadMeta, error) {
	endpoint := fmt.Sprintf("%s/download?url=%s&format=%s",
		c.baseURL, url.QueryEscape(videoURL), url.QueryEscape(format))

	var meta DownloadMeta
	if err := c.doRequest(ctx, endpoint, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (c *HTTPClient) doRequest(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if decErr := json.NewDecoder(resp.Body).Decode(&errResp); decErr == nil && errResp.Detail != "" {
			return fmt.Errorf("extractor returned %d: %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("extractor returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
