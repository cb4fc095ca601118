// Package qbittorrent is a read-only client for the qBittorrent Web API v2.
// It lists the torrents of a category and the files of a single torrent.
package qbittorrent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultBaseURL = "http://localhost:8080/api/v2"

	torrentsInfoEndpoint  = "/torrents/info"
	torrentsFilesEndpoint = "/torrents/files"

	// Transport configuration constants
	maxIdleConns        = 10
	maxIdleConnsPerHost = 2
	idleConnTimeout     = 30 * time.Second
)

// Client talks to a single qBittorrent daemon.
type Client struct {
	httpClient *http.Client
	baseURL    string
	validate   *validator.Validate
}

// NewHTTPClient creates the HTTP client used against the daemon.
// A zero timeout leaves requests unbounded.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}
}

// NewClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v2". A nil httpClient gets NewHTTPClient(0).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		validate:   validate,
	}
}

// ListTorrents returns the torrents of category sorted by name.
func (c *Client) ListTorrents(ctx context.Context, category string) ([]Torrent, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("sort", "name")

	body, err := c.get(ctx, torrentsInfoEndpoint, params)
	if err != nil {
		return nil, err
	}

	infos, err := decodeList[torrentInfo](c.validate, body, "torrent list")
	if err != nil {
		return nil, err
	}

	torrents := make([]Torrent, 0, len(infos))
	for _, info := range infos {
		torrents = append(torrents, info.toTorrent())
	}
	return torrents, nil
}

// ListFiles returns the files of the torrent identified by hash, in daemon order.
func (c *Client) ListFiles(ctx context.Context, hash string) ([]EpisodeFile, error) {
	params := url.Values{}
	params.Set("hash", hash)

	body, err := c.get(ctx, torrentsFilesEndpoint, params)
	if err != nil {
		return nil, err
	}

	infos, err := decodeList[fileInfo](c.validate, body, "file list")
	if err != nil {
		return nil, err
	}

	files := make([]EpisodeFile, 0, len(infos))
	for _, info := range infos {
		files = append(files, info.toEpisodeFile())
	}
	return files, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, NewTransportError("failed to create request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewTransportError("failed to send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError("failed to read response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewTransportError(fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, endpoint), nil)
	}

	return body, nil
}

// decodeList decodes a JSON array and checks every element for its required
// fields. Unknown fields are ignored.
func decodeList[T any](validate *validator.Validate, body []byte, what string) ([]T, error) {
	var items *[]T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, NewDecodeError(fmt.Sprintf("failed to decode %s", what), err)
	}
	if items == nil {
		return nil, NewDecodeError(fmt.Sprintf("failed to decode %s: expected a JSON array, got null", what), nil)
	}

	for i, item := range *items {
		if err := validate.Struct(item); err != nil {
			return nil, NewDecodeError(fmt.Sprintf("invalid %s entry %d", what, i), err)
		}
	}
	return *items, nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
