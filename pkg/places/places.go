// Package places wraps the keyword place search used by the course editor.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/config"
)

const keywordPath = "/v2/local/search/keyword.json"

type Place struct {
	PlaceName    string  `json:"place_name"`
	AddressName  string  `json:"address_name"`
	CategoryName string  `json:"category_name"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type Searcher interface {
	Search(ctx context.Context, keyword string) ([]Place, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Searcher {
	return newClient(cfg.PlacesBaseURL, cfg.KakaoRESTAPIKey, &http.Client{Timeout: cfg.HTTPClientTimeout})
}

func newClient(baseURL, apiKey string, httpClient *http.Client) *client {
	return &client{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, httpClient: httpClient}
}

// document mirrors the provider payload, which sends coordinates as strings.
type document struct {
	PlaceName    string `json:"place_name"`
	AddressName  string `json:"address_name"`
	CategoryName string `json:"category_name"`
	X            string `json:"x"`
	Y            string `json:"y"`
}

type searchResponse struct {
	Documents []document `json:"documents"`
}

func (c *client) Search(ctx context.Context, keyword string) ([]Place, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []Place{}, nil
	}
	if c.apiKey == "" {
		return nil, apperr.NewUpstream("place search provider is not configured", nil)
	}

	endpoint := c.baseURL + keywordPath + "?query=" + url.QueryEscape(keyword)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create place search request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.NewUpstream("failed to call place search provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.NewUpstream(fmt.Sprintf("place search provider returned %d", resp.StatusCode), nil)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperr.NewUpstream("failed to decode place search response", err)
	}

	result := make([]Place, 0, len(payload.Documents))
	for _, doc := range payload.Documents {
		x, errX := strconv.ParseFloat(doc.X, 64)
		y, errY := strconv.ParseFloat(doc.Y, 64)
		if errX != nil || errY != nil {
			continue
		}
		result = append(result, Place{
			PlaceName:    doc.PlaceName,
			AddressName:  doc.AddressName,
			CategoryName: doc.CategoryName,
			X:            x,
			Y:            y,
		})
	}
	return result, nil
}
