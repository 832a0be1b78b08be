// Package directions talks to the waypoint directions provider and turns its
// answer into a drawable polyline.
package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/config"
)

const (
	PriorityDistance = "DISTANCE"
	directionsPath   = "/v1/waypoints/directions"
)

var defaultAvoid = []string{"ferries", "uturn"}

// Point is a provider coordinate: X is longitude, Y is latitude.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Request struct {
	Origin      *Point   `json:"origin"`
	Destination *Point   `json:"destination"`
	Waypoints   []Point  `json:"waypoints"`
	Priority    string   `json:"priority"`
	Avoid       []string `json:"avoid"`
}

type Response struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	ResultCode int       `json:"result_code"`
	ResultMsg  string    `json:"result_msg"`
	Sections   []Section `json:"sections"`
}

type Section struct {
	Roads []Road `json:"roads"`
}

// Road vertexes are a flat [lon, lat, lon, lat, ...] list.
type Road struct {
	Vertexes []float64 `json:"vertexes"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Client interface {
	// Raw forwards req and returns the provider body untouched.
	Raw(ctx context.Context, req Request) (json.RawMessage, error)
	Directions(ctx context.Context, req Request) (*Response, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return newClient(cfg.DirectionsBaseURL, cfg.KakaoRESTAPIKey, &http.Client{Timeout: cfg.HTTPClientTimeout})
}

func newClient(baseURL, apiKey string, httpClient *http.Client) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// BuildRequest maps an ordered list of points to origin, destination and the
// in-between waypoints. At least two points are required.
func BuildRequest(points []Point) (Request, error) {
	if len(points) < 2 {
		return Request{}, apperr.NewValidation("at least two points are required for a route")
	}

	origin := points[0]
	destination := points[len(points)-1]
	waypoints := make([]Point, 0, len(points)-2)
	waypoints = append(waypoints, points[1:len(points)-1]...)

	return Request{
		Origin:      &origin,
		Destination: &destination,
		Waypoints:   waypoints,
		Priority:    PriorityDistance,
		Avoid:       append([]string(nil), defaultAvoid...),
	}, nil
}

// WithDefaults fills the optional fields of a request received from a client.
func (r Request) WithDefaults() Request {
	if r.Waypoints == nil {
		r.Waypoints = []Point{}
	}
	if r.Priority == "" {
		r.Priority = PriorityDistance
	}
	if len(r.Avoid) == 0 {
		r.Avoid = append([]string(nil), defaultAvoid...)
	}
	return r
}

// Flatten collects the vertexes of the first route in order.
func Flatten(resp *Response) []LatLng {
	path := []LatLng{}
	if resp == nil || len(resp.Routes) == 0 {
		return path
	}

	for _, section := range resp.Routes[0].Sections {
		for _, road := range section.Roads {
			for i := 0; i+1 < len(road.Vertexes); i += 2 {
				path = append(path, LatLng{Lat: road.Vertexes[i+1], Lng: road.Vertexes[i]})
			}
		}
	}
	return path
}

func (c *client) Raw(ctx context.Context, req Request) (json.RawMessage, error) {
	if req.Origin == nil || req.Destination == nil {
		return nil, apperr.NewValidation("Missing required fields: origin and destination")
	}
	if c.apiKey == "" {
		return nil, apperr.NewUpstream("directions provider is not configured", nil)
	}

	payload, err := json.Marshal(req.WithDefaults())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal directions request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+directionsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create directions request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperr.NewUpstream("failed to call directions provider", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewUpstream("failed to read directions response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.NewUpstream(fmt.Sprintf("directions provider returned %d", resp.StatusCode), fmt.Errorf("%s", body))
	}

	return json.RawMessage(body), nil
}

func (c *client) Directions(ctx context.Context, req Request) (*Response, error) {
	body, err := c.Raw(ctx, req)
	if err != nil {
		return nil, err
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apperr.NewUpstream("failed to decode directions response", err)
	}
	return &out, nil
}
