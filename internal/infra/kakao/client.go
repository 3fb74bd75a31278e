// Package kakao implements the directions provider port against the Kakao
// Mobility REST API.
package kakao

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"freightway/config"
	"freightway/internal/domain/entity"
	"freightway/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://apis-navi.kakaomobility.com"
	defaultTimeout = 10 * time.Second

	directionsPath = "/v1/directions"
)

// coordinatePattern matches the "{lng},{lat}" encoding the API expects.
var coordinatePattern = regexp.MustCompile(`^-?\d+(\.\d+)?,-?\d+(\.\d+)?$`)

var validFuels = map[string]struct{}{
	"GASOLINE": {},
	"DIESEL":   {},
	"LPG":      {},
}

// Client is a stateless wrapper around the Kakao Mobility directions API.
// It performs a single attempt per call; retries are deliberately left to
// callers.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a directions client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.RouteProvider {
	kakaoCfg := cfg.Kakao
	if kakaoCfg == nil {
		kakaoCfg = &config.KakaoConfig{}
	}

	baseURL := strings.TrimSuffix(kakaoCfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := kakaoCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  kakaoCfg.RESTAPIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// directionsResponse mirrors the provider payload shape. Only the summary
// fields this service consumes are typed; the full body is kept verbatim in
// DirectionsResult.RawBody.
type directionsResponse struct {
	TransID string `json:"trans_id"`
	Routes  []struct {
		ResultCode int    `json:"result_code"`
		ResultMsg  string `json:"result_msg"`
		Summary    struct {
			Distance int    `json:"distance"` // meters
			Duration int    `json:"duration"` // seconds
			Priority string `json:"priority"`
			Fare     struct {
				Taxi int `json:"taxi"`
				Toll int `json:"toll"`
			} `json:"fare"`
		} `json:"summary"`
	} `json:"routes"`
}

// GetDirections requests a route between origin and destination.
func (c *Client) GetDirections(ctx context.Context, params service.DirectionsParams) (*service.DirectionsResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + directionsPath + "?" + buildQuery(params).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directions request")
	}

	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send directions request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read directions response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("directions request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("origin", params.Origin),
			slog.String("destination", params.Destination),
		)

		return nil, &service.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var parsed directionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode directions response")
	}

	if len(parsed.Routes) == 0 {
		return nil, errors.Wrap(service.ErrNoRouteFound, "directions response contained no routes")
	}
	if parsed.Routes[0].ResultCode != 0 {
		return nil, errors.Wrapf(service.ErrNoRouteFound, "provider result %d: %s",
			parsed.Routes[0].ResultCode, parsed.Routes[0].ResultMsg)
	}

	routes := make([]service.RouteSummary, 0, len(parsed.Routes))
	for _, route := range parsed.Routes {
		routes = append(routes, service.RouteSummary{
			DistanceMeters:  route.Summary.Distance,
			DurationSeconds: route.Summary.Duration,
			TaxiFare:        route.Summary.Fare.Taxi,
			TollFare:        route.Summary.Fare.Toll,
			Priority:        entity.RoutePriority(route.Summary.Priority),
			ResultMessage:   route.ResultMsg,
		})
	}

	return &service.DirectionsResult{
		Routes:     routes,
		RawBody:    body,
		StatusCode: resp.StatusCode,
	}, nil
}

// validateParams applies the client-side guards. The orchestrator does not
// re-validate before calling.
func validateParams(params service.DirectionsParams) error {
	if !coordinatePattern.MatchString(params.Origin) {
		return errors.Errorf("invalid origin coordinate %q, expected \"lng,lat\"", params.Origin)
	}
	if !coordinatePattern.MatchString(params.Destination) {
		return errors.Errorf("invalid destination coordinate %q, expected \"lng,lat\"", params.Destination)
	}
	if params.Priority != "" && !params.Priority.Valid() {
		return errors.Errorf("invalid route priority %q", params.Priority)
	}
	if params.Waypoints != "" {
		for _, waypoint := range strings.Split(params.Waypoints, "|") {
			if !coordinatePattern.MatchString(waypoint) {
				return errors.Errorf("invalid waypoint coordinate %q, expected \"lng,lat\"", waypoint)
			}
		}
	}
	if params.CarFuel != "" {
		if _, ok := validFuels[params.CarFuel]; !ok {
			return errors.Errorf("invalid car fuel %q", params.CarFuel)
		}
	}

	return nil
}

func buildQuery(params service.DirectionsParams) url.Values {
	query := url.Values{}
	query.Set("origin", params.Origin)
	query.Set("destination", params.Destination)

	if params.Priority != "" {
		query.Set("priority", string(params.Priority))
	}
	if params.Waypoints != "" {
		query.Set("waypoints", params.Waypoints)
	}
	if params.Avoid != "" {
		query.Set("avoid", params.Avoid)
	}
	if params.CarFuel != "" {
		query.Set("car_fuel", params.CarFuel)
	}
	if params.CarHipass {
		query.Set("car_hipass", "true")
	}
	if params.Alternatives {
		query.Set("alternatives", "true")
	}
	if params.RoadDetails {
		query.Set("road_details", "true")
	}
	if params.SummaryOnly {
		query.Set("summary", "true")
	}

	return query
}
