package kakao

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freightway/config"
	"freightway/internal/domain/entity"
	"freightway/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directionsBody = `{
	"trans_id": "0189d1fa",
	"routes": [
		{
			"result_code": 0,
			"result_msg": "길찾기 성공",
			"summary": {
				"distance": 12345,
				"duration": 754,
				"priority": "RECOMMEND",
				"fare": {"taxi": 14300, "toll": 0}
			}
		},
		{
			"result_code": 0,
			"result_msg": "길찾기 성공",
			"summary": {
				"distance": 13100,
				"duration": 731,
				"priority": "TIME",
				"fare": {"taxi": 15200, "toll": 1200}
			}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) service.RouteProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Kakao: &config.KakaoConfig{
			BaseURL:    server.URL,
			RESTAPIKey: "test-key",
			Timeout:    2 * time.Second,
		},
	}

	return NewClient(cfg, slog.Default())
}

func TestClient_GetDirections_Success(t *testing.T) {
	var gotAuth string
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(directionsBody))
	})

	result, err := client.GetDirections(context.Background(), service.DirectionsParams{
		Origin:      "127.0276,37.4979",
		Destination: "129.0756,35.1796",
		Priority:    entity.PriorityRecommend,
		SummaryOnly: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, []string{"127.0276,37.4979"}, gotQuery["origin"])
	assert.Equal(t, []string{"129.0756,35.1796"}, gotQuery["destination"])
	assert.Equal(t, []string{"RECOMMEND"}, gotQuery["priority"])
	assert.Equal(t, []string{"true"}, gotQuery["summary"])

	require.Len(t, result.Routes, 2)
	assert.Equal(t, 12345, result.Routes[0].DistanceMeters)
	assert.Equal(t, 754, result.Routes[0].DurationSeconds)
	assert.Equal(t, 14300, result.Routes[0].TaxiFare)
	assert.Equal(t, entity.PriorityRecommend, result.Routes[0].Priority)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.JSONEq(t, directionsBody, string(result.RawBody))
}

func TestClient_GetDirections_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg": "wrong appKey"}`))
	})

	result, err := client.GetDirections(context.Background(), service.DirectionsParams{
		Origin:      "127.0,37.5",
		Destination: "129.0,35.1",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var provErr *service.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
	assert.Contains(t, provErr.Message, "wrong appKey")
}

func TestClient_GetDirections_NoRoutes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"trans_id": "x", "routes": []}`))
	})

	result, err := client.GetDirections(context.Background(), service.DirectionsParams{
		Origin:      "127.0,37.5",
		Destination: "129.0,35.1",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, service.ErrNoRouteFound))
}

func TestClient_GetDirections_RouteLevelFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes": [{"result_code": 104, "result_msg": "출발지와 도착지가 5m 이내로 가깝습니다"}]}`))
	})

	_, err := client.GetDirections(context.Background(), service.DirectionsParams{
		Origin:      "127.0,37.5",
		Destination: "127.0,37.5",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNoRouteFound))
	assert.Contains(t, err.Error(), "104")
}

func TestClient_GetDirections_ValidatesParams(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tests := []struct {
		name   string
		params service.DirectionsParams
	}{
		{
			name:   "malformed origin",
			params: service.DirectionsParams{Origin: "37.5;127.0", Destination: "129.0,35.1"},
		},
		{
			name:   "missing destination",
			params: service.DirectionsParams{Origin: "127.0,37.5"},
		},
		{
			name: "unknown priority",
			params: service.DirectionsParams{
				Origin: "127.0,37.5", Destination: "129.0,35.1",
				Priority: entity.RoutePriority("FASTEST"),
			},
		},
		{
			name: "malformed waypoint",
			params: service.DirectionsParams{
				Origin: "127.0,37.5", Destination: "129.0,35.1",
				Waypoints: "127.1,37.4|not-a-coordinate",
			},
		},
		{
			name: "unknown fuel",
			params: service.DirectionsParams{
				Origin: "127.0,37.5", Destination: "129.0,35.1",
				CarFuel: "HYDROGEN",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GetDirections(context.Background(), tt.params)
			require.Error(t, err)
		})
	}

	assert.False(t, called, "invalid params must be rejected before any request is sent")
}
