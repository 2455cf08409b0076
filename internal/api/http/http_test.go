package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evandalmeida/eDashboard/internal/dependency/mocks"
	"github.com/evandalmeida/eDashboard/internal/entity"
	"github.com/evandalmeida/eDashboard/internal/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultRange() entity.DateRange {
	return entity.DateRange{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func newTestServer(t *testing.T, svc *mocks.Dashboard) *httptest.Server {
	t.Helper()
	s := New(&Config{AllowedOrigins: []string{"https://dash.example.com"}})
	srv := httptest.NewServer(s.Handler(svc))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestDashboard(t *testing.T) {
	svc := mocks.NewDashboard(t)
	svc.EXPECT().DefaultRange().Return(defaultRange())
	svc.EXPECT().Location().Return(time.UTC)

	want, err := entity.ParseDateRange("2024-03-01", "2024-03-02", time.UTC)
	require.NoError(t, err)
	svc.EXPECT().Build(mock.Anything, want, entity.BasisLineItems).Return(&entity.Dashboard{
		RunID:   "run-42",
		Range:   want,
		Basis:   entity.BasisLineItems,
		Metrics: reconcile.Compute(decimal.NewFromInt(300), decimal.NewFromInt(100), decimal.NewFromInt(50)),
		Sources: map[entity.Source]entity.SourceStatus{entity.SourceShopify: {OK: true}},
	}, nil)

	srv := newTestServer(t, svc)
	resp, body := get(t, srv.URL+"/api/dashboard?start=2024-03-01&end=2024-03-02&basis=line_items", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "run-42", body["run_id"])
	assert.Equal(t, "line_items", body["basis"])

	kpis := body["kpis"].(map[string]any)
	assert.Equal(t, "$300.00", kpis["sales_total"])
	assert.Equal(t, "300.0%", kpis["roas"])
	assert.Equal(t, "100.0%", kpis["roi"])
}

func TestDashboardDefaultsRangeAndBasis(t *testing.T) {
	svc := mocks.NewDashboard(t)
	svc.EXPECT().DefaultRange().Return(defaultRange())
	svc.EXPECT().Location().Return(time.UTC)
	svc.EXPECT().Build(mock.Anything, defaultRange(), entity.BasisTotalPrice).
		Return(&entity.Dashboard{Range: defaultRange(), Basis: entity.BasisTotalPrice}, nil)

	srv := newTestServer(t, svc)
	resp, body := get(t, srv.URL+"/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-02-01", body["start"])
	assert.Equal(t, "2024-03-02", body["end"])
}

func TestDashboardBadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"unknown basis", "?basis=gross", "invalid revenue basis"},
		{"malformed date", "?start=03/01/2024&end=2024-03-02", "invalid date range"},
		{"end before start", "?start=2024-03-05&end=2024-03-01", "invalid date range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewDashboard(t)
			svc.EXPECT().DefaultRange().Return(defaultRange()).Maybe()
			svc.EXPECT().Location().Return(time.UTC).Maybe()

			srv := newTestServer(t, svc)
			resp, body := get(t, srv.URL+"/api/dashboard"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestDashboardBuildError(t *testing.T) {
	svc := mocks.NewDashboard(t)
	svc.EXPECT().DefaultRange().Return(defaultRange())
	svc.EXPECT().Location().Return(time.UTC)
	svc.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	srv := newTestServer(t, svc)
	resp, _ := get(t, srv.URL+"/api/dashboard", nil)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
}

func TestHealthzAndCORS(t *testing.T) {
	srv := newTestServer(t, mocks.NewDashboard(t))

	resp, body := get(t, srv.URL+"/healthz", map[string]string{"Origin": "https://dash.example.com"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "https://dash.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, _ = get(t, srv.URL+"/healthz", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("http://localhost:3000", nil))
	assert.True(t, isOriginAllowed("https://a.example", []string{"https://a.example"}))
	assert.False(t, isOriginAllowed("https://b.example", []string{"https://a.example"}))
	assert.True(t, isOriginAllowed("https://b.example", []string{"*"}))
}
