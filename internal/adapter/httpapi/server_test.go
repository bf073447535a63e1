package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jiayao2006/AIVest/internal/adapter/repository/memory"
	"github.com/Jiayao2006/AIVest/internal/usecase/analytics"
	"github.com/Jiayao2006/AIVest/internal/usecase/client"
	"github.com/Jiayao2006/AIVest/internal/usecase/portfolio"
	"github.com/Jiayao2006/AIVest/internal/usecase/recommendation"
	"github.com/Jiayao2006/AIVest/internal/usecase/seeder"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds a router over freshly seeded in-memory stores
func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()

	clientRepo := memory.NewClientRepository()
	recRepo := memory.NewRecommendationRepository()
	portfolioRepo := memory.NewPortfolioRepository(seeder.SeedPortfolios())
	require.NoError(t, seeder.NewSeeder(clientRepo, recRepo, nil).Seed(context.Background()))

	services := Services{
		Clients:         client.NewClientService(clientRepo, nil, false),
		Portfolios:      portfolio.NewPortfolioService(portfolioRepo),
		Recommendations: recommendation.NewRecommendationService(clientRepo, recRepo, nil),
		Analytics:       analytics.NewAnalyticsService(clientRepo, recRepo, portfolioRepo),
	}
	return NewServer(services, opts, nil)
}

func doRequest(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func clientIDs(clients []clientResponse) []string {
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestListClients(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := doRequest(t, srv, http.MethodGet, "/api/clients", "")
	require.Equal(t, http.StatusOK, w.Code)

	clients := decode[[]clientResponse](t, w)
	require.Len(t, clients, 10)
	assert.Equal(t, "c001", clients[0].ID)
	assert.Equal(t, 860.0, clients[0].AUM)
	assert.Equal(t, "c010", clients[9].ID)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestSearchClients(t *testing.T) {
	srv := newTestServer(t, Options{})

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "AUM range is inclusive",
			query:   "minAUM=500&maxAUM=1000",
			wantIDs: []string{"c004", "c007", "c001", "c009", "c005"},
		},
		{
			name:    "Sort by AUM descending",
			query:   "sortBy=aum&sortOrder=desc",
			wantIDs: []string{"c010", "c006", "c002", "c004", "c001", "c009", "c007", "c005", "c003", "c008"},
		},
		{
			name:    "Bracketed multi-value filters",
			query:   "riskProfiles[]=Aggressive",
			wantIDs: []string{"c010", "c003"},
		},
		{
			name:    "Plain multi-value filters",
			query:   "domiciles=United%20Kingdom&domiciles=Norway&sortBy=aum",
			wantIDs: []string{"c003", "c004", "c010"},
		},
		{
			name:    "Text matches segments case-insensitively",
			query:   "q=esg",
			wantIDs: []string{"c005"},
		},
		{
			name:    "No match yields an empty list",
			query:   "q=nothing-matches-this",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodGet, "/api/clients/search?"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantIDs, clientIDs(decode[[]clientResponse](t, w)))
		})
	}
}

func TestSearchClients_InvalidBound(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := doRequest(t, srv, http.MethodGet, "/api/clients/search?minAUM=lots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "Invalid search parameters", body["error"])
}

func TestGetClient(t *testing.T) {
	srv := newTestServer(t, Options{})

	t.Run("Existing client", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/api/clients/c004", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[clientResponse](t, w)
		assert.Equal(t, "Anders Vikström", got.Name)
		assert.Equal(t, "Moderate", got.RiskProfile)
	})

	t.Run("Unknown client", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/api/clients/c999", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "Client not found", body["error"])
		assert.Equal(t, "c999", body["id"])
	})
}

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantError   string
		wantMissing []any
	}{
		{
			name:       "Numeric AUM",
			body:       `{"name":"Ada Lovelace","phone":"+44 1","aum":750,"domicile":"United Kingdom","riskProfile":"Moderate","segments":["Tech"]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "String AUM and single segment",
			body:       `{"name":"Ada Lovelace","phone":"+44 1","aum":"750.5","domicile":"United Kingdom","riskProfile":"Moderate","segments":"Tech"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "Missing fields are listed",
			body:        `{"name":"Ada Lovelace","aum":null}`,
			wantStatus:  http.StatusBadRequest,
			wantError:   "Missing required fields",
			wantMissing: []any{"phone", "aum", "domicile", "riskProfile"},
		},
		{
			name:        "Zero AUM counts as missing",
			body:        `{"name":"Ada","phone":"1","aum":0,"domicile":"X","riskProfile":"Moderate"}`,
			wantStatus:  http.StatusBadRequest,
			wantError:   "Missing required fields",
			wantMissing: []any{"aum"},
		},
		{
			name:        "Zero AUM is listed with the other missing fields",
			body:        `{"name":"","phone":"1","aum":0,"domicile":"X","riskProfile":"Moderate"}`,
			wantStatus:  http.StatusBadRequest,
			wantError:   "Missing required fields",
			wantMissing: []any{"name", "aum"},
		},
		{
			name:       "AUM beyond the float64 range",
			body:       `{"name":"Ada","phone":"1","aum":"1e400","domicile":"X","riskProfile":"Moderate"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid data format",
		},
		{
			name:       "Non-numeric AUM",
			body:       `{"name":"Ada","phone":"1","aum":"a lot","domicile":"X","riskProfile":"Moderate"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid data format",
		},
		{
			name:       "Malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid data format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, Options{})

			w := doRequest(t, srv, http.MethodPost, "/api/clients", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus == http.StatusCreated {
				created := decode[clientResponse](t, w)
				assert.Equal(t, "c011", created.ID)
				assert.Equal(t, []string{"Tech"}, created.Segments)
				require.NotNil(t, created.CreatedAt)

				get := doRequest(t, srv, http.MethodGet, "/api/clients/c011", "")
				require.Equal(t, http.StatusOK, get.Code)
				assert.Equal(t, created, decode[clientResponse](t, get))
				return
			}

			body := decode[map[string]any](t, w)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantMissing != nil {
				assert.Equal(t, tt.wantMissing, body["missing"])
				assert.Len(t, body["required"], 5)
			}

			list := doRequest(t, srv, http.MethodGet, "/api/clients", "")
			assert.Len(t, decode[[]clientResponse](t, list), 10)
		})
	}
}

func TestDeleteClient(t *testing.T) {
	srv := newTestServer(t, Options{})

	t.Run("Unknown client leaves the store unchanged", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodDelete, "/api/clients/c999", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Client not found", decode[map[string]any](t, w)["error"])

		list := doRequest(t, srv, http.MethodGet, "/api/clients", "")
		assert.Len(t, decode[[]clientResponse](t, list), 10)
	})

	t.Run("Existing client", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodDelete, "/api/clients/c002", "")
		require.Equal(t, http.StatusOK, w.Code)

		got := decode[deletedClientResponse](t, w)
		assert.Equal(t, "Client deleted successfully", got.Message)
		assert.Equal(t, deletedClientBody{ID: "c002", Name: "Daniel Chen"}, got.DeletedClient)

		assert.Equal(t, http.StatusNotFound, doRequest(t, srv, http.MethodGet, "/api/clients/c002", "").Code)
	})
}

func TestGetPortfolio(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := doRequest(t, srv, http.MethodGet, "/api/clients/c010/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[portfolioResponse](t, w)
	assert.Equal(t, "c010", got.ClientID)
	assert.Equal(t, 1890.0, got.TotalValue)
	assert.NotEmpty(t, got.Allocations)

	w = doRequest(t, srv, http.MethodGet, "/api/clients/c999/portfolio", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Portfolio not found", decode[map[string]any](t, w)["error"])
}

func TestListRecommendations(t *testing.T) {
	srv := newTestServer(t, Options{})

	tests := []struct {
		name       string
		clientID   string
		wantStatus int
		wantIDs    []string
	}{
		{name: "Static recommendations", clientID: "c001", wantStatus: http.StatusOK, wantIDs: []string{"rec001", "rec002"}},
		{name: "Generated recommendations", clientID: "c004", wantStatus: http.StatusOK, wantIDs: []string{"rec-c004-1", "rec-c004-2"}},
		{name: "Unknown client", clientID: "c999", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodGet, "/api/clients/"+tt.clientID+"/recommendations", "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			recs := decode[[]recommendationResponse](t, w)
			ids := make([]string, 0, len(recs))
			for _, r := range recs {
				ids = append(ids, r.ID)
				assert.Equal(t, tt.clientID, r.ClientID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRecommendationDetail(t *testing.T) {
	srv := newTestServer(t, Options{})

	first := doRequest(t, srv, http.MethodGet, "/api/recommendations/rec-c004-1/detail", "")
	second := doRequest(t, srv, http.MethodGet, "/api/recommendations/rec-c004-1/detail", "")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	a := decode[recommendationResponse](t, first)
	b := decode[recommendationResponse](t, second)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.Summary, b.Summary)
	assert.Equal(t, "pending", a.Status)
	assert.Nil(t, a.ActionDate)

	static := doRequest(t, srv, http.MethodGet, "/api/recommendations/rec001/detail", "")
	require.Equal(t, http.StatusOK, static.Code)
	assert.NotEmpty(t, decode[recommendationResponse](t, static).Benefits)

	for _, id := range []string{"rec999", "rec-c999-1", "rec-c004-3"} {
		w := doRequest(t, srv, http.MethodGet, "/api/recommendations/"+id+"/detail", "")
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "Recommendation not found", decode[map[string]any](t, w)["error"])
	}
}

func TestRecommendationAction(t *testing.T) {
	t.Run("Synthetic recommendation is persisted", func(t *testing.T) {
		srv := newTestServer(t, Options{})

		w := doRequest(t, srv, http.MethodPost, "/api/recommendations/rec-c004-1/action", `{"action":"approved","notes":"go ahead"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := decode[actionResponse](t, w)
		assert.True(t, got.Success)
		assert.Equal(t, "approved", got.Recommendation.Status)
		require.NotNil(t, got.Recommendation.Notes)
		assert.Equal(t, "go ahead", *got.Recommendation.Notes)
		require.NotNil(t, got.Recommendation.ActionDate)

		detail := doRequest(t, srv, http.MethodGet, "/api/recommendations/rec-c004-1/detail", "")
		require.Equal(t, http.StatusOK, detail.Code)
		persisted := decode[recommendationResponse](t, detail)
		assert.Equal(t, got.Recommendation, persisted)
	})

	t.Run("Static recommendation is updated in place", func(t *testing.T) {
		srv := newTestServer(t, Options{})

		w := doRequest(t, srv, http.MethodPost, "/api/recommendations/rec003/action", `{"action":"rejected"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rejected", decode[actionResponse](t, w).Recommendation.Status)

		list := doRequest(t, srv, http.MethodGet, "/api/clients/c002/recommendations", "")
		recs := decode[[]recommendationResponse](t, list)
		require.Len(t, recs, 1)
		assert.Equal(t, "rejected", recs[0].Status)
	})

	t.Run("Invalid action leaves the store unchanged", func(t *testing.T) {
		srv := newTestServer(t, Options{})

		for _, body := range []string{`{"action":"maybe"}`, ""} {
			w := doRequest(t, srv, http.MethodPost, "/api/recommendations/rec-c004-1/action", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, `Invalid action. Must be "approved" or "rejected"`, decode[map[string]any](t, w)["error"])
		}

		detail := doRequest(t, srv, http.MethodGet, "/api/recommendations/rec001/detail", "")
		assert.Equal(t, "pending", decode[recommendationResponse](t, detail).Status)

		network := doRequest(t, srv, http.MethodGet, "/api/debug/network", "")
		assert.Equal(t, 6.0, decode[map[string]any](t, network)["recommendationsCount"])
	})

	t.Run("Unknown recommendation", func(t *testing.T) {
		srv := newTestServer(t, Options{})

		w := doRequest(t, srv, http.MethodPost, "/api/recommendations/rec999/action", `{"action":"approved"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMetadataAndSummary(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := doRequest(t, srv, http.MethodGet, "/api/metadata/risk-profiles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Aggressive", "Conservative", "Moderate"}, decode[[]string](t, w))

	w = doRequest(t, srv, http.MethodGet, "/api/metadata/domiciles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]string](t, w), 9)

	w = doRequest(t, srv, http.MethodGet, "/api/metadata/segments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]string](t, w), 20)

	w = doRequest(t, srv, http.MethodGet, "/api/analytics/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[summaryResponse](t, w)
	assert.Equal(t, 10, summary.TotalClients)
	assert.Equal(t, 9250.0, summary.TotalAUM)
	assert.Equal(t, 925.0, summary.AvgAUM)
	assert.Equal(t, aumRangeResponse{Min: 320, Max: 1890}, summary.AUMRange)
	assert.Equal(t, 4, summary.RiskDistribution["Conservative"])
	assert.Equal(t, 2, summary.DomicileDistribution["United Kingdom"])
}

func TestDiagnostics(t *testing.T) {
	origins := []string{"http://localhost:5173"}
	srv := newTestServer(t, Options{Env: "development", AllowedOrigins: origins})

	w := doRequest(t, srv, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, serviceName, health["service"])
	assert.Equal(t, "1.0.0", health["version"])

	w = doRequest(t, srv, http.MethodGet, "/api/test?ping=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	echo := decode[map[string]any](t, w)["echo"].(map[string]any)
	assert.Equal(t, "GET", echo["method"])
	assert.Equal(t, "/api/test", echo["path"])
	assert.Equal(t, map[string]any{"ping": []any{"1"}}, echo["query"])

	req := httptest.NewRequest(http.MethodGet, "/api/debug/cors", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	corsBody := decode[map[string]any](t, rec)
	assert.Equal(t, "http://localhost:5173", corsBody["originReceived"])
	assert.Equal(t, []any{"http://localhost:5173"}, corsBody["allowedOrigins"])

	w = doRequest(t, srv, http.MethodGet, "/api/debug/network", "")
	require.Equal(t, http.StatusOK, w.Code)
	network := decode[map[string]any](t, w)
	assert.Equal(t, 10.0, network["clientsCount"])
	assert.Equal(t, 6.0, network["recommendationsCount"])
	assert.Equal(t, 10.0, network["portfoliosCount"])
	assert.Equal(t, "development", network["environment"])
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := doRequest(t, srv, http.MethodGet, "/api/unknown?x=1", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "Route not found", body["error"])
	assert.Equal(t, "GET", body["method"])
	assert.Equal(t, "/api/unknown?x=1", body["path"])
	assert.NotEmpty(t, body["availableEndpoints"])
}

func TestStaticFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	t.Run("Production serves files and falls back to index", func(t *testing.T) {
		srv := newTestServer(t, Options{Env: "production", StaticDir: dir})

		w := doRequest(t, srv, http.MethodGet, "/assets/app.js", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "console.log(1)", w.Body.String())

		w = doRequest(t, srv, http.MethodGet, "/clients/c001", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<html>app</html>", w.Body.String())

		w = doRequest(t, srv, http.MethodGet, "/../../etc/passwd", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<html>app</html>", w.Body.String())

		w = doRequest(t, srv, http.MethodGet, "/api/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Development does not serve the frontend", func(t *testing.T) {
		srv := newTestServer(t, Options{Env: "development", StaticDir: dir})

		w := doRequest(t, srv, http.MethodGet, "/clients/c001", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, Options{})

	doRequest(t, srv, http.MethodPost, "/api/clients", `{"name":"Ada","phone":"1","aum":5,"domicile":"X","riskProfile":"Moderate"}`)
	doRequest(t, srv, http.MethodPost, "/api/recommendations/rec-c004-2/action", `{"action":"rejected"}`)
	doRequest(t, srv, http.MethodGet, "/api/clients/c001", "")

	w := doRequest(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	out := w.Body.String()
	assert.Contains(t, out, "aivest_clients_created_total 1")
	assert.Contains(t, out, `aivest_recommendations_actions_total{action="rejected",resolution="synthetic"} 1`)
	assert.Contains(t, out, `aivest_http_requests_total{method="GET",path="/api/clients/:id",status="200"} 1`)
}
