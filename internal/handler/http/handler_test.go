package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/metrics"
	"github.com/MKhiriev/blueprint-utils/internal/mock"
	"github.com/MKhiriev/blueprint-utils/internal/service"
)

func newTestRouter(t *testing.T, emitter *lifecycle.Emitter, m *metrics.Metrics) *chi.Mux {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()

	h := NewHandler(&service.Services{AppInfoService: appInfo}, emitter, m, config.Server{}, logger.Nop())
	router, err := h.Init(context.Background())
	require.NoError(t, err)
	return router
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestInit_VersionAndMetrics(t *testing.T) {
	router := newTestRouter(t, lifecycle.NewEmitter(), metrics.New())

	rec := do(router, http.MethodGet, "/api/version")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = do(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInit_WithoutMetrics(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := do(router, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_EmitsRouterBefore(t *testing.T) {
	emitter := lifecycle.NewEmitter()
	emitter.On(lifecycle.EventRouterBefore, func(_ context.Context, payload any) error {
		r := payload.(chi.Router)
		r.Get("/users/count", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"count":1}`))
		})
		return nil
	})

	router := newTestRouter(t, emitter, nil)

	rec := do(router, http.MethodGet, "/users/count")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":1}`, rec.Body.String())
}

func TestInit_ListenerError(t *testing.T) {
	emitter := lifecycle.NewEmitter()
	emitter.On(lifecycle.EventRouterBefore, func(context.Context, any) error {
		return assert.AnError
	})

	h := NewHandler(&service.Services{}, emitter, nil, config.Server{}, logger.Nop())
	router, err := h.Init(context.Background())

	assert.Nil(t, router)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInit_RecoversPanics(t *testing.T) {
	emitter := lifecycle.NewEmitter()
	emitter.On(lifecycle.EventRouterBefore, func(_ context.Context, payload any) error {
		payload.(chi.Router).Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
		return nil
	})
	router := newTestRouter(t, emitter, nil)

	rec := do(router, http.MethodGet, "/boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_CompressesJSON(t *testing.T) {
	emitter := lifecycle.NewEmitter()
	emitter.On(lifecycle.EventRouterBefore, func(_ context.Context, payload any) error {
		payload.(chi.Router).Get("/users/schema", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"schema":{}}`))
		})
		return nil
	})
	router := newTestRouter(t, emitter, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/schema", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
