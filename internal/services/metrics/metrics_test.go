package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstrumentedRouter(m *Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.HTTPMiddleware())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", ok)
	r.GET("/weather", ok)
	r.GET("/forecast", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/metrics", m.Handler())
	return r
}

func scrape(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHTTPMiddleware_CountsAllRoutes(t *testing.T) {
	m := NewMetrics("mw_test")
	r := newInstrumentedRouter(m)

	scrape(t, r, "/")
	scrape(t, r, "/weather?city=Kyiv")

	w := scrape(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `mw_test_http_requests_total{endpoint="/",method="GET",status_class="2xx"}`)
	assert.Contains(t, body, `mw_test_http_requests_total{endpoint="/weather",method="GET",status_class="2xx"}`)
}

func TestHTTPMiddleware_DomainCountersSkipNonWeatherRoutes(t *testing.T) {
	m := NewMetrics("mw_test")
	r := newInstrumentedRouter(m)

	scrape(t, r, "/")
	scrape(t, r, "/weather?city=Kyiv")
	scrape(t, r, "/forecast?city=Kyiv&days=99")

	w := scrape(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `mw_test_weather_requests_total{city="Kyiv",endpoint="/weather"}`)
	assert.Contains(t, body, `mw_test_weather_errors_total{city="Kyiv",endpoint="/forecast",error_type="client_error"}`)
	assert.NotContains(t, body, `weather_requests_total{city="",endpoint="/"}`)
	assert.NotContains(t, body, `weather_requests_total{city="",endpoint="/metrics"}`)
}
