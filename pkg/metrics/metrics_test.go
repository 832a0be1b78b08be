package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics("course", prometheus.NewRegistry())

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/courses/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/courses/abc", nil)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "/courses/:id", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.RequestsInFlight))
}

func TestDegraded(t *testing.T) {
	m := NewMetrics("feed", prometheus.NewRegistry())

	m.Degraded("hall_of_fame")
	m.Degraded("hall_of_fame")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.DegradedReads.WithLabelValues("hall_of_fame")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Degraded("x") })
}
