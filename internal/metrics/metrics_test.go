package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPrometheusMiddleware_RecordsRequests(t *testing.T) {
	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/ping", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/ping", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordAggregation(t *testing.T) {
	before := testutil.ToFloat64(AggregationsTotal.WithLabelValues("success"))
	RecordAggregation(5*time.Millisecond, "success")
	after := testutil.ToFloat64(AggregationsTotal.WithLabelValues("success"))
	assert.Equal(t, before+1, after)
}

func TestSkippedOrderLinesCounter(t *testing.T) {
	before := testutil.ToFloat64(SkippedOrderLines)
	SkippedOrderLines.Inc()
	after := testutil.ToFloat64(SkippedOrderLines)
	assert.Equal(t, before+1, after)
}

func TestRecordChangeEvent(t *testing.T) {
	before := testutil.ToFloat64(ChangeEventsTotal.WithLabelValues("published"))
	RecordChangeEvent("published")
	after := testutil.ToFloat64(ChangeEventsTotal.WithLabelValues("published"))
	assert.Equal(t, before+1, after)
}
