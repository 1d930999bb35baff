package handlers

import (
	"net/http"
	"time"

	"nextdraw/internal/metrics"
	"nextdraw/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDHeader = "X-Request-ID"

// HTTPHandler holds the dependencies for the HTTP handlers, like the lottery service.
type HTTPHandler struct {
	service  *services.LotteryService
	metrics  metrics.Sink
	gatherer prometheus.Gatherer
}

// NewHTTPHandler creates a new HTTPHandler. A nil gatherer disables /metrics.
func NewHTTPHandler(service *services.LotteryService, sink metrics.Sink, gatherer prometheus.Gatherer) *HTTPHandler {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}
	return &HTTPHandler{
		service:  service,
		metrics:  sink,
		gatherer: gatherer,
	}
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.RequestIDMiddleware())
	router.GET("/healthz", h.Health)
	router.GET("/next-draw", h.GetNextDraw)
	router.GET("/schedule", h.GetSchedule)
	if h.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

// RequestIDMiddleware tags every request with an ID, reusing the caller's if present.
func (h *HTTPHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Health reports that the process is serving.
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetNextDraw handles GET /next-draw?from=YYYY-MM-DD HH:MM:SS&tz=Zone.
func (h *HTTPHandler) GetNextDraw(c *gin.Context) {
	start := time.Now()
	next, err := h.service.NextDraw(c.Query("from"), c.Query("tz"))
	if err != nil {
		h.fail(c, "next-draw", start, err)
		return
	}
	h.metrics.QueryCompleted("next-draw", time.Since(start), metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, next)
}

// GetSchedule handles GET /schedule?from=YYYY-MM-DD HH:MM:SS.
func (h *HTTPHandler) GetSchedule(c *gin.Context) {
	start := time.Now()
	sched, err := h.service.Schedule(c.Query("from"))
	if err != nil {
		h.fail(c, "schedule", start, err)
		return
	}
	h.metrics.QueryCompleted("schedule", time.Since(start), metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, sched)
}

func (h *HTTPHandler) fail(c *gin.Context, endpoint string, start time.Time, err error) {
	status, outcome := http.StatusInternalServerError, metrics.OutcomeError
	if services.IsInputError(err) {
		status, outcome = http.StatusBadRequest, metrics.OutcomeInvalidInput
	}
	h.metrics.QueryCompleted(endpoint, time.Since(start), outcome)
	logger.Infof("request %s: %s failed: %v", c.GetString("requestID"), endpoint, err)
	c.JSON(status, gin.H{"error": err.Error()})
}
