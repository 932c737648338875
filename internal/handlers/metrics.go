package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/skuledger/skuledger/api/v1"
)

const metricsHandler = "metrics_handler"

// ListDailyMetrics returns stored metrics within an optional date range
// (GET /metrics/daily)
func (h *Handler) ListDailyMetrics(c *gin.Context, params v1.ListDailyMetricsParams) {
	list, err := h.metricsSrv.List(c.Request.Context(), stringOr(params.From, ""), stringOr(params.To, ""))
	if err != nil {
		respondError(c, metricsHandler, "failed to list daily metrics", err)
		return
	}

	out := v1.DailyMetricsList{Metrics: make([]v1.DailyMetrics, 0, len(list))}
	for _, m := range list {
		out.Metrics = append(out.Metrics, v1.NewDailyMetricsFromModel(m))
	}
	c.JSON(http.StatusOK, out)
}

// GetDailyMetrics returns the metrics of one date
// (GET /metrics/daily/{date})
func (h *Handler) GetDailyMetrics(c *gin.Context, date string) {
	m, err := h.metricsSrv.Get(c.Request.Context(), date)
	if err != nil {
		respondError(c, metricsHandler, "failed to fetch daily metrics", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewDailyMetricsFromModel(*m))
}

// ListChanges returns the change records within a date range
// (GET /changes)
func (h *Handler) ListChanges(c *gin.Context, params v1.ListChangesParams) {
	changes, err := h.deltaSrv.ListRange(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondError(c, metricsHandler, "failed to list changes", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewChangeList(changes))
}

// GetDailyChanges returns the change records of one date
// (GET /changes/daily/{date})
func (h *Handler) GetDailyChanges(c *gin.Context, date string) {
	changes, err := h.deltaSrv.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, metricsHandler, "failed to list changes", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewChangeList(changes))
}

// GetAnalytics aggregates change records over a period
// (GET /analytics)
func (h *Handler) GetAnalytics(c *gin.Context, params v1.GetAnalyticsParams) {
	result, err := h.analyticsSrv.Period(c.Request.Context(), params.From, params.To, intOr(params.Limit, 0))
	if err != nil {
		respondError(c, metricsHandler, "failed to compute analytics", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
