package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/skuledger/skuledger/api/v1"
	"github.com/skuledger/skuledger/internal/services"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

var _ v1.ServerInterface = (*Handler)(nil)

type Handler struct {
	inventorySrv *services.InventoryService
	metricsSrv   *services.MetricsService
	deltaSrv     *services.DeltaService
	analyticsSrv *services.AnalyticsService
	jobSrv       *services.JobService
}

func New(
	inventorySrv *services.InventoryService,
	metricsSrv *services.MetricsService,
	deltaSrv *services.DeltaService,
	analyticsSrv *services.AnalyticsService,
	jobSrv *services.JobService,
) *Handler {
	return &Handler{
		inventorySrv: inventorySrv,
		metricsSrv:   metricsSrv,
		deltaSrv:     deltaSrv,
		analyticsSrv: analyticsSrv,
		jobSrv:       jobSrv,
	}
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and answered with a generic message.
func respondError(c *gin.Context, handler, msg string, err error) {
	switch {
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: err.Error()})
	default:
		zap.S().Named(handler).Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: msg})
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
