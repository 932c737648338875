package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /inventory/paginated)
	GetPaginatedInventory(c *gin.Context, params GetPaginatedInventoryParams)
	// (GET /inventory/current)
	GetCurrentInventory(c *gin.Context, params GetCurrentInventoryParams)
	// (GET /inventory/search)
	SearchInventory(c *gin.Context, params SearchInventoryParams)
	// (GET /inventory/top-movers)
	GetTopMovers(c *gin.Context, params GetTopMoversParams)
	// (GET /inventory/low-stock)
	GetLowStock(c *gin.Context, params GetLowStockParams)
	// (GET /inventory/stats)
	GetInventoryStats(c *gin.Context)
	// (POST /inventory/refresh-view)
	RefreshView(c *gin.Context)
	// (GET /metrics/daily)
	ListDailyMetrics(c *gin.Context, params ListDailyMetricsParams)
	// (GET /metrics/daily/{date})
	GetDailyMetrics(c *gin.Context, date string)
	// (GET /changes)
	ListChanges(c *gin.Context, params ListChangesParams)
	// (GET /changes/daily/{date})
	GetDailyChanges(c *gin.Context, date string)
	// (GET /analytics)
	GetAnalytics(c *gin.Context, params GetAnalyticsParams)
	// (POST /snapshots/{date})
	UploadSnapshot(c *gin.Context, date string)
	// (POST /retention)
	StartRetention(c *gin.Context)
	// (GET /jobs/{id})
	GetJob(c *gin.Context, id string)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (siw *ServerInterfaceWrapper) bindQuery(c *gin.Context, name string, required bool, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, required, name, c.Request.URL.Query(), dest); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter %s: %w", name, err), http.StatusBadRequest)
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) bindPath(c *gin.Context, name string, dest any) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter %s: %w", name, err), http.StatusBadRequest)
		return false
	}
	return true
}

// GetPaginatedInventory operation middleware
func (siw *ServerInterfaceWrapper) GetPaginatedInventory(c *gin.Context) {
	var params GetPaginatedInventoryParams

	if !siw.bindQuery(c, "page", false, &params.Page) ||
		!siw.bindQuery(c, "limit", false, &params.Limit) ||
		!siw.bindQuery(c, "sort", false, &params.Sort) ||
		!siw.bindQuery(c, "filter", false, &params.Filter) ||
		!siw.bindQuery(c, "search", false, &params.Search) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetPaginatedInventory(c, params)
}

// GetCurrentInventory operation middleware
func (siw *ServerInterfaceWrapper) GetCurrentInventory(c *gin.Context) {
	var params GetCurrentInventoryParams

	if !siw.bindQuery(c, "limit", false, &params.Limit) ||
		!siw.bindQuery(c, "offset", false, &params.Offset) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetCurrentInventory(c, params)
}

// SearchInventory operation middleware
func (siw *ServerInterfaceWrapper) SearchInventory(c *gin.Context) {
	var params SearchInventoryParams

	if !siw.bindQuery(c, "q", false, &params.Q) ||
		!siw.bindQuery(c, "limit", false, &params.Limit) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.SearchInventory(c, params)
}

// GetTopMovers operation middleware
func (siw *ServerInterfaceWrapper) GetTopMovers(c *gin.Context) {
	var params GetTopMoversParams

	if !siw.bindQuery(c, "limit", false, &params.Limit) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetTopMovers(c, params)
}

// GetLowStock operation middleware
func (siw *ServerInterfaceWrapper) GetLowStock(c *gin.Context) {
	var params GetLowStockParams

	if !siw.bindQuery(c, "threshold", false, &params.Threshold) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetLowStock(c, params)
}

// GetInventoryStats operation middleware
func (siw *ServerInterfaceWrapper) GetInventoryStats(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetInventoryStats(c)
}

// RefreshView operation middleware
func (siw *ServerInterfaceWrapper) RefreshView(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.RefreshView(c)
}

// ListDailyMetrics operation middleware
func (siw *ServerInterfaceWrapper) ListDailyMetrics(c *gin.Context) {
	var params ListDailyMetricsParams

	if !siw.bindQuery(c, "from", false, &params.From) ||
		!siw.bindQuery(c, "to", false, &params.To) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListDailyMetrics(c, params)
}

// GetDailyMetrics operation middleware
func (siw *ServerInterfaceWrapper) GetDailyMetrics(c *gin.Context) {
	var date string

	if !siw.bindPath(c, "date", &date) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetDailyMetrics(c, date)
}

// ListChanges operation middleware
func (siw *ServerInterfaceWrapper) ListChanges(c *gin.Context) {
	var params ListChangesParams

	if !siw.bindQuery(c, "from", true, &params.From) ||
		!siw.bindQuery(c, "to", true, &params.To) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListChanges(c, params)
}

// GetDailyChanges operation middleware
func (siw *ServerInterfaceWrapper) GetDailyChanges(c *gin.Context) {
	var date string

	if !siw.bindPath(c, "date", &date) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetDailyChanges(c, date)
}

// GetAnalytics operation middleware
func (siw *ServerInterfaceWrapper) GetAnalytics(c *gin.Context) {
	var params GetAnalyticsParams

	if !siw.bindQuery(c, "from", true, &params.From) ||
		!siw.bindQuery(c, "to", true, &params.To) ||
		!siw.bindQuery(c, "limit", false, &params.Limit) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetAnalytics(c, params)
}

// UploadSnapshot operation middleware
func (siw *ServerInterfaceWrapper) UploadSnapshot(c *gin.Context) {
	var date string

	if !siw.bindPath(c, "date", &date) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.UploadSnapshot(c, date)
}

// StartRetention operation middleware
func (siw *ServerInterfaceWrapper) StartRetention(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.StartRetention(c)
}

// GetJob operation middleware
func (siw *ServerInterfaceWrapper) GetJob(c *gin.Context) {
	var id string

	if !siw.bindPath(c, "id", &id) {
		return
	}
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetJob(c, id)
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers mounts every ServerInterface route on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, ErrorResponse{Error: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/inventory/paginated", wrapper.GetPaginatedInventory)
	router.GET(options.BaseURL+"/inventory/current", wrapper.GetCurrentInventory)
	router.GET(options.BaseURL+"/inventory/search", wrapper.SearchInventory)
	router.GET(options.BaseURL+"/inventory/top-movers", wrapper.GetTopMovers)
	router.GET(options.BaseURL+"/inventory/low-stock", wrapper.GetLowStock)
	router.GET(options.BaseURL+"/inventory/stats", wrapper.GetInventoryStats)
	router.POST(options.BaseURL+"/inventory/refresh-view", wrapper.RefreshView)
	router.GET(options.BaseURL+"/metrics/daily", wrapper.ListDailyMetrics)
	router.GET(options.BaseURL+"/metrics/daily/:date", wrapper.GetDailyMetrics)
	router.GET(options.BaseURL+"/changes", wrapper.ListChanges)
	router.GET(options.BaseURL+"/changes/daily/:date", wrapper.GetDailyChanges)
	router.GET(options.BaseURL+"/analytics", wrapper.GetAnalytics)
	router.POST(options.BaseURL+"/snapshots/:date", wrapper.UploadSnapshot)
	router.POST(options.BaseURL+"/retention", wrapper.StartRetention)
	router.GET(options.BaseURL+"/jobs/:id", wrapper.GetJob)
}
