package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/skuledger/skuledger/api/v1"
)

const inventoryHandler = "inventory_handler"

// GetPaginatedInventory returns one page of the current view
// (GET /inventory/paginated)
func (h *Handler) GetPaginatedInventory(c *gin.Context, params v1.GetPaginatedInventoryParams) {
	q, err := params.ToQuery()
	if err != nil {
		respondError(c, inventoryHandler, "failed to fetch inventory data", err)
		return
	}

	result, err := h.inventorySrv.GetPaginated(c.Request.Context(), q)
	if err != nil {
		respondError(c, inventoryHandler, "failed to fetch inventory data", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewPaginatedInventory(result))
}

// GetCurrentInventory returns the view by limit and offset
// (GET /inventory/current)
func (h *Handler) GetCurrentInventory(c *gin.Context, params v1.GetCurrentInventoryParams) {
	result, err := h.inventorySrv.GetPage(c.Request.Context(), intOr(params.Limit, 0), intOr(params.Offset, 0))
	if err != nil {
		respondError(c, inventoryHandler, "failed to fetch inventory data", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewCurrentInventory(result))
}

// SearchInventory matches a sku prefix or a title substring
// (GET /inventory/search)
func (h *Handler) SearchInventory(c *gin.Context, params v1.SearchInventoryParams) {
	results, err := h.inventorySrv.Search(c.Request.Context(), stringOr(params.Q, ""), intOr(params.Limit, 0))
	if err != nil {
		respondError(c, inventoryHandler, "search failed", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSearchResults(results))
}

// GetTopMovers returns the rows with the largest absolute change
// (GET /inventory/top-movers)
func (h *Handler) GetTopMovers(c *gin.Context, params v1.GetTopMoversParams) {
	movers, err := h.inventorySrv.TopMovers(c.Request.Context(), intOr(params.Limit, 0))
	if err != nil {
		respondError(c, inventoryHandler, "failed to fetch top movers", err)
		return
	}

	c.JSON(http.StatusOK, v1.TopMovers{Movers: v1.NewInventoryItems(movers)})
}

// GetLowStock returns rows with 0 < quantity <= threshold
// (GET /inventory/low-stock)
func (h *Handler) GetLowStock(c *gin.Context, params v1.GetLowStockParams) {
	result, err := h.inventorySrv.LowStock(c.Request.Context(), params.Threshold)
	if err != nil {
		respondError(c, inventoryHandler, "failed to fetch low stock items", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewLowStock(result))
}

// GetInventoryStats summarizes the current view
// (GET /inventory/stats)
func (h *Handler) GetInventoryStats(c *gin.Context) {
	stats, err := h.inventorySrv.Stats(c.Request.Context())
	if err != nil {
		respondError(c, inventoryHandler, "failed to fetch inventory stats", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewInventoryStats(stats))
}
