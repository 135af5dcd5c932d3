package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/felalfaro/sellers-meli/internal/export"
	"github.com/felalfaro/sellers-meli/internal/service"
)

type DatasetHandler struct {
	svc *service.DatasetService
}

func NewDatasetHandler(svc *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// RegisterRoutes wires dataset routes into the given router.
func (h *DatasetHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/payment_methods", h.GetPaymentMethods)
		api.GET("/categories", h.GetCategories)
		api.GET("/items", h.GetItems)
		api.GET("/items/export", h.ExportItems)
	}
}

// GetPaymentMethods returns payment methods for all registered sites.
func (h *DatasetHandler) GetPaymentMethods(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.svc.PaymentMethods(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetCategories returns root categories for all registered sites.
func (h *DatasetHandler) GetCategories(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.svc.Categories(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetItems returns flattened search results for one category on one site.
func (h *DatasetHandler) GetItems(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country is required"})
		return
	}

	items, err := h.svc.ItemsByCategory(ctx, categoryID, country)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ExportItems streams flattened search results for one category on one
// site as a CSV download.
func (h *DatasetHandler) ExportItems(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country is required"})
		return
	}

	items, err := h.svc.ItemsByCategory(ctx, categoryID, country)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="items_`+country+`_`+categoryID+`.csv"`)
	if err := export.WriteItemsCSV(c.Writer, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}
