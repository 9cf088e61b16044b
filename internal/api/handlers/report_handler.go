package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/export"
	"github.com/gudangops/whmonitor/internal/service"
)

type ReportHandler struct {
	inbound      *service.InboundService
	inventory    *service.InventoryService
	utilization  *service.UtilizationService
	aging        *service.AgingService
	manpower     *service.ManpowerService
	productivity *service.ProductivityService
}

func NewReportHandler(
	inbound *service.InboundService,
	inventory *service.InventoryService,
	utilization *service.UtilizationService,
	aging *service.AgingService,
	manpower *service.ManpowerService,
	productivity *service.ProductivityService,
) *ReportHandler {
	return &ReportHandler{
		inbound:      inbound,
		inventory:    inventory,
		utilization:  utilization,
		aging:        aging,
		manpower:     manpower,
		productivity: productivity,
	}
}

func dateRange(c *gin.Context) (string, string) {
	return strings.TrimSpace(c.Query("from")), strings.TrimSpace(c.Query("to"))
}

func (h *ReportHandler) GetInbound(c *gin.Context) {
	from, to := dateRange(c)
	summary, err := h.inbound.Summary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build inbound summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetInventory(c *gin.Context) {
	from, to := dateRange(c)
	summary, err := h.inventory.Summary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build inventory summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetUtilization(c *gin.Context) {
	summary, err := h.utilization.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build utilization summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetAging(c *gin.Context) {
	summary, err := h.aging.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build aging summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetPublicAging(c *gin.Context) {
	summary, err := h.aging.Public(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build aging summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetManpower(c *gin.Context) {
	summary, err := h.manpower.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build manpower summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetProductivity(c *gin.Context) {
	from, to := dateRange(c)
	summary, err := h.productivity.Summary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build productivity summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportProductivity streams one leaderboard as a CSV attachment.
func (h *ReportHandler) ExportProductivity(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	from, to := dateRange(c)
	summary, err := h.productivity.Summary(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build productivity summary"})
		return
	}

	var board *domain.Leaderboard
	for i := range summary.Boards {
		if summary.Boards[i].Category == category {
			board = &summary.Boards[i]
			break
		}
	}
	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown category %q", category)})
		return
	}

	filename := fmt.Sprintf("leaderboard_%s_%s.csv", category, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteLeaderboard(c.Writer, *board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export leaderboard"})
	}
}

// ExportAging streams the public aging expiry pivot as a CSV attachment.
func (h *ReportHandler) ExportAging(c *gin.Context) {
	summary, err := h.aging.Public(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build aging summary"})
		return
	}

	filename := fmt.Sprintf("stock_aging_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WritePivot(c.Writer, "Brand", summary.ByExpiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export aging pivot"})
	}
}
