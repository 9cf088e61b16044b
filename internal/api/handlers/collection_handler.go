package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gudangops/whmonitor/internal/repository"
)

// CollectionHandler exposes the raw imported collections as flat JSON
// lists, mainly for spreadsheet cross-checks against the dashboard views.
type CollectionHandler struct {
	repo repository.CollectionRepository
}

func NewCollectionHandler(repo repository.CollectionRepository) *CollectionHandler {
	return &CollectionHandler{repo: repo}
}

func listRanged[T any](list func(ctx context.Context, from, to string) ([]T, error), name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to := dateRange(c)
		rows, err := list(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list " + name})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func listAll[T any](list func(ctx context.Context) ([]T, error), name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := list(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list " + name})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// Register mounts one list route per collection under g. Dated collections
// honor the from/to query range; master data ignores it.
func (h *CollectionHandler) Register(g *gin.RouterGroup) {
	g.GET("/arrivals", listRanged(h.repo.ListArrivals, "arrivals"))
	g.GET("/transactions", listRanged(h.repo.ListTransactions, "transactions"))
	g.GET("/vas", listRanged(h.repo.ListVas, "vas tasks"))
	g.GET("/dcc", listRanged(h.repo.ListDcc, "cycle counts"))
	g.GET("/damages", listRanged(h.repo.ListDamages, "damages"))
	g.GET("/qc-returns", listRanged(h.repo.ListQcReturns, "qc returns"))
	g.GET("/unloadings", listRanged(h.repo.ListUnloadings, "unloadings"))
	g.GET("/projects", listRanged(h.repo.ListProjects, "projects"))
	g.GET("/soh", listAll(h.repo.ListSoh, "stock snapshot"))
	g.GET("/locations", listAll(h.repo.ListLocations, "locations"))
	g.GET("/attendances", listAll(h.repo.ListAttendances, "attendances"))
	g.GET("/employees", listAll(h.repo.ListEmployees, "employees"))
}
