package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Smitap11/taxables-backend/internal/services"
)

// InsightsHandler serves derived budget-vs-actual views
type InsightsHandler struct {
	insightService services.InsightServicer
}

// NewInsightsHandler creates a new InsightsHandler
func NewInsightsHandler(insightService services.InsightServicer) *InsightsHandler {
	return &InsightsHandler{insightService: insightService}
}

// Insights returns planned-vs-actual rows for every budget
// @Summary     Budget-vs-actual insights
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       scope query string false "month (default) or all"
// @Success     200 {array} services.InsightRow
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights [get]
func (h *InsightsHandler) Insights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.insightService.Insights(userID, c.DefaultQuery("scope", "month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Dashboard returns the current month's totals
// @Summary     Dashboard summary
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "summary and quick links"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *InsightsHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.insightService.Dashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quickLinks": []gin.H{
			{"label": "Transactions", "route": "/transactions", "icon": "list-alt"},
			{"label": "Insights", "route": "/insights", "icon": "insights"},
		},
		"summary": summary,
	})
}
