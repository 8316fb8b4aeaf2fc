package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Smitap11/taxables-backend/internal/services"
)

// TransactionHandler serves the unified feed and the dynamic filter catalogs
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Feed returns the merged income+expense feed
// @Summary     Unified transaction feed
// @Description Merge incomes and expenses into one normalized list. Defaults
// @Description to the current month when no date range is given.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Type slug or all (default all)"
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to query string false "End date (YYYY-MM-DD)"
// @Param       min_amount query number false "Minimum amount"
// @Param       max_amount query number false "Maximum amount"
// @Param       remark query string false "Substring match on remark"
// @Param       category query string false "Substring match on category/source"
// @Param       limit query int false "Page size (default 50, max 200)"
// @Param       offset query int false "Page offset"
// @Success     200 {object} map[string]interface{} "count and results"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) Feed(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	q := services.FeedQuery{
		TypeSlug:  c.DefaultQuery("type", "all"),
		From:      dateQuery(c, "from"),
		To:        dateQuery(c, "to"),
		MinAmount: decimalQuery(c, "min_amount"),
		MaxAmount: decimalQuery(c, "max_amount"),
		Remark:    c.Query("remark"),
		Category:  c.Query("category"),
		Page:      parsePage(c),
	}

	resp, err := h.transactionService.Feed(userID, q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FilterTypes returns the slugs present in the caller's data
// @Summary     List present type slugs
// @Tags        filters
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} string "Slugs, prefixed with all"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /filters/types [get]
func (h *TransactionHandler) FilterTypes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	slugs, err := h.transactionService.PresentTypeSlugs(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, slugs)
}

// FilterCategories returns distinct category values for a slug
// @Summary     List categories for a type slug
// @Tags        filters
// @Produce     json
// @Security    BearerAuth
// @Param       type query string true "Type slug"
// @Success     200 {array} string "Sorted distinct categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /filters/categories [get]
func (h *TransactionHandler) FilterCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.transactionService.CategoriesForSlug(userID, c.Query("type"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
