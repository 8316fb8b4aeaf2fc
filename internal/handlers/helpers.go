package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/Smitap11/taxables-backend/internal/errors"
	"github.com/Smitap11/taxables-backend/internal/logger"
	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
	"github.com/Smitap11/taxables-backend/internal/services"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	return userID.(uint), nil
}

// parsePathID parses a uint path parameter.
// Returns ErrNotFound if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.ErrNotFound
	}
	return uint(id), nil
}

// parsePage reads limit/offset query params with silent fallback.
func parsePage(c *gin.Context) pagination.Params {
	return pagination.Parse(c.Query("limit"), c.Query("offset"))
}

// dateQuery parses a date query param; unparseable or missing values mean
// "no filter".
func dateQuery(c *gin.Context, name string) *models.Date {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &d
}

// decimalQuery parses a decimal query param; unparseable or missing values
// mean "no filter".
func decimalQuery(c *gin.Context, name string) *decimal.Decimal {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// listFilter assembles the shared record filters from the query string.
func listFilter(c *gin.Context) services.ListFilter {
	return services.ListFilter{
		From:      dateQuery(c, "from"),
		To:        dateQuery(c, "to"),
		MinAmount: decimalQuery(c, "min_amount"),
		MaxAmount: decimalQuery(c, "max_amount"),
		Remark:    c.Query("remark"),
		Category:  c.Query("category"),
		TypeSlug:  c.Query("type"),
	}
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message (plus any
// field-keyed validation messages). Otherwise it logs the unexpected error and
// returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		detail := gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if appErr.Fields != nil {
			detail["fields"] = appErr.Fields
		}
		c.JSON(appErr.StatusCode, gin.H{"error": detail})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
