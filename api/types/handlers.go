package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/castkeep/catalog-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint.
// Returns the parsed value and sends an error response if parsing fails.
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + paramName,
			Error:   string(apperrors.ErrCodeInvalidInput),
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind the JSON request body to target.
// Returns false and sends an error response if binding fails.
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// RespondError maps a service error onto the HTTP contract. Structured
// AppErrors keep their code and status (400 for validation, 404 for
// not-found); anything else is a storage/internal failure surfaced as
// a 500 with the underlying message echoed.
func RespondError(c *gin.Context, err error, message string) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.GetHTTPCode(), ErrorResponse{
			Message: appErr.Message,
			Error:   string(appErr.Code),
			Details: appErr.Details,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
