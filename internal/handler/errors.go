package handler

import (
	"net/http"
	"strings"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/middleware"
	"github.com/bbapp/bulletin-backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// respondError writes err with its mapped status. Field validation failures
// are rendered in the request's language.
func respondError(c *gin.Context, message string, err error) {
	fields := validation.Fields(err)
	if len(fields) == 0 {
		common.HandleError(c, message, err)
		return
	}

	_ = c.Error(err)
	details := make([]string, len(fields))
	for i, fe := range fields {
		details[i] = middleware.Translate(c, fe.MessageKey())
	}
	c.JSON(http.StatusBadRequest, common.APIResponse{
		Error: &common.ErrorInfo{
			Code:    "VALIDATION_FAILED",
			Message: message,
			Details: strings.Join(details, "; "),
		},
	})
}
