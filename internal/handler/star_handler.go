package handler

import (
	"net/http"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// StarHandler handles star requests
type StarHandler struct {
	service service.StarService
}

// NewStarHandler creates a new StarHandler
func NewStarHandler(service service.StarService) *StarHandler {
	return &StarHandler{service: service}
}

// Add godoc
// @Summary      Star a bulletin or comment
// @Description  Exactly one of bulletin_id and comment_id. Responds with the count after the insert.
// @Tags         stars
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body  domain.StarRequest  true  "Star target"
// @Success      200  {object}  common.APIResponse{data=domain.StarResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /star [post]
func (h *StarHandler) Add(c *gin.Context) {
	var req domain.StarRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	target, err := service.ParseStarTarget(&req)
	if err != nil {
		respondError(c, "Invalid star target", err)
		return
	}

	count, err := h.service.AddStar(c.Request.Context(), target)
	if err != nil {
		respondError(c, "Failed to add star", err)
		return
	}
	common.SuccessResponse(c, &domain.StarResponse{Output: count}, nil)
}
