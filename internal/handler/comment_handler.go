package handler

import (
	"net/http"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/middleware"
	"github.com/bbapp/bulletin-backend/internal/service"
	"github.com/bbapp/bulletin-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for comments
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create godoc
// @Summary      Comment on a bulletin
// @Tags         comments
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                    true  "Bulletin ID"
// @Param        request  body  domain.CommentRequest  true  "Comment body"
// @Success      201  {object}  common.APIResponse{data=domain.Comment}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /bulletins/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	bulletinID, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bulletin ID", err)
		return
	}

	var req domain.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), middleware.GetIdentity(c), bulletinID, &req)
	if err != nil {
		respondError(c, "Failed to create comment", err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: comment})
}

// Edit godoc
// @Summary      Load a comment for editing
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Comment ID"
// @Success      200  {object}  common.APIResponse{data=domain.Comment}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comments/{id} [get]
func (h *CommentHandler) Edit(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid comment ID", err)
		return
	}

	comment, err := h.service.GetForEdit(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		respondError(c, "Failed to fetch comment", err)
		return
	}
	common.SuccessResponse(c, comment, nil)
}

// Update godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json,x-www-form-urlencoded
// @Security     BearerAuth
// @Param        id       path  int                    true  "Comment ID"
// @Param        request  body  domain.CommentRequest  true  "Comment body"
// @Success      204  "No Content"
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comments/{id} [put]
//
//nolint:dupl // bulletin and comment updates share the request flow
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid comment ID", err)
		return
	}

	var req domain.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.Update(c.Request.Context(), middleware.GetIdentity(c), id, &req); err != nil {
		respondError(c, "Failed to update comment", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  int  true  "Comment ID"
// @Success      204  "No Content"
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid comment ID", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		respondError(c, "Failed to delete comment", err)
		return
	}
	c.Status(http.StatusNoContent)
}
