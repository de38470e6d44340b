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

// BulletinHandler handles HTTP requests for bulletins
type BulletinHandler struct {
	listing      service.ListingService
	ranking      service.RankingService
	search       service.SearchService
	thread       service.ThreadService
	bulletins    service.BulletinService
	rankingLimit int
}

// NewBulletinHandler creates a new BulletinHandler
func NewBulletinHandler(
	listing service.ListingService,
	ranking service.RankingService,
	search service.SearchService,
	thread service.ThreadService,
	bulletins service.BulletinService,
	rankingLimit int,
) *BulletinHandler {
	if rankingLimit < 1 {
		rankingLimit = service.DefaultRankingLimit
	}
	return &BulletinHandler{
		listing:      listing,
		ranking:      ranking,
		search:       search,
		thread:       thread,
		bulletins:    bulletins,
		rankingLimit: rankingLimit,
	}
}

// Index godoc
// @Summary      Bulletin overview
// @Description  One page of bulletins, most recently modified first, plus the most-viewed ranking
// @Tags         bulletins
// @Produce      json
// @Param        page  query  int  false  "Page number (default 1)"
// @Success      200  {object}  common.APIResponse{data=domain.ListingResponse}
// @Failure      500  {object}  common.APIResponse
// @Router       /bulletins [get]
func (h *BulletinHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	bulletins, meta, err := h.listing.AssembleListing(ctx, ginutil.QueryPage(c))
	if err != nil {
		respondError(c, "Failed to fetch bulletins", err)
		return
	}

	ranking, err := h.ranking.TopBulletins(ctx, h.rankingLimit)
	if err != nil {
		respondError(c, "Failed to compute ranking", err)
		return
	}

	common.SuccessResponse(c, &domain.ListingResponse{Bulletins: bulletins, Ranking: ranking}, meta)
}

// Ranking godoc
// @Summary      Most-viewed bulletins
// @Tags         bulletins
// @Produce      json
// @Param        limit  query  int  false  "Number of entries (default from config)"
// @Success      200  {object}  common.APIResponse{data=[]domain.RankingEntry}
// @Failure      500  {object}  common.APIResponse
// @Router       /bulletins/ranking [get]
func (h *BulletinHandler) Ranking(c *gin.Context) {
	ranking, err := h.ranking.TopBulletins(c.Request.Context(), ginutil.QueryInt(c, "limit", h.rankingLimit))
	if err != nil {
		respondError(c, "Failed to compute ranking", err)
		return
	}
	common.SuccessResponse(c, ranking, nil)
}

// Search godoc
// @Summary      Search bulletins
// @Description  title matches a case-sensitive substring; an empty title matches everything.
// @Description  Without title, my_bulletins lists the caller's own bulletins when it equals the session username.
// @Tags         bulletins
// @Produce      json
// @Param        title         query  string  false  "Title substring"
// @Param        my_bulletins  query  string  false  "Caller's username"
// @Param        page          query  int     false  "Page number (default 1)"
// @Success      200  {object}  common.APIResponse{data=[]domain.BulletinSummary}
// @Failure      500  {object}  common.APIResponse
// @Router       /bulletins/search [get]
func (h *BulletinHandler) Search(c *gin.Context) {
	query := domain.SearchQuery{
		Title: ginutil.QueryOptional(c, "title"),
		Owner: ginutil.QueryOptional(c, "my_bulletins"),
	}

	results, meta, err := h.search.Search(c.Request.Context(), query, middleware.GetIdentity(c), ginutil.QueryPage(c))
	if err != nil {
		respondError(c, "Failed to search bulletins", err)
		return
	}
	common.SuccessResponse(c, results, meta)
}

// View godoc
// @Summary      Bulletin thread
// @Description  The bulletin with author, star count and comments; records one view
// @Tags         bulletins
// @Produce      json
// @Param        id  path  int  true  "Bulletin ID"
// @Success      200  {object}  common.APIResponse{data=domain.ThreadView}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /bulletins/{id} [get]
func (h *BulletinHandler) View(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bulletin ID", err)
		return
	}

	view, err := h.thread.AssembleThread(c.Request.Context(), id, middleware.GetIdentity(c))
	if err != nil {
		respondError(c, "Failed to fetch bulletin", err)
		return
	}
	common.SuccessResponse(c, view, nil)
}

// Create godoc
// @Summary      Post a bulletin
// @Tags         bulletins
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.BulletinRequest  true  "Title and body"
// @Success      201  {object}  common.APIResponse{data=domain.Bulletin}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /bulletins [post]
func (h *BulletinHandler) Create(c *gin.Context) {
	var req domain.BulletinRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	bulletin, err := h.bulletins.Create(c.Request.Context(), middleware.GetIdentity(c), &req)
	if err != nil {
		respondError(c, "Failed to create bulletin", err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: bulletin})
}

// Edit godoc
// @Summary      Load a bulletin for editing
// @Tags         bulletins
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Bulletin ID"
// @Success      200  {object}  common.APIResponse{data=domain.Bulletin}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /bulletins/{id}/edit [get]
func (h *BulletinHandler) Edit(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bulletin ID", err)
		return
	}

	bulletin, err := h.bulletins.GetForEdit(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		respondError(c, "Failed to fetch bulletin", err)
		return
	}
	common.SuccessResponse(c, bulletin, nil)
}

// Update godoc
// @Summary      Edit a bulletin
// @Tags         bulletins
// @Accept       json,x-www-form-urlencoded
// @Security     BearerAuth
// @Param        id       path  int                     true  "Bulletin ID"
// @Param        request  body  domain.BulletinRequest  true  "Title and body"
// @Success      204  "No Content"
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /bulletins/{id} [put]
//
//nolint:dupl // bulletin and comment updates share the request flow
func (h *BulletinHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bulletin ID", err)
		return
	}

	var req domain.BulletinRequest
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.bulletins.Update(c.Request.Context(), middleware.GetIdentity(c), id, &req); err != nil {
		respondError(c, "Failed to update bulletin", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a bulletin and its view history
// @Tags         bulletins
// @Security     BearerAuth
// @Param        id  path  int  true  "Bulletin ID"
// @Success      204  "No Content"
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /bulletins/{id} [delete]
func (h *BulletinHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bulletin ID", err)
		return
	}

	if err := h.bulletins.Delete(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		respondError(c, "Failed to delete bulletin", err)
		return
	}
	c.Status(http.StatusNoContent)
}
