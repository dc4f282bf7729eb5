package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visionboard/src/app/http/dto"
	"visionboard/src/app/http/response"
	"visionboard/src/app/middleware"
	"visionboard/src/core/domain"
	"visionboard/src/core/usecase"
)

// BoardHandler handles the aggregate view and board mutation endpoints.
type BoardHandler struct {
	boardService *usecase.BoardService
}

func NewBoardHandler(boardService *usecase.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// View returns the randomized display sequence for the selected filter.
// GET /v1/board?filter=<category|all>
func (h *BoardHandler) View(c *gin.Context) {
	filter := c.DefaultQuery("filter", string(domain.FilterAll))

	view, err := h.boardService.View(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	items := make([]gin.H, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, renderItem(it))
	}

	c.JSON(http.StatusOK, gin.H{
		"filter":      filter,
		"empty_state": view.Empty,
		"items":       items,
	})
}

// renderItem serializes one tagged view entry. The switch is exhaustive
// over the four content kinds.
func renderItem(it domain.Item) gin.H {
	switch it.Kind {
	case domain.KindImage:
		return gin.H{"kind": it.Kind, "data": it.Image}
	case domain.KindVideo:
		return gin.H{"kind": it.Kind, "data": gin.H{
			"id":        it.Video.ID,
			"url":       it.Video.URL,
			"title":     it.Video.Title,
			"category":  it.Video.Category,
			"thumbnail": it.Video.ThumbnailURL(),
		}}
	case domain.KindTheory:
		return gin.H{"kind": it.Kind, "data": it.Theory}
	case domain.KindWish:
		return gin.H{"kind": it.Kind, "data": it.Wish}
	}
	return gin.H{"kind": it.Kind}
}

// AddTheory creates a new theory at the head of the collection.
// POST /v1/board/theories
func (h *BoardHandler) AddTheory(c *gin.Context) {
	var req dto.AddTheoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	theory, err := h.boardService.AddTheory(c.Request.Context(), domain.TheoryInput{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: category,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, theory)
}

// AddWish creates a new wish at the head of the collection.
// POST /v1/board/wishes
func (h *BoardHandler) AddWish(c *gin.Context) {
	var req dto.AddWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	wish, err := h.boardService.AddWish(c.Request.Context(), domain.WishInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, wish)
}

// ToggleWish flips completion of a wish. An unknown id is not an error:
// the wish may have been removed concurrently, so the response just says
// nothing changed.
// POST /v1/board/wishes/:wish_id/toggle
func (h *BoardHandler) ToggleWish(c *gin.Context) {
	id := c.Param("wish_id")

	wish, changed, err := h.boardService.ToggleWish(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if !changed {
		c.JSON(http.StatusOK, gin.H{"changed": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changed": true,
		"wish":    wish,
	})
}
