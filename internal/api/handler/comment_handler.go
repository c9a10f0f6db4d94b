package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/api/metrics"
	"github.com/grocerytrack/grocery-api/internal/api/middleware"
	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

type CommentHandler struct {
	service ports.ItemService
}

func NewCommentHandler(service ports.ItemService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Author string `json:"author"`
	Text   string `json:"text" validate:"required"`
}

type createCommentResponse struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment"`
}

// Create handles POST /v1/comments.
//
// @Summary      Comment on an item
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  createCommentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user := middleware.Principal(c)
	comment, err := h.service.AddComment(c.Request().Context(), ports.AddCommentInput{
		ItemID:        req.ItemID,
		Author:        req.Author,
		AuthorDefault: user.FullName,
		Text:          req.Text,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createCommentResponse{Message: "comment added", Comment: comment})
}
