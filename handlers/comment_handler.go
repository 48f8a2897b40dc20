package handlers

import (
	"github.com/gin-gonic/gin"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/middleware"
	"kaalchakra-cms/models"
	"kaalchakra-cms/services"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) SubmitComment(c *gin.Context) {
	var req models.CreateCommentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comment, err := h.commentService.SubmitComment(req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment submitted for moderation", comment)
}

func (h *CommentHandler) GetApprovedComments(c *gin.Context) {
	var q struct {
		ArticleID uint `form:"article_id" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comments, err := h.commentService.GetApprovedComments(q.ArticleID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", comments)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	var params models.CommentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comments, total, err := h.commentService.GetComments(middleware.ActorFrom(c), params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"comments": comments,
		"paging":   h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *CommentHandler) ApproveComment(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	if err := h.commentService.ApproveComment(middleware.ActorFrom(c), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment approved", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	if err := h.commentService.DeleteComment(middleware.ActorFrom(c), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted", h.Helper.EmptyJsonMap())
}
