package handlers

import (
	"github.com/gin-gonic/gin"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/middleware"
	"kaalchakra-cms/models"
	"kaalchakra-cms/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(middleware.ActorFrom(c), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	articles, total, err := h.articleService.GetArticles(middleware.ActorFrom(c), params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"articles": articles,
		"paging":   h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	article, err := h.articleService.GetArticle(middleware.ActorFrom(c), id)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	var req models.UpdateArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticle(middleware.ActorFrom(c), id, req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	if err := h.articleService.DeleteArticle(middleware.ActorFrom(c), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if params.SortBy == "created_at" {
		params.SortBy = "published_at"
	}

	articles, total, err := h.articleService.GetPublicArticles(params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"articles": articles,
		"paging":   h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	article, err := h.articleService.GetPublicArticle(c.Param("lang"), c.Param("slug"))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", article)
}
