package handlers

import (
	"github.com/gin-gonic/gin"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/middleware"
	"kaalchakra-cms/models"
	"kaalchakra-cms/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(middleware.ActorFrom(c), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Category created", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	var req models.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(middleware.ActorFrom(c), id, req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Category updated", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(middleware.ActorFrom(c), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Category deleted", h.Helper.EmptyJsonMap())
}
