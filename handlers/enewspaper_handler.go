package handlers

import (
	"github.com/gin-gonic/gin"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/middleware"
	"kaalchakra-cms/models"
	"kaalchakra-cms/services"
)

type ENewspaperHandler struct {
	service services.ENewspaperService
	Helper  *helper.HTTPHelper
}

func NewENewspaperHandler(service services.ENewspaperService, h *helper.HTTPHelper) *ENewspaperHandler {
	return &ENewspaperHandler{service: service, Helper: h}
}

func (h *ENewspaperHandler) GetENewspapers(c *gin.Context) {
	var q struct {
		Language string `form:"language"`
		Page     int    `form:"page,default=1" binding:"min=1"`
		Limit    int    `form:"limit,default=20" binding:"min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	papers, total, err := h.service.GetENewspapers(q.Language, q.Page, q.Limit)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"e_newspapers": papers,
		"paging":       h.Helper.GeneratePaging(c, q.Limit, q.Page, int(total)),
	})
}

func (h *ENewspaperHandler) CreateENewspaper(c *gin.Context) {
	var req models.ENewspaperInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	paper, err := h.service.CreateENewspaper(middleware.ActorFrom(c), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "E-newspaper created", paper)
}

func (h *ENewspaperHandler) DeleteENewspaper(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	if err := h.service.DeleteENewspaper(middleware.ActorFrom(c), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "E-newspaper deleted", h.Helper.EmptyJsonMap())
}
