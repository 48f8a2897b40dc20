package handlers

import (
	"github.com/gin-gonic/gin"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/middleware"
	"kaalchakra-cms/models"
	"kaalchakra-cms/services"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

type pageQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	users, total, err := h.userService.GetUsers(middleware.ActorFrom(c), q.Page, q.Limit)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"users":  users,
		"paging": h.Helper.GeneratePaging(c, q.Limit, q.Page, int(total)),
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(middleware.ActorFrom(c), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "User created", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	var req models.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(middleware.ActorFrom(c), id, req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	if err := h.userService.DeleteUser(middleware.ActorFrom(c), id); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}
