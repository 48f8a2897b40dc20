package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kaalchakra-cms/helper"
	"kaalchakra-cms/services"
)

type SitemapHandler struct {
	sitemapService services.SitemapService
	Helper         *helper.HTTPHelper
}

func NewSitemapHandler(sitemapService services.SitemapService, h *helper.HTTPHelper) *SitemapHandler {
	return &SitemapHandler{sitemapService: sitemapService, Helper: h}
}

func (h *SitemapHandler) Sitemap(c *gin.Context) {
	raw, err := h.sitemapService.Sitemap(c.Request.Context())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", raw)
}
