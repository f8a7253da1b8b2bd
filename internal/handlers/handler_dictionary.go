package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/gin-gonic/gin"
)

const dictionaryCacheControl = "public, max-age=120, stale-while-revalidate=86400"

type dictionaryHandler struct {
	service portssvc.DictionarySvc
}

func registerDictionaryRoutes(rg *gin.RouterGroup, svc portssvc.DictionarySvc) {
	h := &dictionaryHandler{service: svc}
	rg.GET("/dictionary", h.list)
}

// list returns the whole glossary. It is static, so clients and proxies may cache it.
func (h *dictionaryHandler) list(c *gin.Context) {
	entries := h.service.ListEntries(c.Request.Context())
	c.Header("Cache-Control", dictionaryCacheControl)
	c.JSON(http.StatusOK, dto.DictionaryResponse{Data: entries, Count: len(entries)})
}
