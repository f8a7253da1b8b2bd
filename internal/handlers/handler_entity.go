package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/gin-gonic/gin"
)

// entityHandler serves the CRUD routes of one record type. R is the response
// shape produced by the service.
type entityHandler[R any] struct {
	service portssvc.EntitySvcFacade[R]
}

func newEntityHandler[R any](svc portssvc.EntitySvcFacade[R]) *entityHandler[R] {
	return &entityHandler[R]{service: svc}
}

// registerEntityRoutes mounts list, create, get, update and delete under path.
// PUT and PATCH share the partial-update semantics.
func registerEntityRoutes[R any](rg *gin.RouterGroup, path string, svc portssvc.EntitySvcFacade[R]) {
	h := newEntityHandler(svc)

	group := rg.Group(path)
	{
		group.GET("", h.list)
		group.POST("", h.create)
		group.GET("/:id", h.get)
		group.PUT("/:id", h.update)
		group.PATCH("/:id", h.update)
		group.DELETE("/:id", h.delete)
	}
}

func (h *entityHandler[R]) list(c *gin.Context) {
	data, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

func (h *entityHandler[R]) create(c *gin.Context) {
	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.DataResponse{Data: data})
}

func (h *entityHandler[R]) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

func (h *entityHandler[R]) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

func (h *entityHandler[R]) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
