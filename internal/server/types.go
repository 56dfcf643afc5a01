package server

import (
	"net/http"

	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
)

func (a *api) createType(c *gin.Context) {
	var req service.CreateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.types.CreateType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) bulkCreateTypes(c *gin.Context) {
	var reqs []service.CreateTypeRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.types.BulkCreateTypes(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) getType(c *gin.Context) {
	found, err := a.types.GetType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (a *api) listTypes(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	types, err := a.types.ListTypes(c.Request.Context(), store.TypeFilter{
		Name:  c.Query("name"),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

func (a *api) updateType(c *gin.Context) {
	var req service.UpdateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := a.types.UpdateType(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (a *api) deleteType(c *gin.Context) {
	if err := a.types.DeleteType(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "type deleted"})
}
