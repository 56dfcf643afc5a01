package server

import (
	"net/http"

	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
)

func (a *api) createAttribute(c *gin.Context) {
	var req service.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.attributes.CreateAttribute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) bulkCreateAttributes(c *gin.Context) {
	var reqs []service.CreateAttributeRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.attributes.BulkCreateAttributes(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) getAttribute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	attr, err := a.attributes.GetAttribute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attr)
}

func (a *api) listAttributes(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}
	objectID, ok := queryID(c, "object_id")
	if !ok {
		return
	}

	attrs, err := a.attributes.ListAttributes(c.Request.Context(), store.AttributeFilter{
		ObjectID: objectID,
		Name:     c.Query("name"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attrs)
}

func (a *api) updateAttribute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := a.attributes.UpdateAttribute(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (a *api) deleteAttribute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.attributes.DeleteAttribute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "attribute deleted"})
}
