package server

import (
	"net/http"

	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
)

func (a *api) createVersioning(c *gin.Context) {
	var req service.CreateVersioningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.versioning.CreateVersioning(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) bulkCreateVersioning(c *gin.Context) {
	var reqs []service.CreateVersioningRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.versioning.BulkCreateVersioning(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) getVersioning(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	record, err := a.versioning.GetVersioning(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (a *api) listVersioning(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}
	objectID, ok := queryID(c, "object_id")
	if !ok {
		return
	}

	records, err := a.versioning.ListVersioning(c.Request.Context(), store.VersioningFilter{
		ObjectID: objectID,
		Version:  c.Query("version"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (a *api) updateVersioning(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateVersioningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := a.versioning.UpdateVersioning(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (a *api) deleteVersioning(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.versioning.DeleteVersioning(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "versioning record deleted"})
}
