package server

import (
	"net/http"

	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
)

func (a *api) createPermission(c *gin.Context) {
	var req service.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.permissions.CreatePermission(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) bulkCreatePermissions(c *gin.Context) {
	var reqs []service.CreatePermissionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.permissions.BulkCreatePermissions(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) getPermission(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	permission, err := a.permissions.GetPermission(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permission)
}

func (a *api) listPermissions(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}
	objectID, ok := queryID(c, "object_id")
	if !ok {
		return
	}

	permissions, err := a.permissions.ListPermissions(c.Request.Context(), store.PermissionFilter{
		ObjectID: objectID,
		User:     c.Query("user"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

func (a *api) updatePermission(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := a.permissions.UpdatePermission(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (a *api) deletePermission(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.permissions.DeletePermission(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "permission deleted"})
}
