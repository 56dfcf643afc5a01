package server

import (
	"net/http"

	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
)

func (a *api) createObject(c *gin.Context) {
	var req service.CreateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.objects.CreateObject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) bulkCreateObjects(c *gin.Context) {
	var reqs []service.CreateObjectRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.objects.BulkCreateObjects(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) getObject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	obj, err := a.objects.GetObject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, obj)
}

func (a *api) listObjects(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	objects, err := a.objects.ListObjects(c.Request.Context(), store.ObjectFilter{
		TypeID: c.Query("type_id"),
		Name:   c.Query("name"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, objects)
}

func (a *api) updateObject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := a.objects.UpdateObject(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (a *api) deleteObject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.objects.DeleteObject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "object deleted"})
}

func (a *api) objectChildren(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	children, err := a.links.ChildrenOf(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, children)
}

func (a *api) objectParents(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	parents, err := a.links.ParentsOf(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parents)
}

// objectHierarchy builds the tree below an object. Without a depth query
// param the traversal is unbounded.
func (a *api) objectHierarchy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var maxDepth *int
	if v := c.Query("depth"); v != "" {
		depth, ok := queryInt(c, "depth", 0)
		if !ok {
			return
		}
		maxDepth = &depth
	}

	tree, err := a.hierarchy.BuildTree(c.Request.Context(), id, maxDepth)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}
