package server

import (
	"net/http"

	"github.com/emrgen/strata/internal/service"
	"github.com/emrgen/strata/internal/store"
	"github.com/gin-gonic/gin"
)

func (a *api) createLink(c *gin.Context) {
	var req service.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.links.CreateLink(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) bulkCreateLinks(c *gin.Context) {
	var reqs []service.CreateLinkRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := a.links.BulkCreateLinks(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (a *api) getLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	link, err := a.links.GetLink(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

func (a *api) listLinks(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}
	parentID, ok := queryID(c, "parent_id")
	if !ok {
		return
	}
	childID, ok := queryID(c, "child_id")
	if !ok {
		return
	}

	links, err := a.links.ListLinks(c.Request.Context(), store.LinkFilter{
		ParentID: parentID,
		ChildID:  childID,
		RName:    c.Query("r_name"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

func (a *api) updateLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := a.links.UpdateLink(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (a *api) deleteLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.links.DeleteLink(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "link deleted"})
}

func (a *api) linksByRelationship(c *gin.Context) {
	links, err := a.links.EdgesWithRelationship(c.Request.Context(), c.Param("r_name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}
