package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/emrgen/strata/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// api holds the services behind the HTTP routes.
type api struct {
	types       *service.TypeService
	objects     *service.ObjectService
	links       *service.LinkService
	permissions *service.PermissionService
	versioning  *service.VersioningService
	attributes  *service.AttributeService
	hierarchy   *service.HierarchyService
}

func (a *api) register(router *gin.Engine) {
	v1 := router.Group("/v1")

	types := v1.Group("/types")
	types.POST("", a.createType)
	types.POST("/bulk", a.bulkCreateTypes)
	types.GET("", a.listTypes)
	types.GET("/:id", a.getType)
	types.PUT("/:id", a.updateType)
	types.DELETE("/:id", a.deleteType)

	objects := v1.Group("/objects")
	objects.POST("", a.createObject)
	objects.POST("/bulk", a.bulkCreateObjects)
	objects.GET("", a.listObjects)
	objects.GET("/:id", a.getObject)
	objects.PUT("/:id", a.updateObject)
	objects.DELETE("/:id", a.deleteObject)
	objects.GET("/:id/children", a.objectChildren)
	objects.GET("/:id/parents", a.objectParents)
	objects.GET("/:id/hierarchy", a.objectHierarchy)

	links := v1.Group("/links")
	links.POST("", a.createLink)
	links.POST("/bulk", a.bulkCreateLinks)
	links.POST("/hierarchy", a.bulkCreateLinks)
	links.GET("", a.listLinks)
	links.GET("/:id", a.getLink)
	links.PUT("/:id", a.updateLink)
	links.DELETE("/:id", a.deleteLink)

	v1.GET("/relationships/:r_name", a.linksByRelationship)

	permissions := v1.Group("/permissions")
	permissions.POST("", a.createPermission)
	permissions.POST("/bulk", a.bulkCreatePermissions)
	permissions.GET("", a.listPermissions)
	permissions.GET("/:id", a.getPermission)
	permissions.PUT("/:id", a.updatePermission)
	permissions.DELETE("/:id", a.deletePermission)

	versioning := v1.Group("/versioning")
	versioning.POST("", a.createVersioning)
	versioning.POST("/bulk", a.bulkCreateVersioning)
	versioning.GET("", a.listVersioning)
	versioning.GET("/:id", a.getVersioning)
	versioning.PUT("/:id", a.updateVersioning)
	versioning.DELETE("/:id", a.deleteVersioning)

	attributes := v1.Group("/attributes")
	attributes.POST("", a.createAttribute)
	attributes.POST("/bulk", a.bulkCreateAttributes)
	attributes.GET("", a.listAttributes)
	attributes.GET("/:id", a.getAttribute)
	attributes.PUT("/:id", a.updateAttribute)
	attributes.DELETE("/:id", a.deleteAttribute)
}

// respondError maps domain error kinds to transport status codes. Anything
// unrecognized is an infrastructure failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		logrus.Errorf("internal error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return fallback, true
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": key + " must be an integer"})
		return 0, false
	}
	return n, true
}

func queryID(c *gin.Context, key string) (*int64, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": key + " must be an integer"})
		return nil, false
	}
	return &id, true
}

// pagination reads skip/limit query params; the default page size is 100.
func pagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, ok = queryInt(c, "skip", 0)
	if !ok {
		return 0, 0, false
	}
	limit, ok = queryInt(c, "limit", 100)
	if !ok {
		return 0, 0, false
	}
	return skip, limit, true
}
