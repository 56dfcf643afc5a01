package store

import (
	"context"

	"github.com/emrgen/strata/internal/model"
)

// TypeFilter selects type rows. Zero values mean "no filter".
type TypeFilter struct {
	Name  string
	Skip  int
	Limit int
}

// ObjectFilter selects object rows. Name is a partial match.
type ObjectFilter struct {
	TypeID string
	Name   string
	Skip   int
	Limit  int
}

// LinkFilter selects link rows by any combination of endpoint and label.
type LinkFilter struct {
	ParentID *int64
	ChildID  *int64
	RName    string
	Skip     int
	Limit    int
}

// PermissionFilter selects permission rows.
type PermissionFilter struct {
	ObjectID *int64
	User     string
	Skip     int
	Limit    int
}

// VersioningFilter selects versioning rows.
type VersioningFilter struct {
	ObjectID *int64
	Version  string
	Skip     int
	Limit    int
}

// AttributeFilter selects attribute rows. Name is an exact match.
type AttributeFilter struct {
	ObjectID *int64
	Name     string
	Skip     int
	Limit    int
}

type Store interface {
	TypeStore
	ObjectStore
	LinkStore
	PermissionStore
	VersioningStore
	AttributeStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type TypeStore interface {
	// CreateType creates a new type.
	CreateType(ctx context.Context, t *model.Type) error
	// GetType retrieves a type by ID.
	GetType(ctx context.Context, id string) (*model.Type, error)
	// ListTypes retrieves types matching the filter in insertion order.
	ListTypes(ctx context.Context, filter TypeFilter) ([]*model.Type, error)
	// UpdateType persists changes to a type row.
	UpdateType(ctx context.Context, t *model.Type) error
	// DeleteType deletes a type by ID.
	DeleteType(ctx context.Context, id string) error
}

type ObjectStore interface {
	// CreateObject creates a new object.
	CreateObject(ctx context.Context, o *model.Object) error
	// GetObject retrieves an object by ID.
	GetObject(ctx context.Context, id int64) (*model.Object, error)
	// ListObjects retrieves objects matching the filter in insertion order.
	ListObjects(ctx context.Context, filter ObjectFilter) ([]*model.Object, error)
	// ListObjectIDs retrieves the IDs of all objects.
	ListObjectIDs(ctx context.Context) ([]int64, error)
	// UpdateObject persists changes to an object row.
	UpdateObject(ctx context.Context, o *model.Object) error
	// DeleteObject deletes an object by ID. Dependent rows are not cascaded.
	DeleteObject(ctx context.Context, id int64) error
}

type LinkStore interface {
	// CreateLink creates a new link row.
	CreateLink(ctx context.Context, l *model.Link) error
	// GetLink retrieves a link by ID.
	GetLink(ctx context.Context, id int64) (*model.Link, error)
	// ListLinks retrieves links matching the filter in insertion order.
	ListLinks(ctx context.Context, filter LinkFilter) ([]*model.Link, error)
	// UpdateLink persists changes to a link row.
	UpdateLink(ctx context.Context, l *model.Link) error
	// DeleteLink deletes a link by ID.
	DeleteLink(ctx context.Context, id int64) error
}

type PermissionStore interface {
	// CreatePermission creates a new permission record.
	CreatePermission(ctx context.Context, p *model.Permission) error
	// GetPermission retrieves a permission by ID.
	GetPermission(ctx context.Context, id int64) (*model.Permission, error)
	// ListPermissions retrieves permissions matching the filter.
	ListPermissions(ctx context.Context, filter PermissionFilter) ([]*model.Permission, error)
	// UpdatePermission persists changes to a permission row.
	UpdatePermission(ctx context.Context, p *model.Permission) error
	// DeletePermission deletes a permission by ID.
	DeletePermission(ctx context.Context, id int64) error
}

type VersioningStore interface {
	// CreateVersioning creates a new versioning record.
	CreateVersioning(ctx context.Context, v *model.Versioning) error
	// GetVersioning retrieves a versioning record by ID.
	GetVersioning(ctx context.Context, id int64) (*model.Versioning, error)
	// ListVersioning retrieves versioning records matching the filter.
	ListVersioning(ctx context.Context, filter VersioningFilter) ([]*model.Versioning, error)
	// UpdateVersioning persists changes to a versioning row.
	UpdateVersioning(ctx context.Context, v *model.Versioning) error
	// DeleteVersioning deletes a versioning record by ID.
	DeleteVersioning(ctx context.Context, id int64) error
}

type AttributeStore interface {
	// CreateAttribute creates a new attribute record.
	CreateAttribute(ctx context.Context, a *model.Attribute) error
	// GetAttribute retrieves an attribute by ID.
	GetAttribute(ctx context.Context, id int64) (*model.Attribute, error)
	// ListAttributes retrieves attributes matching the filter.
	ListAttributes(ctx context.Context, filter AttributeFilter) ([]*model.Attribute, error)
	// UpdateAttribute persists changes to an attribute row.
	UpdateAttribute(ctx context.Context, a *model.Attribute) error
	// DeleteAttribute deletes an attribute by ID.
	DeleteAttribute(ctx context.Context, id int64) error
}
