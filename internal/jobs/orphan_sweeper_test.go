package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	"github.com/emrgen/strata/internal/tester"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrphanSweeper_Sweep(t *testing.T) {
	tester.Setup()
	s := store.NewGormStore(tester.TestDB())
	ctx := context.TODO()

	typ := &model.Type{ID: uuid.New().String(), Name: "folder"}
	assert.NoError(t, s.CreateType(ctx, typ))

	kept := &model.Object{Name: "kept", Version: 1, TypeID: typ.ID, CreatedOn: "2024-01-01", CreatedBy: "user1"}
	doomed := &model.Object{Name: "doomed", Version: 1, TypeID: typ.ID, CreatedOn: "2024-01-01", CreatedBy: "user1"}
	assert.NoError(t, s.CreateObject(ctx, kept))
	assert.NoError(t, s.CreateObject(ctx, doomed))

	liveLink := &model.Link{ParentID: kept.ID, ChildID: doomed.ID, ParentType: "folder", ChildType: "folder", RName: "contains"}
	assert.NoError(t, s.CreateLink(ctx, liveLink))

	liveAttr := &model.Attribute{ObjectID: kept.ID, Name: "color", Value: "red", CreatedOn: "2024-01-01", UpdatedOn: "2024-01-01"}
	doomedAttr := &model.Attribute{ObjectID: doomed.ID, Name: "color", Value: "blue", CreatedOn: "2024-01-01", UpdatedOn: "2024-01-01"}
	assert.NoError(t, s.CreateAttribute(ctx, liveAttr))
	assert.NoError(t, s.CreateAttribute(ctx, doomedAttr))

	doomedPermission := &model.Permission{ObjectID: doomed.ID, User: "alice", PermissionLevel: "read"}
	assert.NoError(t, s.CreatePermission(ctx, doomedPermission))

	doomedRecord := &model.Versioning{ObjectID: doomed.ID, Version: "v1.0", CreatedAt: time.Now().UTC()}
	assert.NoError(t, s.CreateVersioning(ctx, doomedRecord))

	assert.NoError(t, s.DeleteObject(ctx, doomed.ID))

	sweeper := NewOrphanSweeper(s, "@every 10m")
	assert.Equal(t, "@every 10m", sweeper.Schedule())
	assert.NoError(t, sweeper.Sweep(ctx))

	// rows referencing the deleted object are gone
	links, err := s.ListLinks(ctx, store.LinkFilter{})
	assert.NoError(t, err)
	assert.Len(t, links, 0)

	permissions, err := s.ListPermissions(ctx, store.PermissionFilter{})
	assert.NoError(t, err)
	assert.Len(t, permissions, 0)

	records, err := s.ListVersioning(ctx, store.VersioningFilter{})
	assert.NoError(t, err)
	assert.Len(t, records, 0)

	// rows referencing the surviving object are untouched
	attrs, err := s.ListAttributes(ctx, store.AttributeFilter{})
	assert.NoError(t, err)
	if assert.Len(t, attrs, 1) {
		assert.Equal(t, kept.ID, attrs[0].ObjectID)
	}
}

func TestOrphanSweeper_NoOrphans(t *testing.T) {
	tester.Setup()
	s := store.NewGormStore(tester.TestDB())
	ctx := context.TODO()

	typ := &model.Type{ID: uuid.New().String(), Name: "folder"}
	assert.NoError(t, s.CreateType(ctx, typ))

	obj := &model.Object{Name: "root", Version: 1, TypeID: typ.ID, CreatedOn: "2024-01-01", CreatedBy: "user1"}
	assert.NoError(t, s.CreateObject(ctx, obj))

	attr := &model.Attribute{ObjectID: obj.ID, Name: "color", Value: "red", CreatedOn: "2024-01-01", UpdatedOn: "2024-01-01"}
	assert.NoError(t, s.CreateAttribute(ctx, attr))

	sweeper := NewOrphanSweeper(s, "@every 10m")
	assert.NoError(t, sweeper.Sweep(ctx))

	attrs, err := s.ListAttributes(ctx, store.AttributeFilter{})
	assert.NoError(t, err)
	assert.Len(t, attrs, 1)
}
