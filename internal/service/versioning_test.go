package service

import (
	"context"
	"testing"

	"github.com/emrgen/strata/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestVersioningService_CreateAndList(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	obj := ts.mustObject(t, "root", folder.ID)

	record, err := ts.versioning.CreateVersioning(context.TODO(), CreateVersioningRequest{
		ObjectID: obj.ID,
		Version:  "v1.0",
	})
	assert.NoError(t, err)
	assert.False(t, record.CreatedAt.IsZero())

	_, err = ts.versioning.CreateVersioning(context.TODO(), CreateVersioningRequest{
		ObjectID: obj.ID,
		Version:  "v1.1",
	})
	assert.NoError(t, err)

	records, err := ts.versioning.ListVersioning(context.TODO(), store.VersioningFilter{ObjectID: &obj.ID})
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "v1.0", records[0].Version)

	_, err = ts.versioning.CreateVersioning(context.TODO(), CreateVersioningRequest{
		ObjectID: obj.ID + 9,
		Version:  "v1.0",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPermissionService_CreateAndUpdate(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	obj := ts.mustObject(t, "root", folder.ID)

	permission, err := ts.permissions.CreatePermission(context.TODO(), CreatePermissionRequest{
		ObjectID:        obj.ID,
		User:            "alice",
		PermissionLevel: "read",
	})
	assert.NoError(t, err)

	updated, err := ts.permissions.UpdatePermission(context.TODO(), permission.ID, UpdatePermissionRequest{
		PermissionLevel: strPtr("write"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "write", updated.PermissionLevel)
	assert.Equal(t, "alice", updated.User)

	_, err = ts.permissions.CreatePermission(context.TODO(), CreatePermissionRequest{
		ObjectID:        obj.ID + 9,
		User:            "bob",
		PermissionLevel: "read",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
