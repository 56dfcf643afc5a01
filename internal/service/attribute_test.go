package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeService_CreateAttribute(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	obj := ts.mustObject(t, "root", folder.ID)

	attr, err := ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: obj.ID,
		Name:     "color",
		Value:    "red",
	})
	assert.NoError(t, err)
	assert.NotZero(t, attr.ID)
	assert.NotEmpty(t, attr.CreatedOn)
	assert.Equal(t, attr.CreatedOn, attr.UpdatedOn)
}

func TestAttributeService_DuplicateNameRejected(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	obj := ts.mustObject(t, "root", folder.ID)
	other := ts.mustObject(t, "docs", folder.ID)

	_, err := ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: obj.ID,
		Name:     "color",
		Value:    "red",
	})
	assert.NoError(t, err)

	_, err = ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: obj.ID,
		Name:     "color",
		Value:    "blue",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// the invariant is per object
	_, err = ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: other.ID,
		Name:     "color",
		Value:    "blue",
	})
	assert.NoError(t, err)
}

func TestAttributeService_RenameCollisionRejected(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	obj := ts.mustObject(t, "root", folder.ID)

	_, err := ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: obj.ID,
		Name:     "color",
		Value:    "red",
	})
	assert.NoError(t, err)

	size, err := ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: obj.ID,
		Name:     "size",
		Value:    "large",
	})
	assert.NoError(t, err)

	_, err = ts.attributes.UpdateAttribute(context.TODO(), size.ID, UpdateAttributeRequest{
		Name: strPtr("color"),
	})
	assert.ErrorIs(t, err, ErrConflict)

	updated, err := ts.attributes.UpdateAttribute(context.TODO(), size.ID, UpdateAttributeRequest{
		Name:  strPtr("weight"),
		Value: strPtr("heavy"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "weight", updated.Name)
	assert.Equal(t, "heavy", updated.Value)
}

func TestAttributeService_CreateAttributeMissingObject(t *testing.T) {
	ts := setup(t)

	_, err := ts.attributes.CreateAttribute(context.TODO(), CreateAttributeRequest{
		ObjectID: 42,
		Name:     "color",
		Value:    "red",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
