package service

import (
	"context"
	"testing"

	"github.com/emrgen/strata/internal/cache"
	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	"github.com/emrgen/strata/internal/tester"
	"github.com/stretchr/testify/assert"
)

type testServices struct {
	store       store.Store
	types       *TypeService
	objects     *ObjectService
	links       *LinkService
	permissions *PermissionService
	versioning  *VersioningService
	attributes  *AttributeService
	hierarchy   *HierarchyService
}

func setup(t *testing.T) *testServices {
	t.Helper()
	tester.Setup()

	s := store.NewGormStore(tester.TestDB())
	c := cache.NewNopTreeCache()

	return &testServices{
		store:       s,
		types:       NewTypeService(s),
		objects:     NewObjectService(s, c),
		links:       NewLinkService(s, c),
		permissions: NewPermissionService(s),
		versioning:  NewVersioningService(s),
		attributes:  NewAttributeService(s),
		hierarchy:   NewHierarchyService(s, c),
	}
}

func (ts *testServices) mustType(t *testing.T, name string) *model.Type {
	t.Helper()
	created, err := ts.types.CreateType(context.TODO(), CreateTypeRequest{Name: name})
	assert.NoError(t, err)
	return created
}

func (ts *testServices) mustObject(t *testing.T, name, typeID string) *model.Object {
	t.Helper()
	created, err := ts.objects.CreateObject(context.TODO(), CreateObjectRequest{
		Name:      name,
		TypeID:    typeID,
		CreatedBy: "tester",
	})
	assert.NoError(t, err)
	return created
}

func (ts *testServices) mustLink(t *testing.T, parentID, childID int64, rName string) *model.Link {
	t.Helper()
	created, err := ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   parentID,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      rName,
		ChildID:    childID,
	})
	assert.NoError(t, err)
	return created
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
