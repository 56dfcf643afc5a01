package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierarchyService_RootOnly(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)
	ts.mustLink(t, root.ID, docs.ID, "contains")

	tree, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, intPtr(0))
	assert.NoError(t, err)
	assert.Equal(t, root.ID, tree.ID)
	assert.Empty(t, tree.Children)
	if assert.NotNil(t, tree.Depth) {
		assert.Equal(t, 0, *tree.Depth)
	}
}

func TestHierarchyService_DepthBoundary(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	mid := ts.mustObject(t, "mid", folder.ID)
	leaf := ts.mustObject(t, "leaf", folder.ID)
	ts.mustLink(t, root.ID, mid.ID, "contains")
	ts.mustLink(t, mid.ID, leaf.ID, "contains")

	tree, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, intPtr(1))
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 1)
	assert.Equal(t, mid.ID, tree.Children[0].Object.ID)
	assert.Empty(t, tree.Children[0].Object.Children)

	tree, err = ts.hierarchy.BuildTree(context.TODO(), root.ID, intPtr(2))
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 1)
	assert.Len(t, tree.Children[0].Object.Children, 1)
	assert.Equal(t, leaf.ID, tree.Children[0].Object.Children[0].Object.ID)

	// beyond the graph depth the result is unchanged
	tree, err = ts.hierarchy.BuildTree(context.TODO(), root.ID, intPtr(10))
	assert.NoError(t, err)
	assert.Len(t, tree.Children[0].Object.Children, 1)
	assert.Empty(t, tree.Children[0].Object.Children[0].Object.Children)
}

func TestHierarchyService_NegativeDepthRejected(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)

	_, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, intPtr(-1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHierarchyService_RootNotFound(t *testing.T) {
	ts := setup(t)

	_, err := ts.hierarchy.BuildTree(context.TODO(), 42, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHierarchyService_CycleSafety(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	a := ts.mustObject(t, "a", folder.ID)
	b := ts.mustObject(t, "b", folder.ID)
	ts.mustLink(t, a.ID, b.ID, "contains")
	ts.mustLink(t, b.ID, a.ID, "contains")

	tree, err := ts.hierarchy.BuildTree(context.TODO(), a.ID, nil)
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 1)
	assert.Equal(t, b.ID, tree.Children[0].Object.ID)
	// the edge back to a is pruned
	assert.Empty(t, tree.Children[0].Object.Children)
	assert.Nil(t, tree.Depth)

	tree, err = ts.hierarchy.BuildTree(context.TODO(), b.ID, nil)
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 1)
	assert.Equal(t, a.ID, tree.Children[0].Object.ID)
	assert.Empty(t, tree.Children[0].Object.Children)
}

func TestHierarchyService_SharedChildAppearsInBothBranches(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	left := ts.mustObject(t, "left", folder.ID)
	right := ts.mustObject(t, "right", folder.ID)
	shared := ts.mustObject(t, "shared", folder.ID)

	ts.mustLink(t, root.ID, left.ID, "contains")
	ts.mustLink(t, root.ID, right.ID, "contains")
	ts.mustLink(t, left.ID, shared.ID, "contains")
	ts.mustLink(t, right.ID, shared.ID, "contains")

	tree, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, nil)
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 2)

	// the visited set is per branch, not a global dedup
	assert.Len(t, tree.Children[0].Object.Children, 1)
	assert.Equal(t, shared.ID, tree.Children[0].Object.Children[0].Object.ID)
	assert.Len(t, tree.Children[1].Object.Children, 1)
	assert.Equal(t, shared.ID, tree.Children[1].Object.Children[0].Object.ID)
}

func TestHierarchyService_ChildrenInLinkOrder(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	first := ts.mustObject(t, "first", folder.ID)
	second := ts.mustObject(t, "second", folder.ID)
	third := ts.mustObject(t, "third", folder.ID)

	ts.mustLink(t, root.ID, second.ID, "contains")
	ts.mustLink(t, root.ID, third.ID, "contains")
	ts.mustLink(t, root.ID, first.ID, "contains")

	tree, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, nil)
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 3)
	assert.Equal(t, second.ID, tree.Children[0].Object.ID)
	assert.Equal(t, third.ID, tree.Children[1].Object.ID)
	assert.Equal(t, first.ID, tree.Children[2].Object.ID)
}

func TestHierarchyService_MissingChildPruned(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)
	gone := ts.mustObject(t, "gone", folder.ID)

	ts.mustLink(t, root.ID, docs.ID, "contains")
	ts.mustLink(t, root.ID, gone.ID, "contains")

	// delete leaves the link row dangling
	assert.NoError(t, ts.objects.DeleteObject(context.TODO(), gone.ID))

	tree, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, nil)
	assert.NoError(t, err)
	assert.Len(t, tree.Children, 1)
	assert.Equal(t, docs.ID, tree.Children[0].Object.ID)
}

func TestHierarchyService_NodeLimit(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	a := ts.mustObject(t, "a", folder.ID)
	b := ts.mustObject(t, "b", folder.ID)
	ts.mustLink(t, root.ID, a.ID, "contains")
	ts.mustLink(t, root.ID, b.ID, "contains")

	ts.hierarchy.maxNodes = 2

	_, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, nil)
	assert.ErrorIs(t, err, ErrTreeTooLarge)
}

func TestHierarchyService_CancelledContext(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ts.hierarchy.BuildTree(ctx, root.ID, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// the folder/file scenario end to end
func TestHierarchyService_FolderTree(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	file := ts.mustType(t, "file")

	root := ts.mustObject(t, "Root", folder.ID)
	docs := ts.mustObject(t, "Docs", folder.ID)
	readme := ts.mustObject(t, "Readme", file.ID)

	ts.mustLink(t, root.ID, docs.ID, "contains")
	ts.mustLink(t, docs.ID, readme.ID, "contains")

	tree, err := ts.hierarchy.BuildTree(context.TODO(), root.ID, nil)
	assert.NoError(t, err)

	assert.Equal(t, "Root", tree.Name)
	assert.Len(t, tree.Children, 1)
	assert.Equal(t, "contains", tree.Children[0].Relationship)

	docsNode := tree.Children[0].Object
	assert.Equal(t, "Docs", docsNode.Name)
	assert.Len(t, docsNode.Children, 1)
	assert.Equal(t, "contains", docsNode.Children[0].Relationship)

	readmeNode := docsNode.Children[0].Object
	assert.Equal(t, "Readme", readmeNode.Name)
	assert.Equal(t, file.ID, readmeNode.TypeID)
	assert.Empty(t, readmeNode.Children)
}
