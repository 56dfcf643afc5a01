package service

import (
	"context"
	"testing"

	"github.com/emrgen/strata/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestLinkService_CreateLink(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)

	link, err := ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   root.ID,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      "contains",
		ChildID:    docs.ID,
	})
	assert.NoError(t, err)
	assert.NotZero(t, link.ID)
	assert.Equal(t, "contains", link.RName)
}

func TestLinkService_SelfLoopRejected(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)

	_, err := ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   root.ID,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      "contains",
		ChildID:    root.ID,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLinkService_DuplicateEdgeRejected(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)

	ts.mustLink(t, root.ID, docs.ID, "contains")

	_, err := ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   root.ID,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      "contains",
		ChildID:    docs.ID,
	})
	assert.ErrorIs(t, err, ErrConflict)

	// a different relationship label between the same pair is a new edge
	_, err = ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   root.ID,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      "references",
		ChildID:    docs.ID,
	})
	assert.NoError(t, err)
}

func TestLinkService_MissingEndpointRejected(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)

	_, err := ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   root.ID,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      "contains",
		ChildID:    root.ID + 100,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ts.links.CreateLink(context.TODO(), CreateLinkRequest{
		ParentID:   root.ID + 100,
		ParentType: "folder",
		ChildType:  "folder",
		RName:      "contains",
		ChildID:    root.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkService_AdjacencyRoundTrip(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)

	ts.mustLink(t, root.ID, docs.ID, "contains")

	children, err := ts.links.ChildrenOf(context.TODO(), root.ID)
	assert.NoError(t, err)
	assert.Len(t, children, 1)
	assert.Equal(t, "contains", children[0].Relationship)
	assert.Equal(t, docs.ID, children[0].Object.ID)

	parents, err := ts.links.ParentsOf(context.TODO(), docs.ID)
	assert.NoError(t, err)
	assert.Len(t, parents, 1)
	assert.Equal(t, "contains", parents[0].Relationship)
	assert.Equal(t, root.ID, parents[0].Object.ID)
}

func TestLinkService_AdjacencyMissingObject(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)

	_, err := ts.links.ChildrenOf(context.TODO(), root.ID+5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ts.links.ParentsOf(context.TODO(), root.ID+5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkService_EdgesWithRelationship(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)
	media := ts.mustObject(t, "media", folder.ID)

	ts.mustLink(t, root.ID, docs.ID, "contains")
	ts.mustLink(t, root.ID, media.ID, "contains")
	ts.mustLink(t, docs.ID, media.ID, "references")

	contains, err := ts.links.EdgesWithRelationship(context.TODO(), "contains")
	assert.NoError(t, err)
	assert.Len(t, contains, 2)

	references, err := ts.links.EdgesWithRelationship(context.TODO(), "references")
	assert.NoError(t, err)
	assert.Len(t, references, 1)
	assert.Equal(t, docs.ID, references[0].ParentID)
}

func TestLinkService_UpdateLinkRenameCollision(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)

	ts.mustLink(t, root.ID, docs.ID, "contains")
	ref := ts.mustLink(t, root.ID, docs.ID, "references")

	_, err := ts.links.UpdateLink(context.TODO(), ref.ID, UpdateLinkRequest{
		RName: strPtr("contains"),
	})
	assert.ErrorIs(t, err, ErrConflict)

	updated, err := ts.links.UpdateLink(context.TODO(), ref.ID, UpdateLinkRequest{
		RName: strPtr("mentions"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "mentions", updated.RName)
}

func TestLinkService_BulkCreateLinksRollsBack(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)
	media := ts.mustObject(t, "media", folder.ID)

	_, err := ts.links.BulkCreateLinks(context.TODO(), []CreateLinkRequest{
		{ParentID: root.ID, ParentType: "folder", ChildType: "folder", RName: "contains", ChildID: docs.ID},
		{ParentID: root.ID, ParentType: "folder", ChildType: "folder", RName: "contains", ChildID: media.ID + 100},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// the valid first item must have been rolled back with the batch
	links, err := ts.links.ListLinks(context.TODO(), store.LinkFilter{ParentID: &root.ID})
	assert.NoError(t, err)
	assert.Len(t, links, 0)
}

func TestLinkService_DeleteLink(t *testing.T) {
	ts := setup(t)

	folder := ts.mustType(t, "folder")
	root := ts.mustObject(t, "root", folder.ID)
	docs := ts.mustObject(t, "docs", folder.ID)

	link := ts.mustLink(t, root.ID, docs.ID, "contains")

	assert.NoError(t, ts.links.DeleteLink(context.TODO(), link.ID))

	err := ts.links.DeleteLink(context.TODO(), link.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
