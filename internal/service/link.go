package service

import (
	"context"

	"github.com/emrgen/strata/internal/cache"
	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NewLinkService creates a new LinkService.
func NewLinkService(store store.Store, cache cache.TreeCache) *LinkService {
	return &LinkService{store: store, cache: cache}
}

// LinkService manages the directed, named edges between objects and answers
// adjacency queries over them.
//
// The only cycle check here is the direct self-loop rejection. Longer cycles
// are legal, legitimate graphs cross tree edges with reference edges, so the
// defense against them lives in the traversal engine.
type LinkService struct {
	store store.Store
	cache cache.TreeCache
}

type CreateLinkRequest struct {
	ParentID   int64  `json:"parent_id"`
	ParentType string `json:"parent_type"`
	ChildType  string `json:"child_type"`
	RName      string `json:"r_name"`
	ChildID    int64  `json:"child_id"`
}

func (r CreateLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ParentID, validation.Required),
		validation.Field(&r.ChildID, validation.Required),
		validation.Field(&r.ParentType, validation.Required),
		validation.Field(&r.ChildType, validation.Required),
		validation.Field(&r.RName, validation.Required),
	)
}

type UpdateLinkRequest struct {
	ParentType *string `json:"parent_type"`
	ChildType  *string `json:"child_type"`
	RName      *string `json:"r_name"`
}

// Neighbor is one adjacency query result: the edge label together with the
// object on the far end.
type Neighbor struct {
	Relationship string        `json:"relationship"`
	Object       *model.Object `json:"object"`
}

// CreateLink creates a new edge between two existing objects.
func (l *LinkService) CreateLink(ctx context.Context, req CreateLinkRequest) (*model.Link, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidf("link: %v", err)
	}

	link, err := createLink(ctx, l.store, req)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Invalidate(ctx); err != nil {
		logCacheError(err)
	}

	return link, nil
}

// BulkCreateLinks creates a batch of edges atomically, rolling back on the
// first invalid item. This is how complete hierarchies are loaded in one
// request.
func (l *LinkService) BulkCreateLinks(ctx context.Context, reqs []CreateLinkRequest) ([]*model.Link, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, invalidf("link: %v", err)
		}
	}

	links := make([]*model.Link, 0, len(reqs))
	err := l.store.Transaction(ctx, func(tx store.Store) error {
		for _, req := range reqs {
			created, err := createLink(ctx, tx, req)
			if err != nil {
				return err
			}
			links = append(links, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := l.cache.Invalidate(ctx); err != nil {
		logCacheError(err)
	}

	return links, nil
}

func createLink(ctx context.Context, s store.Store, req CreateLinkRequest) (*model.Link, error) {
	if req.ParentID == req.ChildID {
		return nil, invalidf("self-referencing link on object %d", req.ParentID)
	}

	if _, err := s.GetObject(ctx, req.ParentID); err != nil {
		return nil, storeError(err, objectRef(req.ParentID))
	}
	if _, err := s.GetObject(ctx, req.ChildID); err != nil {
		return nil, storeError(err, objectRef(req.ChildID))
	}

	existing, err := s.ListLinks(ctx, store.LinkFilter{
		ParentID: &req.ParentID,
		ChildID:  &req.ChildID,
		RName:    req.RName,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, conflictf("link %d-[%s]->%d", req.ParentID, req.RName, req.ChildID)
	}

	link := &model.Link{
		ParentID:   req.ParentID,
		ParentType: req.ParentType,
		ChildType:  req.ChildType,
		RName:      req.RName,
		ChildID:    req.ChildID,
	}
	if err := s.CreateLink(ctx, link); err != nil {
		return nil, storeError(err, "link")
	}

	return link, nil
}

func (l *LinkService) GetLink(ctx context.Context, id int64) (*model.Link, error) {
	link, err := l.store.GetLink(ctx, id)
	if err != nil {
		return nil, storeError(err, linkRef(id))
	}
	return link, nil
}

func (l *LinkService) ListLinks(ctx context.Context, filter store.LinkFilter) ([]*model.Link, error) {
	return l.store.ListLinks(ctx, filter)
}

func (l *LinkService) UpdateLink(ctx context.Context, id int64, req UpdateLinkRequest) (*model.Link, error) {
	link, err := l.store.GetLink(ctx, id)
	if err != nil {
		return nil, storeError(err, linkRef(id))
	}

	if req.ParentType != nil {
		link.ParentType = *req.ParentType
	}
	if req.ChildType != nil {
		link.ChildType = *req.ChildType
	}
	if req.RName != nil {
		if *req.RName == "" {
			return nil, invalidf("relationship name must not be empty")
		}
		if *req.RName != link.RName {
			existing, err := l.store.ListLinks(ctx, store.LinkFilter{
				ParentID: &link.ParentID,
				ChildID:  &link.ChildID,
				RName:    *req.RName,
			})
			if err != nil {
				return nil, err
			}
			if len(existing) > 0 {
				return nil, conflictf("link %d-[%s]->%d", link.ParentID, *req.RName, link.ChildID)
			}
		}
		link.RName = *req.RName
	}

	if err := l.store.UpdateLink(ctx, link); err != nil {
		return nil, storeError(err, linkRef(id))
	}

	if err := l.cache.Invalidate(ctx); err != nil {
		logCacheError(err)
	}

	return link, nil
}

func (l *LinkService) DeleteLink(ctx context.Context, id int64) error {
	if _, err := l.store.GetLink(ctx, id); err != nil {
		return storeError(err, linkRef(id))
	}
	if err := l.store.DeleteLink(ctx, id); err != nil {
		return err
	}

	if err := l.cache.Invalidate(ctx); err != nil {
		logCacheError(err)
	}

	return nil
}

// ChildrenOf returns the objects one hop below the given object, each paired
// with the relationship label on the edge. Edges whose child row has been
// deleted are skipped.
func (l *LinkService) ChildrenOf(ctx context.Context, objectID int64) ([]*Neighbor, error) {
	if _, err := l.store.GetObject(ctx, objectID); err != nil {
		return nil, storeError(err, objectRef(objectID))
	}

	links, err := l.store.ListLinks(ctx, store.LinkFilter{ParentID: &objectID})
	if err != nil {
		return nil, err
	}

	return l.neighbors(ctx, links, func(link *model.Link) int64 { return link.ChildID })
}

// ParentsOf returns the objects one hop above the given object, each paired
// with the relationship label on the edge.
func (l *LinkService) ParentsOf(ctx context.Context, objectID int64) ([]*Neighbor, error) {
	if _, err := l.store.GetObject(ctx, objectID); err != nil {
		return nil, storeError(err, objectRef(objectID))
	}

	links, err := l.store.ListLinks(ctx, store.LinkFilter{ChildID: &objectID})
	if err != nil {
		return nil, err
	}

	return l.neighbors(ctx, links, func(link *model.Link) int64 { return link.ParentID })
}

// EdgesWithRelationship returns every link carrying the given label, across
// all objects.
func (l *LinkService) EdgesWithRelationship(ctx context.Context, rName string) ([]*model.Link, error) {
	if rName == "" {
		return nil, invalidf("relationship name must not be empty")
	}
	return l.store.ListLinks(ctx, store.LinkFilter{RName: rName})
}

func (l *LinkService) neighbors(ctx context.Context, links []*model.Link, endpoint func(*model.Link) int64) ([]*Neighbor, error) {
	neighbors := make([]*Neighbor, 0, len(links))
	for _, link := range links {
		obj, err := l.store.GetObject(ctx, endpoint(link))
		if err != nil {
			// dangling edge left behind by a non-cascading delete
			if isMissing(err) {
				continue
			}
			return nil, err
		}
		neighbors = append(neighbors, &Neighbor{
			Relationship: link.RName,
			Object:       obj,
		})
	}

	return neighbors, nil
}
