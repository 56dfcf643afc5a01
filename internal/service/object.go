package service

import (
	"context"
	"time"

	"github.com/emrgen/strata/internal/cache"
	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// NewObjectService creates a new ObjectService.
func NewObjectService(store store.Store, cache cache.TreeCache) *ObjectService {
	return &ObjectService{store: store, cache: cache}
}

// ObjectService manages the object nodes of the hierarchy graph.
type ObjectService struct {
	store store.Store
	cache cache.TreeCache
}

type CreateObjectRequest struct {
	Name      string `json:"name"`
	Version   *int64 `json:"version"`
	TypeID    string `json:"type_id"`
	CreatedOn string `json:"created_on"`
	CreatedBy string `json:"created_by"`
}

func (r CreateObjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.TypeID, validation.Required, is.UUID),
		validation.Field(&r.CreatedBy, validation.Required),
	)
}

type UpdateObjectRequest struct {
	Name      *string `json:"name"`
	Version   *int64  `json:"version"`
	TypeID    *string `json:"type_id"`
	CreatedBy *string `json:"created_by"`
}

func (o *ObjectService) CreateObject(ctx context.Context, req CreateObjectRequest) (*model.Object, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidf("object: %v", err)
	}

	return createObject(ctx, o.store, req)
}

// BulkCreateObjects creates a batch of objects atomically. A missing type on
// any item rolls back the whole batch.
func (o *ObjectService) BulkCreateObjects(ctx context.Context, reqs []CreateObjectRequest) ([]*model.Object, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, invalidf("object: %v", err)
		}
	}

	objects := make([]*model.Object, 0, len(reqs))
	err := o.store.Transaction(ctx, func(tx store.Store) error {
		for _, req := range reqs {
			created, err := createObject(ctx, tx, req)
			if err != nil {
				return err
			}
			objects = append(objects, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return objects, nil
}

func createObject(ctx context.Context, s store.Store, req CreateObjectRequest) (*model.Object, error) {
	if _, err := s.GetType(ctx, req.TypeID); err != nil {
		return nil, storeError(err, "type "+req.TypeID)
	}

	obj := &model.Object{
		Name:      req.Name,
		Version:   1,
		TypeID:    req.TypeID,
		CreatedOn: req.CreatedOn,
		CreatedBy: req.CreatedBy,
	}
	if req.Version != nil {
		if *req.Version < 1 {
			return nil, invalidf("object version must be >= 1")
		}
		obj.Version = *req.Version
	}
	if obj.CreatedOn == "" {
		obj.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.CreateObject(ctx, obj); err != nil {
		return nil, storeError(err, "object")
	}

	return obj, nil
}

func (o *ObjectService) GetObject(ctx context.Context, id int64) (*model.Object, error) {
	obj, err := o.store.GetObject(ctx, id)
	if err != nil {
		return nil, storeError(err, objectRef(id))
	}
	return obj, nil
}

func (o *ObjectService) ListObjects(ctx context.Context, filter store.ObjectFilter) ([]*model.Object, error) {
	return o.store.ListObjects(ctx, filter)
}

func (o *ObjectService) UpdateObject(ctx context.Context, id int64, req UpdateObjectRequest) (*model.Object, error) {
	obj, err := o.store.GetObject(ctx, id)
	if err != nil {
		return nil, storeError(err, objectRef(id))
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalidf("object name must not be empty")
		}
		obj.Name = *req.Name
	}
	if req.Version != nil {
		if *req.Version < 1 {
			return nil, invalidf("object version must be >= 1")
		}
		obj.Version = *req.Version
	}
	if req.TypeID != nil {
		if _, err := o.store.GetType(ctx, *req.TypeID); err != nil {
			return nil, storeError(err, "type "+*req.TypeID)
		}
		obj.TypeID = *req.TypeID
	}
	if req.CreatedBy != nil {
		obj.CreatedBy = *req.CreatedBy
	}

	if err := o.store.UpdateObject(ctx, obj); err != nil {
		return nil, storeError(err, objectRef(id))
	}

	if err := o.cache.Invalidate(ctx); err != nil {
		logCacheError(err)
	}

	return obj, nil
}

// DeleteObject removes the object row only. Link, permission, versioning and
// attribute rows referencing the object are left behind; the orphan sweeper
// collects them later.
func (o *ObjectService) DeleteObject(ctx context.Context, id int64) error {
	if _, err := o.store.GetObject(ctx, id); err != nil {
		return storeError(err, objectRef(id))
	}
	if err := o.store.DeleteObject(ctx, id); err != nil {
		return err
	}

	if err := o.cache.Invalidate(ctx); err != nil {
		logCacheError(err)
	}

	return nil
}
