package service

import (
	"context"

	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// NewTypeService creates a new TypeService.
func NewTypeService(store store.Store) *TypeService {
	return &TypeService{store: store}
}

// TypeService manages the type categories objects reference.
type TypeService struct {
	store store.Store
}

type CreateTypeRequest struct {
	// ID is optional; a random UUID is assigned when empty.
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r CreateTypeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, is.UUID),
		validation.Field(&r.Name, validation.Required),
	)
}

type UpdateTypeRequest struct {
	Name *string `json:"name"`
}

func (t *TypeService) CreateType(ctx context.Context, req CreateTypeRequest) (*model.Type, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidf("type: %v", err)
	}

	return createType(ctx, t.store, req)
}

// BulkCreateTypes creates a batch of types atomically. The whole batch rolls
// back on the first invalid item.
func (t *TypeService) BulkCreateTypes(ctx context.Context, reqs []CreateTypeRequest) ([]*model.Type, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, invalidf("type: %v", err)
		}
	}

	types := make([]*model.Type, 0, len(reqs))
	err := t.store.Transaction(ctx, func(tx store.Store) error {
		for _, req := range reqs {
			created, err := createType(ctx, tx, req)
			if err != nil {
				return err
			}
			types = append(types, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return types, nil
}

func createType(ctx context.Context, s store.Store, req CreateTypeRequest) (*model.Type, error) {
	t := &model.Type{
		ID:   req.ID,
		Name: req.Name,
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	if err := s.CreateType(ctx, t); err != nil {
		return nil, storeError(err, "type "+t.ID)
	}

	return t, nil
}

func (t *TypeService) GetType(ctx context.Context, id string) (*model.Type, error) {
	found, err := t.store.GetType(ctx, id)
	if err != nil {
		return nil, storeError(err, "type "+id)
	}
	return found, nil
}

func (t *TypeService) ListTypes(ctx context.Context, filter store.TypeFilter) ([]*model.Type, error) {
	return t.store.ListTypes(ctx, filter)
}

func (t *TypeService) UpdateType(ctx context.Context, id string, req UpdateTypeRequest) (*model.Type, error) {
	found, err := t.store.GetType(ctx, id)
	if err != nil {
		return nil, storeError(err, "type "+id)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalidf("type name must not be empty")
		}
		found.Name = *req.Name
	}

	if err := t.store.UpdateType(ctx, found); err != nil {
		return nil, storeError(err, "type "+id)
	}

	return found, nil
}

func (t *TypeService) DeleteType(ctx context.Context, id string) error {
	if _, err := t.store.GetType(ctx, id); err != nil {
		return storeError(err, "type "+id)
	}
	return t.store.DeleteType(ctx, id)
}
