package service

import (
	"context"
	"time"

	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NewAttributeService creates a new AttributeService.
func NewAttributeService(store store.Store) *AttributeService {
	return &AttributeService{store: store}
}

// AttributeService manages the key-value extension bag on objects. At most
// one attribute of a given name may exist per object.
type AttributeService struct {
	store store.Store
}

type CreateAttributeRequest struct {
	ObjectID int64  `json:"object_id"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

func (r CreateAttributeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ObjectID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Value, validation.Required),
	)
}

type UpdateAttributeRequest struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

func (a *AttributeService) CreateAttribute(ctx context.Context, req CreateAttributeRequest) (*model.Attribute, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidf("attribute: %v", err)
	}

	return createAttribute(ctx, a.store, req)
}

// BulkCreateAttributes creates a batch of attributes atomically. A duplicate
// name within the batch or against stored rows rolls back the whole batch.
func (a *AttributeService) BulkCreateAttributes(ctx context.Context, reqs []CreateAttributeRequest) ([]*model.Attribute, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, invalidf("attribute: %v", err)
		}
	}

	attrs := make([]*model.Attribute, 0, len(reqs))
	err := a.store.Transaction(ctx, func(tx store.Store) error {
		for _, req := range reqs {
			created, err := createAttribute(ctx, tx, req)
			if err != nil {
				return err
			}
			attrs = append(attrs, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return attrs, nil
}

func createAttribute(ctx context.Context, s store.Store, req CreateAttributeRequest) (*model.Attribute, error) {
	if _, err := s.GetObject(ctx, req.ObjectID); err != nil {
		return nil, storeError(err, objectRef(req.ObjectID))
	}

	existing, err := s.ListAttributes(ctx, store.AttributeFilter{
		ObjectID: &req.ObjectID,
		Name:     req.Name,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, conflictf("attribute %q on object %d", req.Name, req.ObjectID)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	attr := &model.Attribute{
		ObjectID:  req.ObjectID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedOn: now,
		UpdatedOn: now,
	}
	if err := s.CreateAttribute(ctx, attr); err != nil {
		return nil, storeError(err, "attribute")
	}

	return attr, nil
}

func (a *AttributeService) GetAttribute(ctx context.Context, id int64) (*model.Attribute, error) {
	attr, err := a.store.GetAttribute(ctx, id)
	if err != nil {
		return nil, storeError(err, "attribute")
	}
	return attr, nil
}

func (a *AttributeService) ListAttributes(ctx context.Context, filter store.AttributeFilter) ([]*model.Attribute, error) {
	return a.store.ListAttributes(ctx, filter)
}

// UpdateAttribute patches an attribute. Renaming re-checks the per-object
// name uniqueness against the other attributes of the same object.
func (a *AttributeService) UpdateAttribute(ctx context.Context, id int64, req UpdateAttributeRequest) (*model.Attribute, error) {
	attr, err := a.store.GetAttribute(ctx, id)
	if err != nil {
		return nil, storeError(err, "attribute")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalidf("attribute name must not be empty")
		}
		if *req.Name != attr.Name {
			existing, err := a.store.ListAttributes(ctx, store.AttributeFilter{
				ObjectID: &attr.ObjectID,
				Name:     *req.Name,
			})
			if err != nil {
				return nil, err
			}
			if len(existing) > 0 {
				return nil, conflictf("attribute %q on object %d", *req.Name, attr.ObjectID)
			}
		}
		attr.Name = *req.Name
	}
	if req.Value != nil {
		attr.Value = *req.Value
	}
	attr.UpdatedOn = time.Now().UTC().Format(time.RFC3339)

	if err := a.store.UpdateAttribute(ctx, attr); err != nil {
		return nil, storeError(err, "attribute")
	}

	return attr, nil
}

func (a *AttributeService) DeleteAttribute(ctx context.Context, id int64) error {
	if _, err := a.store.GetAttribute(ctx, id); err != nil {
		return storeError(err, "attribute")
	}
	return a.store.DeleteAttribute(ctx, id)
}
