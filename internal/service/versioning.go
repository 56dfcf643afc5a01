package service

import (
	"context"
	"time"

	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NewVersioningService creates a new VersioningService.
func NewVersioningService(store store.Store) *VersioningService {
	return &VersioningService{store: store}
}

// VersioningService manages historical version tags for objects. An object
// may carry many tags; there is no ordering invariant beyond creation time.
type VersioningService struct {
	store store.Store
}

type CreateVersioningRequest struct {
	ObjectID int64  `json:"object_id"`
	Version  string `json:"version"`
}

func (r CreateVersioningRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ObjectID, validation.Required),
		validation.Field(&r.Version, validation.Required),
	)
}

type UpdateVersioningRequest struct {
	Version *string `json:"version"`
}

func (v *VersioningService) CreateVersioning(ctx context.Context, req CreateVersioningRequest) (*model.Versioning, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidf("versioning: %v", err)
	}

	return createVersioning(ctx, v.store, req)
}

// BulkCreateVersioning creates a batch of version tags atomically.
func (v *VersioningService) BulkCreateVersioning(ctx context.Context, reqs []CreateVersioningRequest) ([]*model.Versioning, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, invalidf("versioning: %v", err)
		}
	}

	records := make([]*model.Versioning, 0, len(reqs))
	err := v.store.Transaction(ctx, func(tx store.Store) error {
		for _, req := range reqs {
			created, err := createVersioning(ctx, tx, req)
			if err != nil {
				return err
			}
			records = append(records, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func createVersioning(ctx context.Context, s store.Store, req CreateVersioningRequest) (*model.Versioning, error) {
	if _, err := s.GetObject(ctx, req.ObjectID); err != nil {
		return nil, storeError(err, objectRef(req.ObjectID))
	}

	record := &model.Versioning{
		ObjectID:  req.ObjectID,
		Version:   req.Version,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CreateVersioning(ctx, record); err != nil {
		return nil, storeError(err, "versioning record")
	}

	return record, nil
}

func (v *VersioningService) GetVersioning(ctx context.Context, id int64) (*model.Versioning, error) {
	record, err := v.store.GetVersioning(ctx, id)
	if err != nil {
		return nil, storeError(err, "versioning record")
	}
	return record, nil
}

func (v *VersioningService) ListVersioning(ctx context.Context, filter store.VersioningFilter) ([]*model.Versioning, error) {
	return v.store.ListVersioning(ctx, filter)
}

func (v *VersioningService) UpdateVersioning(ctx context.Context, id int64, req UpdateVersioningRequest) (*model.Versioning, error) {
	record, err := v.store.GetVersioning(ctx, id)
	if err != nil {
		return nil, storeError(err, "versioning record")
	}

	if req.Version != nil {
		if *req.Version == "" {
			return nil, invalidf("version must not be empty")
		}
		record.Version = *req.Version
	}

	if err := v.store.UpdateVersioning(ctx, record); err != nil {
		return nil, storeError(err, "versioning record")
	}

	return record, nil
}

func (v *VersioningService) DeleteVersioning(ctx context.Context, id int64) error {
	if _, err := v.store.GetVersioning(ctx, id); err != nil {
		return storeError(err, "versioning record")
	}
	return v.store.DeleteVersioning(ctx, id)
}
