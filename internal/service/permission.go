package service

import (
	"context"

	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NewPermissionService creates a new PermissionService.
func NewPermissionService(store store.Store) *PermissionService {
	return &PermissionService{store: store}
}

// PermissionService stores access control records for objects. The records
// are not evaluated here; enforcement is the caller's concern.
type PermissionService struct {
	store store.Store
}

type CreatePermissionRequest struct {
	ObjectID        int64  `json:"object_id"`
	User            string `json:"user"`
	PermissionLevel string `json:"permission_level"`
}

func (r CreatePermissionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ObjectID, validation.Required),
		validation.Field(&r.User, validation.Required),
		validation.Field(&r.PermissionLevel, validation.Required),
	)
}

type UpdatePermissionRequest struct {
	User            *string `json:"user"`
	PermissionLevel *string `json:"permission_level"`
}

func (p *PermissionService) CreatePermission(ctx context.Context, req CreatePermissionRequest) (*model.Permission, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidf("permission: %v", err)
	}

	return createPermission(ctx, p.store, req)
}

// BulkCreatePermissions creates a batch of permission records atomically.
func (p *PermissionService) BulkCreatePermissions(ctx context.Context, reqs []CreatePermissionRequest) ([]*model.Permission, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, invalidf("permission: %v", err)
		}
	}

	permissions := make([]*model.Permission, 0, len(reqs))
	err := p.store.Transaction(ctx, func(tx store.Store) error {
		for _, req := range reqs {
			created, err := createPermission(ctx, tx, req)
			if err != nil {
				return err
			}
			permissions = append(permissions, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

func createPermission(ctx context.Context, s store.Store, req CreatePermissionRequest) (*model.Permission, error) {
	if _, err := s.GetObject(ctx, req.ObjectID); err != nil {
		return nil, storeError(err, objectRef(req.ObjectID))
	}

	permission := &model.Permission{
		ObjectID:        req.ObjectID,
		User:            req.User,
		PermissionLevel: req.PermissionLevel,
	}
	if err := s.CreatePermission(ctx, permission); err != nil {
		return nil, storeError(err, "permission")
	}

	return permission, nil
}

func (p *PermissionService) GetPermission(ctx context.Context, id int64) (*model.Permission, error) {
	permission, err := p.store.GetPermission(ctx, id)
	if err != nil {
		return nil, storeError(err, "permission")
	}
	return permission, nil
}

func (p *PermissionService) ListPermissions(ctx context.Context, filter store.PermissionFilter) ([]*model.Permission, error) {
	return p.store.ListPermissions(ctx, filter)
}

func (p *PermissionService) UpdatePermission(ctx context.Context, id int64, req UpdatePermissionRequest) (*model.Permission, error) {
	permission, err := p.store.GetPermission(ctx, id)
	if err != nil {
		return nil, storeError(err, "permission")
	}

	if req.User != nil {
		if *req.User == "" {
			return nil, invalidf("permission user must not be empty")
		}
		permission.User = *req.User
	}
	if req.PermissionLevel != nil {
		if *req.PermissionLevel == "" {
			return nil, invalidf("permission level must not be empty")
		}
		permission.PermissionLevel = *req.PermissionLevel
	}

	if err := p.store.UpdatePermission(ctx, permission); err != nil {
		return nil, storeError(err, "permission")
	}

	return permission, nil
}

func (p *PermissionService) DeletePermission(ctx context.Context, id int64) error {
	if _, err := p.store.GetPermission(ctx, id); err != nil {
		return storeError(err, "permission")
	}
	return p.store.DeletePermission(ctx, id)
}
