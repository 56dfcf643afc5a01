package jobs

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/strata/internal/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrphanSweeper collects the rows a non-cascading object delete leaves
// behind: links, permissions, versioning records and attributes that still
// reference a deleted object.
type OrphanSweeper struct {
	store    store.Store
	schedule string
}

func NewOrphanSweeper(store store.Store, schedule string) *OrphanSweeper {
	return &OrphanSweeper{
		store:    store,
		schedule: schedule,
	}
}

func (s *OrphanSweeper) Schedule() string {
	return s.schedule
}

func (s *OrphanSweeper) Run() {
	if err := s.Sweep(context.Background()); err != nil {
		logrus.Errorf("orphan sweep failed: %v", err)
	}
}

// Sweep deletes dependent rows whose object is gone. A row that looks
// orphaned against the id snapshot is confirmed with a point lookup before
// deletion, so rows created concurrently with the sweep survive.
func (s *OrphanSweeper) Sweep(ctx context.Context) error {
	ids, err := s.store.ListObjectIDs(ctx)
	if err != nil {
		return err
	}
	live := mapset.NewSet[int64](ids...)

	removed := 0

	links, err := s.store.ListLinks(ctx, store.LinkFilter{})
	if err != nil {
		return err
	}
	for _, link := range links {
		orphaned, err := s.orphaned(ctx, live, link.ParentID)
		if err != nil {
			return err
		}
		if !orphaned {
			orphaned, err = s.orphaned(ctx, live, link.ChildID)
			if err != nil {
				return err
			}
		}
		if orphaned {
			if err := s.store.DeleteLink(ctx, link.ID); err != nil {
				return err
			}
			removed++
		}
	}

	permissions, err := s.store.ListPermissions(ctx, store.PermissionFilter{})
	if err != nil {
		return err
	}
	for _, permission := range permissions {
		orphaned, err := s.orphaned(ctx, live, permission.ObjectID)
		if err != nil {
			return err
		}
		if orphaned {
			if err := s.store.DeletePermission(ctx, permission.ID); err != nil {
				return err
			}
			removed++
		}
	}

	records, err := s.store.ListVersioning(ctx, store.VersioningFilter{})
	if err != nil {
		return err
	}
	for _, record := range records {
		orphaned, err := s.orphaned(ctx, live, record.ObjectID)
		if err != nil {
			return err
		}
		if orphaned {
			if err := s.store.DeleteVersioning(ctx, record.ID); err != nil {
				return err
			}
			removed++
		}
	}

	attrs, err := s.store.ListAttributes(ctx, store.AttributeFilter{})
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		orphaned, err := s.orphaned(ctx, live, attr.ObjectID)
		if err != nil {
			return err
		}
		if orphaned {
			if err := s.store.DeleteAttribute(ctx, attr.ID); err != nil {
				return err
			}
			removed++
		}
	}

	if removed > 0 {
		logrus.Infof("orphan sweep removed %d dangling rows", removed)
	}

	return nil
}

func (s *OrphanSweeper) orphaned(ctx context.Context, live mapset.Set[int64], objectID int64) (bool, error) {
	if live.Contains(objectID) {
		return false, nil
	}

	// object ids are never reused, a fresh row can still reference an object
	// created after the snapshot
	_, err := s.store.GetObject(ctx, objectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}

	live.Add(objectID)
	return false, nil
}
