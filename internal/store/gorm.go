package store

import (
	"context"

	"github.com/emrgen/strata/internal/model"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateType(ctx context.Context, t *model.Type) error {
	return g.db.WithContext(ctx).Create(t).Error
}

func (g *GormStore) GetType(ctx context.Context, id string) (*model.Type, error) {
	var t model.Type
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *GormStore) ListTypes(ctx context.Context, filter TypeFilter) ([]*model.Type, error) {
	var types []*model.Type
	q := g.db.WithContext(ctx).Order("id")
	if filter.Name != "" {
		q = q.Where("type_name = ?", filter.Name)
	}
	err := paginate(q, filter.Skip, filter.Limit).Find(&types).Error
	return types, err
}

func (g *GormStore) UpdateType(ctx context.Context, t *model.Type) error {
	return g.db.WithContext(ctx).Save(t).Error
}

func (g *GormStore) DeleteType(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Type{}).Error
}

func (g *GormStore) CreateObject(ctx context.Context, o *model.Object) error {
	return g.db.WithContext(ctx).Create(o).Error
}

func (g *GormStore) GetObject(ctx context.Context, id int64) (*model.Object, error) {
	var o model.Object
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (g *GormStore) ListObjects(ctx context.Context, filter ObjectFilter) ([]*model.Object, error) {
	var objects []*model.Object
	q := g.db.WithContext(ctx).Order("id")
	if filter.TypeID != "" {
		q = q.Where("type_id = ?", filter.TypeID)
	}
	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	err := paginate(q, filter.Skip, filter.Limit).Find(&objects).Error
	return objects, err
}

func (g *GormStore) ListObjectIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&model.Object{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (g *GormStore) UpdateObject(ctx context.Context, o *model.Object) error {
	return g.db.WithContext(ctx).Save(o).Error
}

func (g *GormStore) DeleteObject(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Object{}).Error
}

func (g *GormStore) CreateLink(ctx context.Context, l *model.Link) error {
	return g.db.WithContext(ctx).Create(l).Error
}

func (g *GormStore) GetLink(ctx context.Context, id int64) (*model.Link, error) {
	var l model.Link
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *GormStore) ListLinks(ctx context.Context, filter LinkFilter) ([]*model.Link, error) {
	var links []*model.Link
	q := g.db.WithContext(ctx).Order("id")
	if filter.ParentID != nil {
		q = q.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.ChildID != nil {
		q = q.Where("child_id = ?", *filter.ChildID)
	}
	if filter.RName != "" {
		q = q.Where("r_name = ?", filter.RName)
	}
	err := paginate(q, filter.Skip, filter.Limit).Find(&links).Error
	return links, err
}

func (g *GormStore) UpdateLink(ctx context.Context, l *model.Link) error {
	return g.db.WithContext(ctx).Save(l).Error
}

func (g *GormStore) DeleteLink(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Link{}).Error
}

func (g *GormStore) CreatePermission(ctx context.Context, p *model.Permission) error {
	return g.db.WithContext(ctx).Create(p).Error
}

func (g *GormStore) GetPermission(ctx context.Context, id int64) (*model.Permission, error) {
	var p model.Permission
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *GormStore) ListPermissions(ctx context.Context, filter PermissionFilter) ([]*model.Permission, error) {
	var permissions []*model.Permission
	q := g.db.WithContext(ctx).Order("id")
	if filter.ObjectID != nil {
		q = q.Where("object_id = ?", *filter.ObjectID)
	}
	if filter.User != "" {
		// map condition so the dialect quotes the column; bare "user" is a
		// reserved word on postgres and parses as current_user
		q = q.Where(map[string]interface{}{"user": filter.User})
	}
	err := paginate(q, filter.Skip, filter.Limit).Find(&permissions).Error
	return permissions, err
}

func (g *GormStore) UpdatePermission(ctx context.Context, p *model.Permission) error {
	return g.db.WithContext(ctx).Save(p).Error
}

func (g *GormStore) DeletePermission(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Permission{}).Error
}

func (g *GormStore) CreateVersioning(ctx context.Context, v *model.Versioning) error {
	return g.db.WithContext(ctx).Create(v).Error
}

func (g *GormStore) GetVersioning(ctx context.Context, id int64) (*model.Versioning, error) {
	var v model.Versioning
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (g *GormStore) ListVersioning(ctx context.Context, filter VersioningFilter) ([]*model.Versioning, error) {
	var records []*model.Versioning
	q := g.db.WithContext(ctx).Order("id")
	if filter.ObjectID != nil {
		q = q.Where("object_id = ?", *filter.ObjectID)
	}
	if filter.Version != "" {
		q = q.Where("version = ?", filter.Version)
	}
	err := paginate(q, filter.Skip, filter.Limit).Find(&records).Error
	return records, err
}

func (g *GormStore) UpdateVersioning(ctx context.Context, v *model.Versioning) error {
	return g.db.WithContext(ctx).Save(v).Error
}

func (g *GormStore) DeleteVersioning(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Versioning{}).Error
}

func (g *GormStore) CreateAttribute(ctx context.Context, a *model.Attribute) error {
	return g.db.WithContext(ctx).Create(a).Error
}

func (g *GormStore) GetAttribute(ctx context.Context, id int64) (*model.Attribute, error) {
	var a model.Attribute
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *GormStore) ListAttributes(ctx context.Context, filter AttributeFilter) ([]*model.Attribute, error) {
	var attrs []*model.Attribute
	q := g.db.WithContext(ctx).Order("id")
	if filter.ObjectID != nil {
		q = q.Where("object_id = ?", *filter.ObjectID)
	}
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}
	err := paginate(q, filter.Skip, filter.Limit).Find(&attrs).Error
	return attrs, err
}

func (g *GormStore) UpdateAttribute(ctx context.Context, a *model.Attribute) error {
	return g.db.WithContext(ctx).Save(a).Error
}

func (g *GormStore) DeleteAttribute(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Attribute{}).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}

func paginate(q *gorm.DB, skip, limit int) *gorm.DB {
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}
