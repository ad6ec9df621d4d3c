package issue

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormRepository stores issues in Postgres via gorm.
type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) Create(ctx context.Context, is *Issue) error {
	return r.DB.WithContext(ctx).Create(is).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id uint64) (*Issue, error) {
	var is Issue
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&is).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &is, nil
}

func (r *GormRepository) Update(ctx context.Context, id uint64, f Fields) (*Issue, error) {
	var is Issue
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&is).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	applyFields(&is, f)

	if err := r.DB.WithContext(ctx).Save(&is).Error; err != nil {
		return nil, err
	}
	return &is, nil
}

func (r *GormRepository) Delete(ctx context.Context, id uint64) error {
	// Deleting a missing row is a no-op, not an error.
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Issue{}).Error
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]Issue, int64, error) {
	q := r.DB.WithContext(ctx).Model(&Issue{})

	if f.Search != "" {
		q = q.Where("title ILIKE ?", "%"+f.Search+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Issue
	err := q.Order("created_at desc, id desc").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.DB.WithContext(ctx).Model(&Issue{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, g := range rows {
		out[g.Status] = g.Count
	}
	return out, nil
}

func (r *GormRepository) All(ctx context.Context) ([]Issue, error) {
	var rows []Issue
	err := r.DB.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func applyFields(is *Issue, f Fields) {
	if f.Title != nil {
		is.Title = *f.Title
	}
	if f.Description != nil {
		is.Description = *f.Description
	}
	if f.Status != nil {
		is.Status = *f.Status
	}
	if f.Priority != nil {
		is.Priority = *f.Priority
	}
	if f.Severity != nil {
		is.Severity = *f.Severity
	}
}
