package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *Sightseeing) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Sightseeing, error) {
	var s Sightseeing
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context, activeOnly bool) ([]Sightseeing, error) {
	var out []Sightseeing
	q := r.db.WithContext(ctx).Order("created_at desc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	return out, q.Find(&out).Error
}

func (r *Repository) Save(ctx context.Context, s *Sightseeing) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Sightseeing{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
