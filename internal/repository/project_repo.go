package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/model"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	List(ctx context.Context, userID string) ([]model.Project, error)
	AddSaved(ctx context.Context, id uint, amount decimal.Decimal) error
	Delete(ctx context.Context, id uint) error
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, userID string) ([]model.Project, error) {
	var list []model.Project
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

// AddSaved increments saved_amount in place so concurrent contributions
// are not lost.
func (r *projectRepo) AddSaved(ctx context.Context, id uint, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("saved_amount", gorm.Expr("saved_amount + ?", amount)).Error
}

func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}
