package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/model"
)

type TaskFilter struct {
	UserID   string
	Status   model.TaskStatus
	Page     int
	PageSize int
}

type TaskRepo interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]model.Task, int64, error)
	Recent(ctx context.Context, userID string, limit int) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uint) error
	SeriesHeads(ctx context.Context) ([]model.Task, error)
	LastOccurrence(ctx context.Context, seriesID string) (int, error)
}

type taskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepo) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) List(ctx context.Context, filter TaskFilter) ([]model.Task, int64, error) {
	var (
		list  []model.Task
		total int64
	)
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", filter.UserID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	err := query.Order("date ASC, id ASC").Offset((page - 1) * size).Limit(size).Find(&list).Error
	return list, total, err
}

// Recent returns the user's most recently created tasks, newest first.
func (r *taskRepo) Recent(ctx context.Context, userID string, limit int) ([]model.Task, error) {
	var list []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *taskRepo) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}

func (r *taskRepo) SeriesHeads(ctx context.Context) ([]model.Task, error) {
	var heads []model.Task
	err := r.db.WithContext(ctx).
		Where("recurrence_period <> '' AND series_id <> '' AND occurrence = 0").
		Find(&heads).Error
	return heads, err
}

func (r *taskRepo) LastOccurrence(ctx context.Context, seriesID string) (int, error) {
	var last int
	err := r.db.WithContext(ctx).Unscoped().Model(&model.Task{}).
		Select("COALESCE(MAX(occurrence), 0)").
		Where("series_id = ?", seriesID).
		Scan(&last).Error
	return last, err
}
