package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/model"
)

type TransactionFilter struct {
	UserID    string
	Type      model.TransactionType
	Category  string
	StartDate time.Time
	EndDate   time.Time // exclusive
	Page      int
	PageSize  int
}

// TypeTotal is the summed amount of one transaction type.
type TypeTotal struct {
	Type  model.TransactionType
	Total decimal.Decimal
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id uint) (*model.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, id uint) error
	Totals(ctx context.Context, userID string, start, end time.Time) ([]TypeTotal, error)
	SeriesHeads(ctx context.Context) ([]model.Transaction, error)
	LastOccurrence(ctx context.Context, seriesID string) (int, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepo {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepo) GetByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error) {
	var (
		list  []model.Transaction
		total int64
	)

	query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", filter.UserID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.StartDate.IsZero() {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query = query.Where("date < ?", filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	err := query.Order("date DESC, id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&list).Error
	return list, total, err
}

func (r *transactionRepo) Update(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *transactionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error
}

func (r *transactionRepo) Totals(ctx context.Context, userID string, start, end time.Time) ([]TypeTotal, error) {
	var totals []TypeTotal
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("type, SUM(amount) AS total").
		Where("user_id = ?", userID)
	if !start.IsZero() {
		query = query.Where("date >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("date < ?", end)
	}
	err := query.Group("type").Scan(&totals).Error
	return totals, err
}

// SeriesHeads returns the first occurrence of every live recurring series.
func (r *transactionRepo) SeriesHeads(ctx context.Context) ([]model.Transaction, error) {
	var heads []model.Transaction
	err := r.db.WithContext(ctx).
		Where("recurrence_period <> '' AND series_id <> '' AND occurrence = 0").
		Find(&heads).Error
	return heads, err
}

func (r *transactionRepo) LastOccurrence(ctx context.Context, seriesID string) (int, error) {
	var last int
	err := r.db.WithContext(ctx).Unscoped().Model(&model.Transaction{}).
		Select("COALESCE(MAX(occurrence), 0)").
		Where("series_id = ?", seriesID).
		Scan(&last).Error
	return last, err
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
