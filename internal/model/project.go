package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProjectCategory string

const (
	ProjectGoal    ProjectCategory = "GOAL"
	ProjectReserve ProjectCategory = "RESERVE"
	ProjectAsset   ProjectCategory = "ASSET"
)

// Project is a savings goal: money set aside towards TargetAmount.
type Project struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID       string          `gorm:"type:varchar(64);index" json:"user_id" validate:"required"`
	Title        string          `gorm:"type:varchar(255)" json:"title" validate:"required,max=255"`
	Description  string          `gorm:"type:text" json:"description"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"target_amount"`
	SavedAmount  decimal.Decimal `gorm:"type:decimal(12,2)" json:"saved_amount"`
	Category     ProjectCategory `gorm:"type:varchar(16)" json:"category" validate:"oneof=GOAL RESERVE ASSET"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	Source       Source          `gorm:"type:varchar(16)" json:"source"`
}

func (Project) TableName() string {
	return "projects"
}

// Progress returns the saved fraction in [0, 1].
func (p Project) Progress() float64 {
	if !p.TargetAmount.IsPositive() {
		return 0
	}
	f, _ := p.SavedAmount.Div(p.TargetAmount).Float64()
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
