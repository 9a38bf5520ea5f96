package model

import (
	"time"

	"gorm.io/gorm"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

type TaskStatus string

const (
	TaskPending TaskStatus = "PENDING"
	TaskDone    TaskStatus = "DONE"
)

type Task struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   string       `gorm:"type:varchar(64);index" json:"user_id" validate:"required"`
	Title    string       `gorm:"type:varchar(255)" json:"title" validate:"required,max=255"`
	Date     time.Time    `gorm:"index" json:"date" validate:"required"`
	Time     string       `gorm:"type:varchar(5)" json:"time" validate:"omitempty,datetime=15:04"`
	Priority TaskPriority `gorm:"type:varchar(8)" json:"priority" validate:"oneof=LOW MEDIUM HIGH"`
	Status   TaskStatus   `gorm:"type:varchar(8);index" json:"status" validate:"oneof=PENDING DONE"`

	Recurrence Recurrence `gorm:"embedded;embeddedPrefix:recurrence_" json:"recurrence"`
	SeriesID   string     `gorm:"type:varchar(36);index" json:"series_id,omitempty"`
	Occurrence int        `json:"occurrence"`
	Source     Source     `gorm:"type:varchar(16)" json:"source"`
}

func (Task) TableName() string {
	return "tasks"
}
