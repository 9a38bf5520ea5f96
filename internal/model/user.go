package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns every other entity through its string id.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"type:varchar(100);not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when the id is empty.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	u.ID = id.String()
	return nil
}
