package model

import "time"

// ListGroup is a named shopping/checklist list ("Mercado", "Farmácia").
type ListGroup struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	UserID    string     `gorm:"type:varchar(64);index" json:"user_id" validate:"required"`
	Name      string     `gorm:"type:varchar(100)" json:"name" validate:"required,max=100"`
	Items     []ListItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (ListGroup) TableName() string {
	return "list_groups"
}

type ListItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ListID    uint      `gorm:"index" json:"list_id" validate:"required"`
	Name      string    `gorm:"type:varchar(255)" json:"name" validate:"required,max=255"`
	Checked   bool      `json:"checked"`
	Source    Source    `gorm:"type:varchar(16)" json:"source"`
}

func (ListItem) TableName() string {
	return "list_items"
}
