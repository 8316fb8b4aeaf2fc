package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single income entry owned by one user.
type Income struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      Date            `gorm:"type:date;not null" json:"date"`
	Source    string          `gorm:"size:80;default:''" json:"source"`
	Remark    string          `gorm:"size:255;default:''" json:"remark"`
	CreatedAt time.Time       `json:"created_at"`
}
