package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a spend entry. Type carries the UI subtype ("Expense", "Savings",
// "EMIs", "Loans&Advance", "Other") including legacy spelling variants from
// older clients; rows predating the subtype feature may have an empty type.
type Expense struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user"`
	Date      Date            `gorm:"type:date;not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Remark    string          `gorm:"size:255;default:''" json:"remark"`
	Type      string          `gorm:"size:100;default:'Expense'" json:"type"`
	Category  string          `gorm:"size:100;default:''" json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}
