package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a planned amount for a category/subcategory pair. Category is
// conceptually "Expense" or "Saving"; Subcategory is matched against
// Expense.category or Income remark/source when computing actuals.
type Budget struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user"`
	Category    string          `gorm:"size:100;not null" json:"category"`
	Subcategory string          `gorm:"size:100;not null" json:"subcategory"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        Date            `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
