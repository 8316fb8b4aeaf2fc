package models

import "time"

// User represents an account holder. Email doubles as the login identifier
// and is stored lowercased.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Incomes  []Income  `gorm:"foreignKey:UserID" json:"-"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"-"`
	Budgets  []Budget  `gorm:"foreignKey:UserID" json:"-"`
}
