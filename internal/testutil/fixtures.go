package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Smitap11/taxables-backend/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec builds a decimal from a string, failing the test on a typo.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// Day builds a Date for the given year/month/day.
func Day(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncome creates an income row for the user.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount string, date models.Date, source, remark string) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Amount: Dec(t, amount),
		Date:   date,
		Source: source,
		Remark: remark,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense row for the user.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount string, date models.Date, typ, category, remark string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Amount:   Dec(t, amount),
		Date:     date,
		Type:     typ,
		Category: category,
		Remark:   remark,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget row for the user.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category, subcategory, amount string, date models.Date) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		Category:    category,
		Subcategory: subcategory,
		Amount:      Dec(t, amount),
		Date:        date,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
