package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/Smitap11/taxables-backend/internal/errors"
	"github.com/Smitap11/taxables-backend/internal/models"
)

// insightService computes derived budget-vs-actual views. Nothing here is
// ever persisted; every call recomputes from the current rows.
type insightService struct {
	db *gorm.DB
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB) InsightServicer {
	return &insightService{db: db}
}

// monthWindow returns the first day of the current month and the first day of
// the next month.
func monthWindow() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Insights computes planned-vs-actual for every budget of the user. Scope
// "month" restricts matched transactions to the current calendar month;
// anything else means unrestricted.
func (s *insightService) Insights(userID uint, scope string) ([]InsightRow, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]InsightRow, 0, len(budgets))
	for _, b := range budgets {
		actual, err := s.actualFor(userID, b, scope)
		if err != nil {
			return nil, err
		}
		rows = append(rows, InsightRow{
			Category:    b.Category,
			Subcategory: b.Subcategory,
			Planned:     b.Amount,
			Actual:      actual,
			Difference:  actual.Sub(b.Amount),
		})
	}
	return rows, nil
}

// actualFor sums the transactions a budget row matches. Budget category
// "expense" sums expenses whose category equals the subcategory;
// "saving"/"savings" sums incomes whose remark or source contains the
// subcategory. Any other category yields zero.
func (s *insightService) actualFor(userID uint, b models.Budget, scope string) (decimal.Decimal, error) {
	cat := strings.ToLower(strings.TrimSpace(b.Category))
	sub := strings.TrimSpace(b.Subcategory)

	switch cat {
	case "expense":
		q := s.db.Model(&models.Expense{}).
			Where("user_id = ? AND LOWER(category) = ?", userID, strings.ToLower(sub))
		return s.sumAmount(q, scope)
	case "saving", "savings":
		q := s.db.Model(&models.Income{}).
			Where("user_id = ?", userID).
			Where("LOWER(remark) LIKE ? OR LOWER(source) LIKE ?", likePattern(sub), likePattern(sub))
		return s.sumAmount(q, scope)
	default:
		return decimal.Zero, nil
	}
}

func (s *insightService) sumAmount(q *gorm.DB, scope string) (decimal.Decimal, error) {
	if scope == "month" {
		start, end := monthWindow()
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	var total decimal.Decimal
	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// Dashboard sums the current month's income, non-saving expenses, and
// savings-typed expenses.
func (s *insightService) Dashboard(userID uint) (*DashboardSummary, error) {
	start, end := monthWindow()

	var income decimal.Decimal
	err := s.db.Model(&models.Income{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&income).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var savings decimal.Decimal
	err = s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Where("LOWER(type) IN ?", []string{"savings", "saving"}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&savings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses decimal.Decimal
	err = s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Where("LOWER(COALESCE(type, '')) NOT IN ?", []string{"savings", "saving"}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DashboardSummary{Income: income, Expenses: expenses, Savings: savings}, nil
}
