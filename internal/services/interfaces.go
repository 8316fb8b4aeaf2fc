package services

import (
	"github.com/shopspring/decimal"

	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
)

// ListFilter holds the optional filter parameters shared by the record list
// endpoints. Nil fields mean "no filter".
type ListFilter struct {
	From      *models.Date
	To        *models.Date
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Remark    string
	Category  string
	TypeSlug  string
}

// IncomeInput carries income fields for create/update. Fields are pointers so
// partial updates can distinguish "absent" from "zero".
type IncomeInput struct {
	Amount *decimal.Decimal
	Date   *models.Date
	Source *string
	Remark *string
}

// ExpenseInput carries expense fields for create/update.
type ExpenseInput struct {
	Date     *models.Date
	Amount   *decimal.Decimal
	Remark   *string
	Type     *string
	Category *string
}

// BudgetInput carries budget fields for create/update.
type BudgetInput struct {
	Category    *string
	Subcategory *string
	Amount      *decimal.Decimal
	Date        *models.Date
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// IncomeServicer defines the contract for income records.
type IncomeServicer interface {
	Create(userID uint, in IncomeInput) (*models.Income, error)
	List(userID uint, filter ListFilter, page pagination.Params) (*pagination.ListResponse[models.Income], error)
	GetByID(userID, incomeID uint) (*models.Income, error)
	Update(userID, incomeID uint, in IncomeInput, partial bool) (*models.Income, error)
	Delete(userID, incomeID uint) error
}

// ExpenseServicer defines the contract for expense records.
type ExpenseServicer interface {
	Create(userID uint, in ExpenseInput) (*models.Expense, error)
	List(userID uint, filter ListFilter, page pagination.Params) (*pagination.ListResponse[models.Expense], error)
	GetByID(userID, expenseID uint) (*models.Expense, error)
	Update(userID, expenseID uint, in ExpenseInput, partial bool) (*models.Expense, error)
	Delete(userID, expenseID uint) error
}

// BudgetServicer defines the contract for budget records.
type BudgetServicer interface {
	Create(userID uint, in BudgetInput) (*models.Budget, error)
	List(userID uint, filter ListFilter, page pagination.Params) (*pagination.ListResponse[models.Budget], error)
	GetByID(userID, budgetID uint) (*models.Budget, error)
	Update(userID, budgetID uint, in BudgetInput, partial bool) (*models.Budget, error)
	Delete(userID, budgetID uint) error
}

// FeedQuery holds the unified feed's filter parameters.
type FeedQuery struct {
	TypeSlug  string
	From      *models.Date
	To        *models.Date
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Remark    string
	Category  string
	Page      pagination.Params
}

// FeedRow is one normalized row of the unified transaction feed.
type FeedRow struct {
	ID       uint            `json:"id"`
	Type     string          `json:"type"`
	Date     models.Date     `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Remark   string          `json:"remark"`
	Category string          `json:"category"`
}

// TransactionServicer defines the contract for the unified feed and the
// dynamic filter catalogs.
type TransactionServicer interface {
	Feed(userID uint, q FeedQuery) (*pagination.ListResponse[FeedRow], error)
	PresentTypeSlugs(userID uint) ([]string, error)
	CategoriesForSlug(userID uint, slug string) ([]string, error)
}

// InsightRow is one budget-vs-actual comparison.
type InsightRow struct {
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Planned     decimal.Decimal `json:"planned"`
	Actual      decimal.Decimal `json:"actual"`
	Difference  decimal.Decimal `json:"difference"`
}

// DashboardSummary aggregates the current month's activity.
type DashboardSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

// InsightServicer defines the contract for derived, never-persisted views.
type InsightServicer interface {
	Insights(userID uint, scope string) ([]InsightRow, error)
	Dashboard(userID uint) (*DashboardSummary, error)
}
