package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/Smitap11/taxables-backend/internal/errors"
	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
)

// budgetService handles budget records.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// Create inserts a new budget row owned by userID.
func (s *budgetService) Create(userID uint, in BudgetInput) (*models.Budget, error) {
	if err := requireBudgetFields(in); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:      userID,
		Category:    strings.TrimSpace(*in.Category),
		Subcategory: strings.TrimSpace(*in.Subcategory),
		Amount:      *in.Amount,
		Date:        *in.Date,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// List returns the user's budgets within the optional date range, newest first.
func (s *budgetService) List(userID uint, filter ListFilter, page pagination.Params) (*pagination.ListResponse[models.Budget], error) {
	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	base = applyDateRange(base, filter.From, filter.To)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Scope(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewListResponse(budgets, count)
	return &resp, nil
}

// GetByID returns a budget row if it belongs to the user.
func (s *budgetService) GetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// Update applies the input to an existing row. Ownership never changes.
func (s *budgetService) Update(userID, budgetID uint, in BudgetInput, partial bool) (*models.Budget, error) {
	budget, err := s.GetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if !partial {
		if err := requireBudgetFields(in); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if in.Category != nil {
		updates["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Subcategory != nil {
		updates["subcategory"] = strings.TrimSpace(*in.Subcategory)
	}
	if in.Amount != nil {
		updates["amount"] = *in.Amount
	}
	if in.Date != nil {
		updates["date"] = in.Date.Time
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return budget, nil
}

// Delete removes the row if it belongs to the user.
func (s *budgetService) Delete(userID, budgetID uint) error {
	budget, err := s.GetByID(userID, budgetID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func requireBudgetFields(in BudgetInput) error {
	fields := make(map[string][]string)
	if in.Category == nil || strings.TrimSpace(*in.Category) == "" {
		fields["category"] = []string{"This field is required."}
	}
	if in.Subcategory == nil || strings.TrimSpace(*in.Subcategory) == "" {
		fields["subcategory"] = []string{"This field is required."}
	}
	if in.Amount == nil {
		fields["amount"] = []string{"This field is required."}
	}
	if in.Date == nil {
		fields["date"] = []string{"This field is required."}
	}
	if len(fields) > 0 {
		return apperrors.FieldErrors(fields)
	}
	return nil
}
