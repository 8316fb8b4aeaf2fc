package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/Smitap11/taxables-backend/internal/errors"
	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
	"github.com/Smitap11/taxables-backend/internal/txtype"
)

// expenseService handles expense records and their type subtypes.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// Create inserts a new expense row owned by userID after normalizing the
// type/category pair.
func (s *expenseService) Create(userID uint, in ExpenseInput) (*models.Expense, error) {
	if err := requireExpenseFields(in); err != nil {
		return nil, err
	}

	var rawType, rawCategory string
	if in.Type != nil {
		rawType = *in.Type
	}
	if in.Category != nil {
		rawCategory = *in.Category
	}
	norm, ok := txtype.NormalizeWrite(rawType, rawCategory)
	if !ok {
		return nil, apperrors.FieldError("category", "Category is required.")
	}

	expense := &models.Expense{
		UserID:   userID,
		Date:     *in.Date,
		Amount:   *in.Amount,
		Type:     norm.Type,
		Category: norm.Category,
	}
	if in.Remark != nil {
		expense.Remark = *in.Remark
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// List returns the user's expenses matching the filter, newest first. The
// type slug restricts rows to the slug's full label variant set, including
// the legacy empty label for "expense".
func (s *expenseService) List(userID uint, filter ListFilter, page pagination.Params) (*pagination.ListResponse[models.Expense], error) {
	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	base = applyDateRange(base, filter.From, filter.To)
	base = applyAmountRange(base, filter.MinAmount, filter.MaxAmount)
	if r := strings.TrimSpace(filter.Remark); r != "" {
		base = base.Where("LOWER(remark) LIKE ?", likePattern(r))
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		base = base.Where("LOWER(category) LIKE ?", likePattern(c))
	}
	if slug := strings.ToLower(strings.TrimSpace(filter.TypeSlug)); txtype.IsExpenseSlug(slug) {
		base = base.Where("LOWER(COALESCE(type, '')) IN ?", lowered(txtype.LabelsForSlug(slug)))
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Scope(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewListResponse(expenses, count)
	return &resp, nil
}

// GetByID returns an expense row if it belongs to the user.
func (s *expenseService) GetByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// Update applies the input to an existing row, re-running type/category
// normalization against the merged result. Ownership never changes.
func (s *expenseService) Update(userID, expenseID uint, in ExpenseInput, partial bool) (*models.Expense, error) {
	expense, err := s.GetByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if !partial {
		if err := requireExpenseFields(in); err != nil {
			return nil, err
		}
	}

	// Merge the incoming type/category over the stored values so partial
	// updates still honor the normalization rules.
	mergedType := expense.Type
	if in.Type != nil {
		mergedType = *in.Type
	}
	mergedCategory := expense.Category
	if in.Category != nil {
		mergedCategory = *in.Category
	}
	norm, ok := txtype.NormalizeWrite(mergedType, mergedCategory)
	if !ok {
		return nil, apperrors.FieldError("category", "Category is required.")
	}

	updates := map[string]interface{}{
		"type":     norm.Type,
		"category": norm.Category,
	}
	if in.Date != nil {
		updates["date"] = in.Date.Time
	}
	if in.Amount != nil {
		updates["amount"] = *in.Amount
	}
	if in.Remark != nil {
		updates["remark"] = *in.Remark
	}

	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// Delete removes the row if it belongs to the user.
func (s *expenseService) Delete(userID, expenseID uint) error {
	expense, err := s.GetByID(userID, expenseID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func requireExpenseFields(in ExpenseInput) error {
	fields := make(map[string][]string)
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
