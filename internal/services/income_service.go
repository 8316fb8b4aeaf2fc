package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/Smitap11/taxables-backend/internal/errors"
	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
)

// incomeService handles income records.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// Create inserts a new income row owned by userID.
func (s *incomeService) Create(userID uint, in IncomeInput) (*models.Income, error) {
	if err := requireIncomeFields(in); err != nil {
		return nil, err
	}

	income := &models.Income{
		UserID: userID,
		Amount: *in.Amount,
		Date:   *in.Date,
	}
	if in.Source != nil {
		income.Source = strings.TrimSpace(*in.Source)
	}
	if in.Remark != nil {
		income.Remark = *in.Remark
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// List returns the user's incomes matching the filter, newest first.
// The remark filter also matches the source column.
func (s *incomeService) List(userID uint, filter ListFilter, page pagination.Params) (*pagination.ListResponse[models.Income], error) {
	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	base = applyDateRange(base, filter.From, filter.To)
	base = applyAmountRange(base, filter.MinAmount, filter.MaxAmount)
	if r := strings.TrimSpace(filter.Remark); r != "" {
		base = base.Where("LOWER(remark) LIKE ? OR LOWER(source) LIKE ?", likePattern(r), likePattern(r))
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Scope(page)).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewListResponse(incomes, count)
	return &resp, nil
}

// GetByID returns an income row if it belongs to the user.
func (s *incomeService) GetByID(userID, incomeID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// Update applies the input to an existing row. For full updates (PUT) the
// required fields must be present; partial updates (PATCH) change only the
// supplied fields. Ownership never changes.
func (s *incomeService) Update(userID, incomeID uint, in IncomeInput, partial bool) (*models.Income, error) {
	income, err := s.GetByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	if !partial {
		if err := requireIncomeFields(in); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if in.Amount != nil {
		updates["amount"] = *in.Amount
	}
	if in.Date != nil {
		updates["date"] = in.Date.Time
	}
	if in.Source != nil {
		updates["source"] = strings.TrimSpace(*in.Source)
	}
	if in.Remark != nil {
		updates["remark"] = *in.Remark
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return income, nil
}

// Delete removes the row if it belongs to the user.
func (s *incomeService) Delete(userID, incomeID uint) error {
	income, err := s.GetByID(userID, incomeID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func requireIncomeFields(in IncomeInput) error {
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
