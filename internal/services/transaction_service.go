package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Smitap11/taxables-backend/internal/errors"
	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
	"github.com/Smitap11/taxables-backend/internal/txtype"
)

// transactionService builds the unified income+expense feed and the dynamic
// filter catalogs.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// Feed merges income and expense rows into one normalized, paginated list.
// When no date range is given it defaults to the first day of the current
// month through today. The count reflects the merged list before pagination.
func (s *transactionService) Feed(userID uint, q FeedQuery) (*pagination.ListResponse[FeedRow], error) {
	slug := strings.ToLower(strings.TrimSpace(q.TypeSlug))
	if slug == "" {
		slug = txtype.SlugAll
	}

	from := q.From
	to := q.To
	if from == nil {
		now := time.Now()
		d := models.NewDate(now.Year(), now.Month(), 1)
		from = &d
	}
	if to == nil {
		d := models.Today()
		to = &d
	}

	var rows []FeedRow

	if slug == txtype.SlugIncome || slug == txtype.SlugAll {
		incomes, err := s.feedIncomes(userID, q, from, to)
		if err != nil {
			return nil, err
		}
		rows = append(rows, incomes...)
	}

	if slug != txtype.SlugIncome {
		expenses, err := s.feedExpenses(userID, slug, q, from, to)
		if err != nil {
			return nil, err
		}
		rows = append(rows, expenses...)
	}

	// Newest first. The id tie-break compares ids as strings, matching the
	// behavior clients were built against; see DESIGN.md before changing
	// this to a numeric comparison.
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].Date.String(), rows[j].Date.String()
		if di != dj {
			return di > dj
		}
		return strconv.FormatUint(uint64(rows[i].ID), 10) > strconv.FormatUint(uint64(rows[j].ID), 10)
	})

	total := int64(len(rows))
	resp := pagination.NewListResponse(pagination.Slice(rows, q.Page), total)
	return &resp, nil
}

func (s *transactionService) feedIncomes(userID uint, q FeedQuery, from, to *models.Date) ([]FeedRow, error) {
	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	base = applyDateRange(base, from, to)
	base = applyAmountRange(base, q.MinAmount, q.MaxAmount)
	if r := strings.TrimSpace(q.Remark); r != "" {
		base = base.Where("LOWER(remark) LIKE ? OR LOWER(source) LIKE ?", likePattern(r), likePattern(r))
	}
	// For income the category filter matches source or remark; incomes have
	// no category column of their own.
	if c := strings.TrimSpace(q.Category); c != "" {
		base = base.Where("LOWER(source) LIKE ? OR LOWER(remark) LIKE ?", likePattern(c), likePattern(c))
	}

	var incomes []models.Income
	if err := base.Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]FeedRow, 0, len(incomes))
	for _, inc := range incomes {
		remark := inc.Remark
		if remark == "" {
			remark = inc.Source
		}
		rows = append(rows, FeedRow{
			ID:       inc.ID,
			Type:     "Income",
			Date:     inc.Date,
			Amount:   inc.Amount,
			Remark:   remark,
			Category: inc.Source,
		})
	}
	return rows, nil
}

func (s *transactionService) feedExpenses(userID uint, slug string, q FeedQuery, from, to *models.Date) ([]FeedRow, error) {
	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	base = applyDateRange(base, from, to)
	base = applyAmountRange(base, q.MinAmount, q.MaxAmount)
	if r := strings.TrimSpace(q.Remark); r != "" {
		base = base.Where("LOWER(remark) LIKE ?", likePattern(r))
	}
	if c := strings.TrimSpace(q.Category); c != "" {
		base = base.Where("LOWER(category) LIKE ?", likePattern(c))
	}

	// Unlike the list endpoint, the feed matches only the canonical label per
	// slug; "expense" additionally covers rows with a missing type.
	switch slug {
	case txtype.SlugExpense:
		base = base.Where("LOWER(type) = ? OR type IS NULL OR type = ''", "expense")
	case txtype.SlugSavings:
		base = base.Where("LOWER(type) = ?", "savings")
	case txtype.SlugEMIs:
		base = base.Where("LOWER(type) = ?", "emis")
	case txtype.SlugLoans:
		base = base.Where("LOWER(type) = ?", "loans&advance")
	case txtype.SlugOther:
		base = base.Where("LOWER(type) = ?", "other")
	case txtype.SlugAll:
		// no type restriction
	default:
		return nil, nil
	}

	var expenses []models.Expense
	if err := base.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]FeedRow, 0, len(expenses))
	for _, exp := range expenses {
		typ := exp.Type
		if typ == "" {
			typ = txtype.LabelExpense
		}
		rows = append(rows, FeedRow{
			ID:       exp.ID,
			Type:     typ,
			Date:     exp.Date,
			Amount:   exp.Amount,
			Remark:   exp.Remark,
			Category: exp.Category,
		})
	}
	return rows, nil
}

// PresentTypeSlugs lists the slugs with data for this user, prefixed with
// "all". A user with no data yet gets the full fixed list so the filter UI is
// never empty.
func (s *transactionService) PresentTypeSlugs(userID uint) ([]string, error) {
	var slugs []string

	var incomeCount int64
	if err := s.db.Model(&models.Income{}).Where("user_id = ?", userID).Count(&incomeCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if incomeCount > 0 {
		slugs = append(slugs, txtype.SlugIncome)
	}

	var storedTypes []string
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("type", &storedTypes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, slug := range txtype.ExpenseSlugs() {
		for _, label := range storedTypes {
			if txtype.SlugMatchesLabel(slug, label) {
				slugs = append(slugs, slug)
				break
			}
		}
	}

	if len(slugs) == 0 {
		slugs = append(slugs, txtype.AllSlugs...)
	}

	return append([]string{txtype.SlugAll}, slugs...), nil
}

// CategoriesForSlug returns the sorted distinct non-empty category values for
// a slug: Income.source for "income", Expense.category otherwise (restricted
// to the slug's label variants when the slug is recognized).
func (s *transactionService) CategoriesForSlug(userID uint, slug string) ([]string, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return []string{}, nil
	}

	var values []string
	if slug == txtype.SlugIncome {
		err := s.db.Model(&models.Income{}).
			Where("user_id = ? AND source <> ''", userID).
			Distinct().
			Pluck("source", &values).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	} else {
		base := s.db.Model(&models.Expense{}).Where("user_id = ? AND category <> ''", userID)
		if labels := txtype.LabelsForSlug(slug); labels != nil {
			base = base.Where("LOWER(COALESCE(type, '')) IN ?", lowered(labels))
		}
		if err := base.Distinct().Pluck("category", &values).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}
