package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Smitap11/taxables-backend/internal/models"
)

// likePattern builds the argument for a case-insensitive substring match.
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// lowered returns the lowercased copy of each label.
func lowered(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = strings.ToLower(l)
	}
	return out
}

// applyDateRange adds inclusive date bounds when present.
func applyDateRange(q *gorm.DB, from, to *models.Date) *gorm.DB {
	if from != nil {
		q = q.Where("date >= ?", from.Time)
	}
	if to != nil {
		q = q.Where("date <= ?", to.Time)
	}
	return q
}

// applyAmountRange adds inclusive amount bounds when present.
func applyAmountRange(q *gorm.DB, min, max *decimal.Decimal) *gorm.DB {
	if min != nil {
		q = q.Where("amount >= ?", min)
	}
	if max != nil {
		q = q.Where("amount <= ?", max)
	}
	return q
}
