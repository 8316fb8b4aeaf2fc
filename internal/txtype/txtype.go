// Package txtype maps user-facing transaction type slugs to the stored
// Expense.type label variants, and normalizes type/category pairs on write.
package txtype

import "strings"

// Canonical slugs understood by clients.
const (
	SlugAll     = "all"
	SlugIncome  = "income"
	SlugExpense = "expense"
	SlugSavings = "savings"
	SlugEMIs    = "emis"
	SlugLoans   = "loans&advance"
	SlugOther   = "other"
)

// Display labels written for normalized types.
const (
	LabelExpense = "Expense"
	LabelOther   = "Other"
)

// slugLabels maps each expense slug to the stored label variants it covers.
// The empty string under "expense" matches legacy rows created before the
// type column existed. Static configuration, never mutated.
var slugLabels = map[string][]string{
	SlugExpense: {"Expense", "Expenses", ""},
	SlugSavings: {"Savings", "Saving"},
	SlugEMIs:    {"EMIs", "EMI"},
	SlugLoans:   {"Loans&Advance", "Loans & Advance", "Loan", "Loans"},
	SlugOther:   {"Other"},
}

// AllSlugs is the fixed slug list, in display order, excluding "all".
var AllSlugs = []string{SlugIncome, SlugExpense, SlugSavings, SlugEMIs, SlugLoans, SlugOther}

// expenseSlugs is AllSlugs minus "income", i.e. the slugs backed by Expense rows.
var expenseSlugs = []string{SlugExpense, SlugSavings, SlugEMIs, SlugLoans, SlugOther}

// typesRequiringCategory are the normalized type spellings for which a
// category must be supplied on write.
var typesRequiringCategory = map[string]bool{
	"expense": true, "saving": true, "savings": true,
	"emis": true, "emi": true,
	"loans&advance": true, "loan": true, "loans": true,
}

// LabelsForSlug returns the Expense.type label variants for a slug, or nil
// for "income", "all", and unknown slugs.
func LabelsForSlug(slug string) []string {
	return slugLabels[strings.ToLower(strings.TrimSpace(slug))]
}

// IsExpenseSlug reports whether slug names an Expense-backed type group.
func IsExpenseSlug(slug string) bool {
	_, ok := slugLabels[strings.ToLower(strings.TrimSpace(slug))]
	return ok
}

// ExpenseSlugs returns the Expense-backed slugs in display order.
func ExpenseSlugs() []string {
	return expenseSlugs
}

// SlugMatchesLabel reports whether a stored type label belongs to the slug's
// variant set. Comparison is case-insensitive; surrounding space is ignored.
func SlugMatchesLabel(slug, label string) bool {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, l := range LabelsForSlug(slug) {
		if strings.ToLower(l) == label {
			return true
		}
	}
	return false
}

// Normalized is the result of write-time type/category normalization.
type Normalized struct {
	Type     string
	Category string
}

// NormalizeWrite applies the write-time rules for Expense.type and
// Expense.category:
//
//   - blank type defaults to "Expense"
//   - a type spelling of "other" becomes "Other" and the category defaults
//     to "Other" when blank
//   - recognized type spellings require a category
//   - unrecognized types pass through unchanged with no category requirement
//
// The second return value reports whether the category requirement was
// violated; callers turn that into a field-keyed validation error.
func NormalizeWrite(rawType, rawCategory string) (Normalized, bool) {
	t := strings.TrimSpace(rawType)
	if t == "" {
		t = LabelExpense
	}
	c := strings.TrimSpace(rawCategory)

	if strings.ToLower(t) == "other" {
		if c == "" {
			c = LabelOther
		}
		return Normalized{Type: LabelOther, Category: c}, true
	}

	if typesRequiringCategory[strings.ToLower(t)] && c == "" {
		return Normalized{}, false
	}

	return Normalized{Type: t, Category: c}, true
}
