package txtype

import "testing"

func TestLabelsForSlug(t *testing.T) {
	t.Run("expense includes legacy empty label", func(t *testing.T) {
		labels := LabelsForSlug("expense")
		found := false
		for _, l := range labels {
			if l == "" {
				found = true
			}
		}
		if !found {
			t.Error("expected empty label in expense variants")
		}
	})

	t.Run("slug lookup is case insensitive", func(t *testing.T) {
		if len(LabelsForSlug("EMIs")) == 0 {
			t.Error("expected labels for EMIs")
		}
		if len(LabelsForSlug(" savings ")) == 0 {
			t.Error("expected labels for padded savings")
		}
	})

	t.Run("unknown slugs return nil", func(t *testing.T) {
		if LabelsForSlug("bogus") != nil {
			t.Error("expected nil for unknown slug")
		}
		if LabelsForSlug("income") != nil {
			t.Error("income is not an expense slug")
		}
	})
}

func TestSlugMatchesLabel(t *testing.T) {
	cases := []struct {
		slug, label string
		want        bool
	}{
		{"expense", "Expense", true},
		{"expense", "expenses", true},
		{"expense", "", true},
		{"savings", "SAVING", true},
		{"emis", "emi", true},
		{"loans&advance", "Loans & Advance", true},
		{"loans&advance", "loan", true},
		{"other", "Other", true},
		{"savings", "Expense", false},
		{"bogus", "Expense", false},
	}
	for _, tc := range cases {
		if got := SlugMatchesLabel(tc.slug, tc.label); got != tc.want {
			t.Errorf("SlugMatchesLabel(%q, %q) = %v, want %v", tc.slug, tc.label, got, tc.want)
		}
	}
}

func TestNormalizeWrite(t *testing.T) {
	t.Run("blank type defaults to Expense", func(t *testing.T) {
		n, ok := NormalizeWrite("", "Food")
		if !ok {
			t.Fatal("expected success")
		}
		if n.Type != "Expense" || n.Category != "Food" {
			t.Errorf("got %+v", n)
		}
	})

	t.Run("other forces type and defaults category", func(t *testing.T) {
		n, ok := NormalizeWrite("other", "")
		if !ok {
			t.Fatal("expected success")
		}
		if n.Type != "Other" || n.Category != "Other" {
			t.Errorf("got %+v", n)
		}
	})

	t.Run("other keeps supplied category", func(t *testing.T) {
		n, ok := NormalizeWrite("OTHER", "Misc")
		if !ok {
			t.Fatal("expected success")
		}
		if n.Type != "Other" || n.Category != "Misc" {
			t.Errorf("got %+v", n)
		}
	})

	t.Run("recognized types require category", func(t *testing.T) {
		for _, typ := range []string{"expense", "Saving", "savings", "EMIs", "emi", "loans&advance", "Loan", "loans"} {
			if _, ok := NormalizeWrite(typ, ""); ok {
				t.Errorf("expected category requirement for type %q", typ)
			}
		}
	})

	t.Run("unrecognized type passes through without category", func(t *testing.T) {
		n, ok := NormalizeWrite("Gift", "")
		if !ok {
			t.Fatal("expected success")
		}
		if n.Type != "Gift" || n.Category != "" {
			t.Errorf("got %+v", n)
		}
	})

	t.Run("trims surrounding space", func(t *testing.T) {
		n, ok := NormalizeWrite("  Savings ", " SIP ")
		if !ok {
			t.Fatal("expected success")
		}
		if n.Type != "Savings" || n.Category != "SIP" {
			t.Errorf("got %+v", n)
		}
	})
}
