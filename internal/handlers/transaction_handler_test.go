package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Smitap11/taxables-backend/internal/models"
	"github.com/Smitap11/taxables-backend/internal/pagination"
	"github.com/Smitap11/taxables-backend/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	feedFn              func(userID uint, q services.FeedQuery) (*pagination.ListResponse[services.FeedRow], error)
	presentTypeSlugsFn  func(userID uint) ([]string, error)
	categoriesForSlugFn func(userID uint, slug string) ([]string, error)
}

func (m *mockTransactionService) Feed(userID uint, q services.FeedQuery) (*pagination.ListResponse[services.FeedRow], error) {
	if m.feedFn != nil {
		return m.feedFn(userID, q)
	}
	resp := pagination.NewListResponse([]services.FeedRow{}, 0)
	return &resp, nil
}

func (m *mockTransactionService) PresentTypeSlugs(userID uint) ([]string, error) {
	if m.presentTypeSlugsFn != nil {
		return m.presentTypeSlugsFn(userID)
	}
	return []string{"all"}, nil
}

func (m *mockTransactionService) CategoriesForSlug(userID uint, slug string) ([]string, error) {
	if m.categoriesForSlugFn != nil {
		return m.categoriesForSlugFn(userID, slug)
	}
	return []string{}, nil
}

// verify interface compliance
var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/transactions", handler.Feed)
	auth.GET("/filters/types", handler.FilterTypes)
	auth.GET("/filters/categories", handler.FilterCategories)
	return r
}

func TestTransactionHandler_Feed(t *testing.T) {
	t.Run("returns the merged feed", func(t *testing.T) {
		txSvc := &mockTransactionService{
			feedFn: func(userID uint, _ services.FeedQuery) (*pagination.ListResponse[services.FeedRow], error) {
				resp := pagination.NewListResponse([]services.FeedRow{
					{ID: 1, Type: "Income", Date: models.NewDate(2024, 6, 5), Amount: decimal.NewFromInt(1000), Category: "Salary"},
					{ID: 2, Type: "Expense", Date: models.NewDate(2024, 6, 3), Amount: decimal.NewFromInt(40), Category: "Food"},
				}, 2)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", result["count"])
		}
		rows := result["results"].([]interface{})
		first := rows[0].(map[string]interface{})
		if first["type"] != "Income" || first["date"] != "2024-06-05" {
			t.Errorf("unexpected first row: %v", first)
		}
	})

	t.Run("type defaults to all", func(t *testing.T) {
		var gotQuery services.FeedQuery
		txSvc := &mockTransactionService{
			feedFn: func(_ uint, q services.FeedQuery) (*pagination.ListResponse[services.FeedRow], error) {
				gotQuery = q
				resp := pagination.NewListResponse([]services.FeedRow{}, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		doRequest(r, "GET", "/transactions", "")
		if gotQuery.TypeSlug != "all" {
			t.Errorf("expected default slug all, got %q", gotQuery.TypeSlug)
		}

		doRequest(r, "GET", "/transactions?type=savings&from=2024-06-01", "")
		if gotQuery.TypeSlug != "savings" {
			t.Errorf("expected slug savings, got %q", gotQuery.TypeSlug)
		}
		if gotQuery.From == nil || gotQuery.From.String() != "2024-06-01" {
			t.Errorf("expected from 2024-06-01, got %v", gotQuery.From)
		}
	})
}

func TestTransactionHandler_Filters(t *testing.T) {
	t.Run("types endpoint returns the slug list", func(t *testing.T) {
		txSvc := &mockTransactionService{
			presentTypeSlugsFn: func(_ uint) ([]string, error) {
				return []string{"all", "income", "expense"}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/filters/types", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != `["all","income","expense"]` {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("categories endpoint passes the slug through", func(t *testing.T) {
		var gotSlug string
		txSvc := &mockTransactionService{
			categoriesForSlugFn: func(_ uint, slug string) ([]string, error) {
				gotSlug = slug
				return []string{"Food", "Rent"}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/filters/categories?type=expense", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotSlug != "expense" {
			t.Errorf("expected slug expense, got %q", gotSlug)
		}
		if rec.Body.String() != `["Food","Rent"]` {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})
}
