package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/epeers/fundmanager/internal/fundapi"
	"github.com/epeers/fundmanager/internal/fundapi/fundapitest"
	"github.com/epeers/fundmanager/internal/handlers"
	"github.com/epeers/fundmanager/internal/models"
	"github.com/epeers/fundmanager/internal/services"
	"github.com/epeers/fundmanager/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func twoFunds() []models.Fund {
	return []models.Fund{
		{FundID: 1, FundName: "Alpha Equity", Category: models.CategoryEquity, RiskLevel: models.RiskHigh, AUM: ptr(1000), ExpenseRatio: ptr(0.012), NAV: ptr(12.5), LaunchDate: "2018-04-01", Description: "large cap"},
		{FundID: 2, FundName: "Beta Debt", Category: models.CategoryDebt, RiskLevel: models.RiskLow},
	}
}

// startScreen builds the router the way main does, including the one
// startup fetch of the fund list.
func startScreen(t *testing.T, funds ...models.Fund) (*gin.Engine, *fundapitest.Backend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := fundapitest.NewBackend(funds...)
	t.Cleanup(backend.Close)

	manager := services.NewFundManager(fundapi.NewClient(backend.URL), state.NewStore())
	manager.Refresh(context.Background())

	return handlers.NewRouter(manager), backend
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code, "POST %s", path)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func render(t *testing.T, router *gin.Engine) *goquery.Document {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
