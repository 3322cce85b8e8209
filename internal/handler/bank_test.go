package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankList_Pagination(t *testing.T) {
	app := newTestApp(t)
	for i := 1; i <= 25; i++ {
		app.seedBank(fmt.Sprintf("Bank %02d", i))
	}

	status, e := app.get("/api/v1/banks/paginated?page=2&limit=10")
	require.Equal(t, http.StatusOK, status)
	res := decodeInto[listResult[models.Bank]](t, e.Data)

	assert.Len(t, res.Data, 10)
	assert.Equal(t, 2, res.Pagination.CurrentPage)
	assert.Equal(t, 10, res.Pagination.PageSize)
	assert.Equal(t, int64(25), res.Pagination.TotalRecords)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNextPage)
	assert.True(t, res.Pagination.HasPreviousPage)
	assert.Equal(t, "Bank 11", res.Data[0].BankName)

	status, e = app.get("/api/v1/banks/paginated?page=3&limit=10")
	require.Equal(t, http.StatusOK, status)
	res = decodeInto[listResult[models.Bank]](t, e.Data)
	assert.Len(t, res.Data, 5)
	assert.False(t, res.Pagination.HasNextPage)

	// limit above the cap falls back to the default page size
	status, e = app.get("/api/v1/banks/paginated?limit=1000")
	require.Equal(t, http.StatusOK, status)
	res = decodeInto[listResult[models.Bank]](t, e.Data)
	assert.Equal(t, 10, res.Pagination.PageSize)
	assert.Len(t, res.Data, 10)
}

// Unknown sort keys and orders fall back to the defaults, and the response
// echoes what was actually used.
func TestBankList_SortFallback(t *testing.T) {
	app := newTestApp(t)
	app.seedBank("Zeta")
	app.seedBank("Alpha")

	status, e := app.get("/api/v1/banks/paginated?sort_by=password_hash&sort_order=sideways")
	require.Equal(t, http.StatusOK, status)
	res := decodeInto[listResult[models.Bank]](t, e.Data)

	assert.Equal(t, "bank_name", res.SortApplied.By)
	assert.Equal(t, "asc", res.SortApplied.Order)
	assert.Equal(t, "Alpha", res.Data[0].BankName)

	status, e = app.get("/api/v1/banks/paginated?sort_by=bank_name&sort_order=desc")
	require.Equal(t, http.StatusOK, status)
	res = decodeInto[listResult[models.Bank]](t, e.Data)
	assert.Equal(t, "desc", res.SortApplied.Order)
	assert.Equal(t, "Zeta", res.Data[0].BankName)
}

func TestBankList_Search(t *testing.T) {
	app := newTestApp(t)
	app.seedBank("HDFC")
	app.seedBank("HDFC South")
	app.seedBank("ICICI")

	status, e := app.get("/api/v1/banks/paginated?search=hdfc")
	require.Equal(t, http.StatusOK, status)
	res := decodeInto[listResult[models.Bank]](t, e.Data)

	assert.Len(t, res.Data, 2)
	assert.Equal(t, "hdfc", res.SearchApplied)
	assert.Equal(t, int64(2), res.Pagination.TotalRecords)
}

func TestBankAutocomplete_Limit(t *testing.T) {
	app := newTestApp(t)
	for i := 1; i <= 8; i++ {
		app.seedBank(fmt.Sprintf("National %d", i))
	}
	app.seedBank("Other")

	status, e := app.get("/api/v1/banks/autocomplete?search=National")
	require.Equal(t, http.StatusOK, status)
	res := decodeInto[acResult](t, e.Data)
	assert.Len(t, res.Data, 5, "default autocomplete limit")
	assert.Equal(t, 5, res.ResultCount)
	assert.Equal(t, 5, res.LimitApplied)
	assert.Equal(t, "National", res.SearchQuery)

	status, e = app.get("/api/v1/banks/autocomplete?search=National&limit=2")
	require.Equal(t, http.StatusOK, status)
	res = decodeInto[acResult](t, e.Data)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 2, res.LimitApplied)
}

func TestBank_CRUD(t *testing.T) {
	app := newTestApp(t)

	status, e := app.request(http.MethodPost, "/api/v1/banks", gin.H{
		"bank_name": "HDFC", "account_number": "111222", "branch": "Main",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bank created", e.Message)
	bank := decodeInto[models.Bank](t, e.Data)
	assert.NotZero(t, bank.ID)
	assert.NotEmpty(t, bank.CreateDate)
	assert.Nil(t, bank.ModifyDate, "modify stamps stay empty until the first update")

	status, e = app.request(http.MethodPut, "/api/v1/banks", gin.H{
		"id": bank.ID, "bank_name": "HDFC Renamed",
	})
	require.Equal(t, http.StatusOK, status)
	updated := decodeInto[models.Bank](t, e.Data)
	assert.Equal(t, "HDFC Renamed", updated.BankName)
	require.NotNil(t, updated.ModifyDate)
	assert.Equal(t, bank.CreateDate, updated.CreateDate)

	status, _ = app.request(http.MethodPut, "/api/v1/banks", gin.H{
		"id": 9999, "bank_name": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = app.request(http.MethodDelete, "/api/v1/banks", gin.H{"id": bank.ID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), app.count(&models.Bank{}, ""))
}

func TestBank_DeleteCascades(t *testing.T) {
	app := newTestApp(t)
	bank := app.seedBank("Doomed")
	other := app.seedBank("Kept")
	cl := app.seedClient("Smith")
	app.seedTx(cl, models.TypeWithdraw, "50", "2026-01-10", uintPtr(bank.ID))
	app.seedTx(cl, models.TypeWithdraw, "60", "2026-01-11", uintPtr(other.ID))

	profile := app.seedProfile("Smith savings", uintPtr(cl.ID))
	require.NoError(t, app.db.Model(&models.Profile{}).
		Where("id = ?", profile.ID).Update("bank_id", bank.ID).Error)

	status, _ := app.request(http.MethodDelete, "/api/v1/banks", gin.H{"id": bank.ID})
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, int64(0), app.count(&models.Transaction{}, "bank_id = ?", bank.ID))
	assert.Equal(t, int64(1), app.count(&models.Transaction{}, "bank_id = ?", other.ID))

	var kept models.Profile
	require.NoError(t, app.db.First(&kept, profile.ID).Error)
	assert.Nil(t, kept.BankID, "profiles survive with the bank reference cleared")
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	app := newTestApp(t)
	token := app.token
	app.token = ""

	status, e := app.get("/api/v1/banks/paginated")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, e.Success)

	status, _ = app.get("/api/v1/banks/paginated?token=garbage")
	assert.Equal(t, http.StatusUnauthorized, status)

	// ?token= fallback for header-less downloads
	status, _ = app.get("/api/v1/banks/paginated?token=" + token)
	assert.Equal(t, http.StatusOK, status)
}
