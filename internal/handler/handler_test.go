package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/database"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/handler"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/models"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Test harness: a real router over a throwaway SQLite file, with one
// registered user whose token authenticates every request.

type env struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type listResult[T any] struct {
	Data           []T                    `json:"data"`
	Pagination     handler.Pagination     `json:"pagination"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
	SearchApplied  string                 `json:"search_applied"`
	SortApplied    handler.SortParams     `json:"sort_applied"`
}

type acResult struct {
	Data         []handler.Suggestion `json:"data"`
	SearchQuery  string               `json:"search_query"`
	ResultCount  int                  `json:"result_count"`
	LimitApplied int                  `json:"limit_applied"`
}

type testApp struct {
	t     *testing.T
	srv   *httptest.Server
	db    *gorm.DB
	token string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		JWT: config.JWTConfig{
			Secret:      "handler-test-secret",
			Issuer:      "finbook-test",
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
		App: config.AppSubConfig{
			PageSize:          10,
			MaxPageSize:       100,
			AutocompleteLimit: 5,
			AutocompleteMax:   25,
		},
	}

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "finbook.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	srv := httptest.NewServer(router.SetupRouter(cfg, db))
	t.Cleanup(srv.Close)

	app := &testApp{t: t, srv: srv, db: db}

	status, _ := app.request(http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "admin", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)

	status, e := app.request(http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &out))
	require.NotEmpty(t, out.Token)
	app.token = out.Token

	return app
}

func (a *testApp) request(method, path string, body interface{}) (int, env) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.srv.URL+path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)

	var e env
	require.NoError(a.t, json.Unmarshal(raw, &e), "body: %s", raw)
	return resp.StatusCode, e
}

func (a *testApp) get(path string) (int, env) {
	return a.request(http.MethodGet, path, nil)
}

// raw issues a request without decoding the body; used for file downloads.
func (a *testApp) raw(method, path string) (*http.Response, []byte) {
	a.t.Helper()

	req, err := http.NewRequest(method, a.srv.URL+path, nil)
	require.NoError(a.t, err)
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp, body
}

func decodeInto[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ---------- seeding ----------

func (a *testApp) seedBank(name string) models.Bank {
	b := models.Bank{BankName: name}
	b.Stamp(time.Now())
	require.NoError(a.t, a.db.Create(&b).Error)
	return b
}

func (a *testApp) seedClient(name string) models.Client {
	c := models.Client{ClientName: name}
	c.Stamp(time.Now())
	require.NoError(a.t, a.db.Create(&c).Error)
	return c
}

func (a *testApp) seedCard(name string) models.Card {
	c := models.Card{CardName: name}
	c.Stamp(time.Now())
	require.NoError(a.t, a.db.Create(&c).Error)
	return c
}

// seedTx inserts a transaction directly, with an explicit create_date so
// date-range filters have something deterministic to bite on.
func (a *testApp) seedTx(client models.Client, txType int, amount, date string, bankID *uint) models.Transaction {
	tx := models.Transaction{
		ClientID:          client.ID,
		ClientName:        client.ClientName,
		TransactionType:   txType,
		TransactionAmount: decimal.RequireFromString(amount),
		BankID:            bankID,
	}
	tx.CreateDate = date
	tx.CreateTime = "12:00:00"
	require.NoError(a.t, a.db.Create(&tx).Error)
	return tx
}

func (a *testApp) seedProfile(name string, clientID *uint) models.Profile {
	p := models.Profile{ProfileName: name, ClientID: clientID, Balance: decimal.Zero}
	p.Stamp(time.Now())
	require.NoError(a.t, a.db.Create(&p).Error)
	return p
}

func uintPtr(n uint) *uint { return &n }

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func (a *testApp) profileBalance(id uint) decimal.Decimal {
	a.t.Helper()
	var p models.Profile
	require.NoError(a.t, a.db.First(&p, id).Error)
	return p.Balance
}

func (a *testApp) count(model interface{}, query string, args ...interface{}) int64 {
	a.t.Helper()
	var n int64
	q := a.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(a.t, q.Count(&n).Error)
	return n
}
