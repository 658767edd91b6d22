package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fieldworks/attendance-bot-go/internal/config"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/jwt"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
	"github.com/fieldworks/attendance-bot-go/internal/repository/sheetdb"
	authService "github.com/fieldworks/attendance-bot-go/internal/service/auth"
	ledgerService "github.com/fieldworks/attendance-bot-go/internal/service/ledger"
	materialService "github.com/fieldworks/attendance-bot-go/internal/service/material"
	payrollService "github.com/fieldworks/attendance-bot-go/internal/service/payroll"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
	handlerTestPassword  = "settlement-day"
)

var handlerTestKST = time.FixedZone("KST", 9*60*60)

func newTestRouter(t *testing.T, store *rowstore.MemoryStore) (http.Handler, jwt.Service) {
	t.Helper()
	require.NoError(t, sheetdb.EnsureHeaders(context.Background(), store))

	callTimeout := 5 * time.Second
	ledgerRepo := sheetdb.NewLedgerRepository(store, callTimeout)
	rosterRepo := sheetdb.NewRosterRepository(store, callTimeout)
	incentiveRepo := sheetdb.NewIncentiveRepository(store, callTimeout)
	materialRepo := sheetdb.NewMaterialRepository(store, callTimeout)

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	authSvc := authService.NewAuthService(jwtService, string(hash))
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo, rosterRepo, handlerTestKST, "서울시 마포구 현장")
	payrollSvc := payrollService.NewPayrollService(ledgerRepo, rosterRepo, incentiveRepo)
	materialSvc := materialService.NewMaterialService(materialRepo, rosterRepo, handlerTestKST)

	cfg := &config.Config{App: config.AppConfig{Env: "test", LogLevel: "error"}}
	router := NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(authSvc),
		NewAttendanceHandler(ledgerSvc),
		NewPayrollHandler(payrollSvc, handlerTestKST),
		NewMaterialHandler(materialSvc),
	)
	return router, jwtService
}

func seedHandlerRoster(store *rowstore.MemoryStore) {
	store.Seed(sheetdb.SheetUserMaster,
		rowstore.Row{"이름", "Slack_ID", "기존근무일수", "비고1", "비고2", "주소"},
		rowstore.Row{"김철수", "U01ABCDEF", "44", "", "", "서울시 강서구"},
	)
}

func postJSON(t *testing.T, router http.Handler, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckInEndpoint(t *testing.T) {
	store := rowstore.NewMemoryStore()
	seedHandlerRoster(store)
	router, _ := newTestRouter(t, store)

	rec := postJSON(t, router, "/api/v1/attendance/check-in",
		map[string]string{"identity_key": "U01ABCDEF"}, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			WorkerName    string `json:"worker_name"`
			TotalWorkDays int    `json:"total_work_days"`
			RosterMatched bool   `json:"roster_matched"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "김철수", resp.Data.WorkerName)
	assert.Equal(t, 44, resp.Data.TotalWorkDays)
	assert.True(t, resp.Data.RosterMatched)
}

func TestCheckInEndpointValidation(t *testing.T) {
	store := rowstore.NewMemoryStore()
	seedHandlerRoster(store)
	router, _ := newTestRouter(t, store)

	rec := postJSON(t, router, "/api/v1/attendance/check-in", map[string]string{}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSettlementRequiresAdminToken(t *testing.T) {
	store := rowstore.NewMemoryStore()
	seedHandlerRoster(store)
	router, jwtService := newTestRouter(t, store)

	body := map[string]string{"period": "2026-08"}

	rec := postJSON(t, router, "/api/v1/payroll/settlement", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "no token")

	token, _, err := jwtService.GenerateAccessToken()
	require.NoError(t, err)
	rec = postJSON(t, router, "/api/v1/payroll/settlement", body, token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLoginEndpointIssuesWorkingToken(t *testing.T) {
	store := rowstore.NewMemoryStore()
	seedHandlerRoster(store)
	router, _ := newTestRouter(t, store)

	rec := postJSON(t, router, "/api/v1/auth/login",
		map[string]string{"password": handlerTestPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)

	// The issued token opens the admin-only settlement route.
	rec = postJSON(t, router, "/api/v1/payroll/settlement",
		map[string]string{"period": "2026-08"}, resp.Data.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginEndpointRejectsWrongPassword(t *testing.T) {
	store := rowstore.NewMemoryStore()
	seedHandlerRoster(store)
	router, _ := newTestRouter(t, store)

	rec := postJSON(t, router, "/api/v1/auth/login",
		map[string]string{"password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPendingOrdersEndpointRequiresAdmin(t *testing.T) {
	store := rowstore.NewMemoryStore()
	seedHandlerRoster(store)
	router, jwtService := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/pending?period=2026-08", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwtService.GenerateAccessToken()
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders/pending?period=2026-08", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
