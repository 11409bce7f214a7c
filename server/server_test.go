package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tipster/config"
	"tipster/models"
	"tipster/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "test-session-id"

type testEnv struct {
	userRepo    *service.MockUserRepository
	tipRepo     *service.MockTipRepository
	historyRepo *service.MockTipHistoryRepository
	sessionRepo *service.MockSessionRepository
	handler     http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userRepo:    new(service.MockUserRepository),
		tipRepo:     new(service.MockTipRepository),
		historyRepo: new(service.MockTipHistoryRepository),
		sessionRepo: new(service.MockSessionRepository),
	}

	cfg := &config.Config{
		SessionCookieName: "tipster_session",
		DefaultTipLimit:   50,
		MaxTipLimit:       200,
	}

	srv := New(
		cfg,
		nil,
		service.NewUserService(env.userRepo),
		service.NewTipService(env.tipRepo, env.historyRepo, cfg.DefaultTipLimit, cfg.MaxTipLimit),
		service.NewStatsService(env.userRepo, env.tipRepo, env.historyRepo),
		env.sessionRepo,
	)
	env.handler = srv.Router()
	return env
}

// authenticate stubs a live session for the given user and the upsert
// the session middleware performs on every authenticated request
func (env *testEnv) authenticate(userID string, isAdmin bool) *models.User {
	payload := []byte(fmt.Sprintf(`{"user":{"sub":%q,"email":"%s@example.com"}}`, userID, userID))
	env.sessionRepo.On("Get", mock.Anything, testSessionID).Return(&models.Session{
		SID:    testSessionID,
		Sess:   payload,
		Expire: time.Now().Add(time.Hour),
	}, nil)

	user := &models.User{
		ID:                 userID,
		IsAdmin:            isAdmin,
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionInactive,
	}
	env.userRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *models.UpsertUser) bool {
		return u.ID == userID
	})).Return(user, nil)
	return user
}

func (env *testEnv) do(t *testing.T, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if authenticated {
		req.AddCookie(&http.Cookie{Name: "tipster_session", Value: testSessionID})
	}

	recorder := httptest.NewRecorder()
	env.handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) messageResponse {
	t.Helper()
	var resp messageResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func testTip(id string) *models.Tip {
	submittedBy := "admin-1"
	return &models.Tip{
		ID:           id,
		Sport:        models.SportNBA,
		League:       "NBA",
		Matchup:      "Lakers vs Warriors",
		BetType:      "Over 220.5 Points",
		Odds:         "-110",
		Stake:        decimal.NewFromInt(100),
		Confidence:   7,
		Status:       models.TipStatusPending,
		RequiredPlan: models.PlanFree,
		IsPublic:     true,
		SubmittedBy:  &submittedBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestListTips(t *testing.T) {
	t.Run("passes query filters through", func(t *testing.T) {
		env := newTestEnv()
		env.tipRepo.On("List", mock.Anything, service.TipFilter{
			Sport: models.SportNBA,
			Limit: 5,
		}).Return([]*models.Tip{testTip("tip-1")}, nil)

		recorder := env.do(t, http.MethodGet, "/api/tips?sport=nba&limit=5", nil, false)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var tips []*models.Tip
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tips))
		require.Len(t, tips, 1)
		assert.Equal(t, "tip-1", tips[0].ID)
	})

	t.Run("empty result is a JSON array", func(t *testing.T) {
		env := newTestEnv()
		env.tipRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil)

		recorder := env.do(t, http.MethodGet, "/api/tips", nil, false)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})
}

func TestGetTip(t *testing.T) {
	t.Run("unknown tip returns 404", func(t *testing.T) {
		env := newTestEnv()
		env.tipRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		recorder := env.do(t, http.MethodGet, "/api/tips/missing", nil, false)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Tip not found", decodeMessage(t, recorder).Message)
	})
}

func TestAuthentication(t *testing.T) {
	t.Run("missing cookie returns 401", func(t *testing.T) {
		env := newTestEnv()

		recorder := env.do(t, http.MethodGet, "/api/auth/user", nil, false)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Unauthorized", decodeMessage(t, recorder).Message)
	})

	t.Run("expired session returns 401", func(t *testing.T) {
		env := newTestEnv()
		env.sessionRepo.On("Get", mock.Anything, testSessionID).Return(nil, nil)

		recorder := env.do(t, http.MethodGet, "/api/auth/user", nil, true)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("live session returns the synced user", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("user-1", false)

		recorder := env.do(t, http.MethodGet, "/api/auth/user", nil, true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
		assert.Equal(t, "user-1", user.ID)
	})
}

func TestCreateTip(t *testing.T) {
	validBody := map[string]any{
		"sport":   "nba",
		"league":  "NBA",
		"matchup": "Lakers vs Warriors",
		"betType": "Over 220.5 Points",
		"odds":    "-110",
	}

	t.Run("non-admin is rejected", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("user-1", false)

		recorder := env.do(t, http.MethodPost, "/api/tips", validBody, true)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "Only admins can create tips", decodeMessage(t, recorder).Message)
		env.tipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin creates a tip", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("admin-1", true)
		env.tipRepo.On("Create", mock.Anything, mock.Anything, "admin-1").Return(testTip("tip-1"), nil)

		recorder := env.do(t, http.MethodPost, "/api/tips", validBody, true)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var tip models.Tip
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tip))
		assert.Equal(t, "tip-1", tip.ID)
	})

	t.Run("validation failure lists the bad fields", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("admin-1", true)

		recorder := env.do(t, http.MethodPost, "/api/tips", map[string]any{"league": "NBA"}, true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeMessage(t, recorder)
		assert.Equal(t, "Invalid tip data", resp.Message)
		assert.Contains(t, resp.Errors, "sport")
		assert.Contains(t, resp.Errors, "odds")
		env.tipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateTipStatus(t *testing.T) {
	t.Run("non-admin is rejected", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("user-1", false)

		recorder := env.do(t, http.MethodPatch, "/api/tips/tip-1/status", map[string]any{"status": "won"}, true)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "Only admins can update tip status", decodeMessage(t, recorder).Message)
	})

	t.Run("unknown tip returns 404", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("admin-1", true)
		env.tipRepo.On("UpdateStatus", mock.Anything, "missing", models.TipStatusWon, (*string)(nil), decimal.NullDecimal{}).Return(nil, nil)

		recorder := env.do(t, http.MethodPatch, "/api/tips/missing/status", map[string]any{"status": "won"}, true)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Tip not found", decodeMessage(t, recorder).Message)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("admin-1", true)

		recorder := env.do(t, http.MethodPatch, "/api/tips/tip-1/status", map[string]any{"status": "settled"}, true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeMessage(t, recorder)
		assert.Equal(t, "Invalid status data", resp.Message)
		assert.Contains(t, resp.Errors, "status")
	})
}

func TestFollowTip(t *testing.T) {
	env := newTestEnv()
	env.authenticate("user-1", false)
	env.historyRepo.On("Create", mock.Anything, mock.MatchedBy(func(insert *models.InsertTipHistory) bool {
		return insert.UserID == "user-1" && insert.TipID == "tip-1"
	})).Return(&models.TipHistory{ID: "history-1", UserID: "user-1", TipID: "tip-1"}, nil)

	recorder := env.do(t, http.MethodPost, "/api/user/follow-tip", map[string]any{
		"tipId": "tip-1",
		"stake": "50.00",
	}, true)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	var entry models.TipHistory
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entry))
	assert.Equal(t, "history-1", entry.ID)
}

func TestUpdateSubscription(t *testing.T) {
	t.Run("unknown plan is a validation error", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("user-1", false)

		recorder := env.do(t, http.MethodPost, "/api/subscription/update", map[string]any{
			"plan":   "platinum",
			"status": "active",
		}, true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeMessage(t, recorder)
		assert.Equal(t, "Invalid subscription data", resp.Message)
		assert.Contains(t, resp.Errors, "plan")
	})

	t.Run("updates the caller's plan", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("user-1", false)
		env.userRepo.On("UpdateSubscription", mock.Anything, "user-1", models.PlanPro, models.SubscriptionActive, (*time.Time)(nil)).Return(&models.User{
			ID:                 "user-1",
			SubscriptionPlan:   models.PlanPro,
			SubscriptionStatus: models.SubscriptionActive,
		}, nil)

		recorder := env.do(t, http.MethodPost, "/api/subscription/update", map[string]any{
			"plan":   "pro",
			"status": "active",
		}, true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
		assert.Equal(t, models.PlanPro, user.SubscriptionPlan)
	})
}

func TestAdminTips(t *testing.T) {
	t.Run("non-admin is rejected", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("user-1", false)

		recorder := env.do(t, http.MethodGet, "/api/admin/tips", nil, true)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "Admin access required", decodeMessage(t, recorder).Message)
	})

	t.Run("lists the admin's own tips", func(t *testing.T) {
		env := newTestEnv()
		env.authenticate("admin-1", true)
		env.tipRepo.On("ListBySubmitter", mock.Anything, "admin-1").Return([]*models.Tip{testTip("tip-1")}, nil)

		recorder := env.do(t, http.MethodGet, "/api/admin/tips", nil, true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var tips []*models.Tip
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tips))
		assert.Len(t, tips, 1)
	})
}

func TestTipsterStats(t *testing.T) {
	env := newTestEnv()
	env.tipRepo.On("Count", mock.Anything).Return(12, nil)
	env.userRepo.On("Count", mock.Anything).Return(340, nil)
	env.tipRepo.On("SettledCounts", mock.Anything).Return(2, 1, nil)
	env.tipRepo.On("ListCreatedSince", mock.Anything, mock.Anything).Return(nil, nil)

	recorder := env.do(t, http.MethodGet, "/api/stats/tipster", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var stats models.TipsterStats
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	assert.Equal(t, 12, stats.TotalTips)
	assert.Equal(t, 340, stats.TotalMembers)
	assert.InDelta(t, 66.67, stats.WinRate, 0.001)
}
