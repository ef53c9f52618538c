package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/internal/api/middleware"
	"versus-arena.io/arena/internal/domain"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/identity"
	"versus-arena.io/arena/internal/moderation"
	"versus-arena.io/arena/internal/notification"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/pkg/worker"
	"versus-arena.io/arena/internal/service"
	"versus-arena.io/arena/internal/settings"
	"versus-arena.io/arena/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

var behaviorJWTCfg = middleware.JWTConfig{
	SigningKey: []byte("behavior-test-signing-key"),
	Issuer:     "versus-arena-test",
	ExpiresIn:  time.Hour,
}

// apiHarness is the HTTP surface wired end to end against an isolated
// schema, minus River (job-triggering endpoints are covered elsewhere).
type apiHarness struct {
	router *gin.Engine
	client *ent.Client
	store  *settings.Store
}

func newAPIHarness(t *testing.T, prefix string) *apiHarness {
	t.Helper()

	client, pool := testutil.OpenEntWithPool(t, prefix)

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	alerts := monitor.NewService(client, time.Hour)
	auditLogger := audit.NewLogger(client, alerts, pools)
	store := settings.NewStore(client)
	oracle := identity.NewEntOracle(client)
	limiter := ratelimit.NewLimiter(pool, client, store, alerts)

	dispatcher := domain.NewEventDispatcher()
	notification.NewTriggers(notification.NewInboxSender(client)).RegisterHandlers(dispatcher)

	engine := moderation.NewEngine(client, auditLogger, alerts)

	server := NewServer(ServerDeps{
		EntClient:  client,
		Pool:       pool,
		JWTCfg:     behaviorJWTCfg,
		Audit:      auditLogger,
		Battles:    service.NewBattleService(client, limiter, oracle, oracle, auditLogger, alerts, store, dispatcher),
		Votes:      service.NewVoteService(client, limiter, oracle, auditLogger),
		Comments:   service.NewCommentService(client, limiter, oracle, auditLogger, engine, dispatcher),
		Moderation: engine,
		Alerts:     alerts,
		Settings:   store,
	})

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", server.Login)
	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	auth := v1.Group("")
	auth.Use(middleware.JWTAuth(behaviorJWTCfg.SigningKey))
	{
		auth.GET("/auth/me", server.GetCurrentUser)
		auth.POST("/auth/change-password", server.ChangePassword)
		auth.POST("/battles", server.ProposeBattle)
		auth.GET("/battles", server.ListBattles)
		auth.GET("/battles/:battle_id", server.GetBattle)
		auth.POST("/battles/:battle_id/respond", server.RespondBattle)
		auth.POST("/battles/:battle_id/votes", server.CastVote)
		auth.GET("/battles/:battle_id/votes/count", server.CountVotes)
		auth.POST("/battles/:battle_id/comments", server.CreateComment)
		auth.GET("/battles/:battle_id/comments", server.ListComments)
		auth.GET("/notifications", server.ListNotifications)
		auth.GET("/notifications/unread-count", server.GetUnreadCount)
		auth.POST("/notifications/read-all", server.MarkAllNotificationsRead)
	}

	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/battles/:battle_id/validate", server.ValidateBattle)
		admin.POST("/battles/:battle_id/finalize", server.FinalizeBattle)
		admin.GET("/audit-entries", server.ListAuditEntries)
		admin.GET("/settings/:key", server.GetSetting)
		admin.PUT("/settings/:key", server.PutSetting)
	}

	return &apiHarness{router: router, client: client, store: store}
}

func (h *apiHarness) seedUser(t *testing.T, id string, role user.Role, verified bool, password string) {
	t.Helper()
	create := h.client.User.Create().
		SetID(id).
		SetUsername(id).
		SetEmail(id + "@example.com").
		SetEmailVerified(verified).
		SetRole(role)
	if password != "" {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		create.SetPasswordHash(hash)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func (h *apiHarness) seedSubmission(t *testing.T, id, ownerID string) {
	t.Helper()
	_, err := h.client.Submission.Create().
		SetID(id).
		SetOwnerID(ownerID).
		SetTitle("work " + id).
		Save(context.Background())
	require.NoError(t, err)
}

func token(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	tok, _, err := middleware.GenerateToken(behaviorJWTCfg, userID, userID, role.String())
	require.NoError(t, err)
	return tok
}

func (h *apiHarness) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAuthEndpoints_LoginAndMe(t *testing.T) {
	t.Parallel()

	h := newAPIHarness(t, "api_auth")
	h.seedUser(t, "user-login", user.RoleUSER, true, "original-secret")

	w := h.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "user-login",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "user-login",
		"password": "original-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)

	w = h.do(t, http.MethodGet, "/api/v1/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeJSON(t, w)
	assert.Equal(t, "user-login", me["username"])
	assert.Equal(t, "USER", me["role"])

	w = h.do(t, http.MethodPost, "/api/v1/auth/change-password", tok, gin.H{
		"old_password": "original-secret",
		"new_password": "a-longer-new-secret",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "user-login",
		"password": "a-longer-new-secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBattleEndpoints_FullFlow(t *testing.T) {
	t.Parallel()

	h := newAPIHarness(t, "api_battle_flow")
	h.seedUser(t, "user-a", user.RoleUSER, true, "")
	h.seedUser(t, "user-b", user.RoleUSER, true, "")
	h.seedUser(t, "user-admin", user.RoleADMIN, true, "")
	h.seedUser(t, "voter-1", user.RoleUSER, true, "")
	h.seedSubmission(t, "sub-a", "user-a")
	h.seedSubmission(t, "sub-b", "user-b")

	tokenA := token(t, "user-a", user.RoleUSER)
	tokenB := token(t, "user-b", user.RoleUSER)
	tokenAdmin := token(t, "user-admin", user.RoleADMIN)
	tokenVoter := token(t, "voter-1", user.RoleUSER)

	// Unauthenticated requests never reach the handlers.
	w := h.do(t, http.MethodPost, "/api/v1/battles", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/battles", tokenA, gin.H{
		"opponent_id":  "user-b",
		"submission_a": "sub-a",
		"submission_b": "sub-b",
	})
	require.Equal(t, http.StatusCreated, w.Code, "propose: %s", w.Body.String())
	battleID, _ := decodeJSON(t, w)["id"].(string)
	require.NotEmpty(t, battleID)

	// The proposal landed in the opponent's inbox.
	w = h.do(t, http.MethodGet, "/api/v1/notifications/unread-count", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeJSON(t, w)["count"])

	w = h.do(t, http.MethodPost, "/api/v1/battles/"+battleID+"/respond", tokenB, gin.H{"accept": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AWAITING_ADMIN", decodeJSON(t, w)["status"])

	// The admin route group rejects regular users before the handler runs.
	w = h.do(t, http.MethodPost, "/api/v1/admin/battles/"+battleID+"/validate", tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/admin/battles/"+battleID+"/validate", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code, "validate: %s", w.Body.String())
	validated := decodeJSON(t, w)
	assert.Equal(t, "ACTIVE", validated["status"])
	assert.NotEmpty(t, validated["voting_ends_at"])

	w = h.do(t, http.MethodPost, "/api/v1/battles/"+battleID+"/votes", tokenVoter, gin.H{
		"voter_id":              "voter-1",
		"target_participant_id": "user-a",
	})
	require.Equal(t, http.StatusCreated, w.Code, "vote: %s", w.Body.String())

	// Domain failures surface as coded JSON through the error handler.
	w = h.do(t, http.MethodPost, "/api/v1/battles/"+battleID+"/votes", tokenVoter, gin.H{
		"voter_id":              "voter-1",
		"target_participant_id": "user-b",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already_voted", decodeJSON(t, w)["code"])

	w = h.do(t, http.MethodGet, "/api/v1/battles/"+battleID+"/votes/count", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeJSON(t, w)["count"])

	w = h.do(t, http.MethodPost, "/api/v1/admin/battles/"+battleID+"/finalize", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	finalized := decodeJSON(t, w)
	assert.Equal(t, "COMPLETED", finalized["status"])
	assert.Equal(t, "user-a", finalized["winner"])

	w = h.do(t, http.MethodGet, "/api/v1/battles/"+battleID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "COMPLETED", decodeJSON(t, w)["status"])

	w = h.do(t, http.MethodGet, "/api/v1/battles/battle-missing", tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "battle_not_found", decodeJSON(t, w)["code"])

	// Every lifecycle step above left an audit trail readable by admins.
	w = h.do(t, http.MethodGet, "/api/v1/admin/audit-entries?actor=user-admin&success=true", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decodeJSON(t, w)["items"].([]interface{})
	require.NotEmpty(t, entries)
	actions := make(map[string]bool)
	for _, e := range entries {
		actions[e.(map[string]interface{})["action"].(string)] = true
	}
	assert.True(t, actions["battle.admin_validate"])
	assert.True(t, actions["battle.finalize"])
}

func TestCommentEndpoints_HiddenTombstones(t *testing.T) {
	t.Parallel()

	h := newAPIHarness(t, "api_comments")
	h.seedUser(t, "user-a", user.RoleUSER, true, "")
	h.seedUser(t, "user-b", user.RoleUSER, true, "")
	h.seedUser(t, "user-admin", user.RoleADMIN, true, "")
	h.seedUser(t, "voter-1", user.RoleUSER, true, "")
	h.seedSubmission(t, "sub-a", "user-a")

	tokenAuthor := token(t, "voter-1", user.RoleUSER)
	tokenOther := token(t, "user-a", user.RoleUSER)
	tokenAdmin := token(t, "user-admin", user.RoleADMIN)

	w := h.do(t, http.MethodPost, "/api/v1/battles", tokenOther, gin.H{
		"opponent_id":  "user-b",
		"submission_a": "sub-a",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	battleID, _ := decodeJSON(t, w)["id"].(string)

	w = h.do(t, http.MethodPost, "/api/v1/battles/"+battleID+"/comments", tokenAuthor, gin.H{
		"body": "buy now, promo code ARENA at https://spam.example",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON(t, w)
	assert.Equal(t, false, created["visible"])
	assert.NotEmpty(t, created["body"], "the author sees their own hidden body")

	listBodies := func(bearer string) []map[string]interface{} {
		w := h.do(t, http.MethodGet, "/api/v1/battles/"+battleID+"/comments", bearer, nil)
		require.Equal(t, http.StatusOK, w.Code)
		raw := decodeJSON(t, w)["items"].([]interface{})
		items := make([]map[string]interface{}, 0, len(raw))
		for _, it := range raw {
			items = append(items, it.(map[string]interface{}))
		}
		return items
	}

	// Bystanders get a tombstone, the author and admins get the body.
	items := listBodies(tokenOther)
	require.Len(t, items, 1)
	assert.Equal(t, false, items[0]["visible"])
	assert.Nil(t, items[0]["body"])

	items = listBodies(tokenAuthor)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0]["body"])

	items = listBodies(tokenAdmin)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0]["body"])
}

func TestAdminSettingsEndpoints(t *testing.T) {
	t.Parallel()

	h := newAPIHarness(t, "api_settings")
	h.seedUser(t, "user-admin", user.RoleADMIN, true, "")
	tokenAdmin := token(t, "user-admin", user.RoleADMIN)

	w := h.do(t, http.MethodGet, "/api/v1/admin/settings/voting.default_duration", tokenAdmin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/admin/settings/voting.default_duration", tokenAdmin, gin.H{
		"body": gin.H{"days": 7},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeJSON(t, w)["version"])

	w = h.do(t, http.MethodPut, "/api/v1/admin/settings/voting.default_duration", tokenAdmin, gin.H{
		"body": gin.H{"days": 9},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeJSON(t, w)["version"])

	w = h.do(t, http.MethodGet, "/api/v1/admin/settings/voting.default_duration", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON(t, w)
	assert.Equal(t, float64(2), got["version"])
	assert.Equal(t, float64(9), got["body"].(map[string]interface{})["days"])
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	h := newAPIHarness(t, "api_health")

	w := h.do(t, http.MethodGet, "/api/v1/health/live", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeJSON(t, w)["status"])
}
