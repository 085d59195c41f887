package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-splendor/controller"
	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/repository"
	"go-splendor/router"
	"go-splendor/service"
	"go-splendor/ws"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := service.NewManager(repository.NewMemoryStore(), nil, nil, zap.NewNop(), 1)
	hub := ws.NewHub(m, zap.NewNop())
	ctl := controller.New(m, hub, zap.NewNop())
	r := gin.New()
	router.InitRouter(r, ctl, hub)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeGameResponse(t *testing.T, w *httptest.ResponseRecorder) dto.GameResponse {
	t.Helper()
	var resp dto.GameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
	return resp
}

func TestCreateJoinAndActFlow(t *testing.T) {
	r := newTestServer()

	w := doJSON(t, r, http.MethodPost, "/api/games", "", gin.H{"playerName": "alice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	created := decodeGameResponse(t, w)
	if created.AccessToken == "" || created.PlayerID == "" {
		t.Fatalf("missing identity in response: %+v", created)
	}
	gameID := created.Game.ID

	w = doJSON(t, r, http.MethodPost, "/api/games/"+gameID+"/join", "", gin.H{"playerName": "bob"})
	if w.Code != http.StatusOK {
		t.Fatalf("join status = %d, body = %s", w.Code, w.Body.String())
	}
	joined := decodeGameResponse(t, w)

	// 建房者先手
	path := fmt.Sprintf("/api/games/%s/actions/take-tokens", gameID)
	w = doJSON(t, r, http.MethodPost, path, created.AccessToken, gin.H{
		"gems": gin.H{"diamond": 1, "sapphire": 1, "emerald": 1},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("take status = %d, body = %s", w.Code, w.Body.String())
	}

	// 非当前回合玩家提交 → 403
	w = doJSON(t, r, http.MethodPost, path, created.AccessToken, gin.H{
		"gems": gin.H{"ruby": 1, "onyx": 1, "diamond": 1},
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("out-of-turn status = %d, want 403", w.Code)
	}

	// 非法形状 → 400
	w = doJSON(t, r, http.MethodPost, path, joined.AccessToken, gin.H{
		"gems": gin.H{"gold": 1},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid shape status = %d, want 400", w.Code)
	}

	// 没带令牌 → 401
	w = doJSON(t, r, http.MethodPost, path, "", gin.H{
		"gems": gin.H{"ruby": 1, "onyx": 1, "diamond": 1},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", w.Code)
	}
}

func TestGetAndListGames(t *testing.T) {
	r := newTestServer()

	w := doJSON(t, r, http.MethodPost, "/api/games", "", gin.H{"playerName": "alice"})
	created := decodeGameResponse(t, w)

	w = doJSON(t, r, http.MethodGet, "/api/games/"+created.Game.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/games/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get missing status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/games", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listResp dto.ListGamesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatal(err)
	}
	if len(listResp.Rooms) != 1 || listResp.Rooms[0].GameID != created.Game.ID {
		t.Fatalf("rooms = %+v", listResp.Rooms)
	}
}

func TestLeaveGameRequiresToken(t *testing.T) {
	r := newTestServer()

	w := doJSON(t, r, http.MethodPost, "/api/games", "", gin.H{"playerName": "alice"})
	created := decodeGameResponse(t, w)
	path := "/api/games/" + created.Game.ID + "/leave"

	if w := doJSON(t, r, http.MethodPost, path, "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, path, created.AccessToken, nil); w.Code != http.StatusOK {
		t.Fatalf("leave status = %d, body = %s", w.Code, w.Body.String())
	}
	// 最后一人离开后对局销毁
	if w := doJSON(t, r, http.MethodGet, "/api/games/"+created.Game.ID, "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("get after leave status = %d, want 404", w.Code)
	}
}

func TestCreateGameValidation(t *testing.T) {
	r := newTestServer()

	if w := doJSON(t, r, http.MethodPost, "/api/games", "", gin.H{}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing playerName status = %d, want 400", w.Code)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{engine.ErrNotFound, http.StatusNotFound},
		{engine.ErrOutOfTurn, http.StatusForbidden},
		{engine.ErrGameNotActive, http.StatusConflict},
		{service.ErrGameFull, http.StatusConflict},
		{engine.ErrInvalidSelection, http.StatusBadRequest},
		{engine.ErrInsufficientGems, http.StatusBadRequest},
		{engine.ErrReserveLimit, http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := controller.StatusOf(tt.err); got != tt.want {
			t.Fatalf("statusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
