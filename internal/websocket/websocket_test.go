package websocket_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-backend/internal/middleware"
	"waste-management-backend/internal/models"
	"waste-management-backend/internal/websocket"
)

func startHub(t *testing.T) *websocket.Hub {
	hub := websocket.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func dial(t *testing.T, srv *httptest.Server, query string) (*gorilla.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	return gorilla.DefaultDialer.Dial(url, nil)
}

func TestBroadcastReachesConnectedClient(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(websocket.HandleWebSocket(hub, "", false))
	defer srv.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.GetClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastAll(models.NewEntityEvent("bills", "updated", 5))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"entity_changed","data":{"entity":"bills","action":"updated","id":5}}`, string(msg))
}

func TestClientPingGetsPong(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(websocket.HandleWebSocket(hub, "", false))
	defer srv.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte(`{"type":"ping"}`)))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var reply map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &reply))
	assert.Equal(t, "pong", reply["type"])
}

func TestDisconnectUnregisters(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(websocket.HandleWebSocket(hub, "", false))
	defer srv.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.GetClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.GetClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestTokenRequiredWhenAuthIsOn(t *testing.T) {
	const secret = "ws-secret"
	hub := startHub(t)
	srv := httptest.NewServer(websocket.HandleWebSocket(hub, secret, true))
	defer srv.Close()

	_, resp, err := dial(t, srv, "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := middleware.IssueToken(secret, &models.User{ID: "u-1", Email: "admin@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	conn, _, err := dial(t, srv, "?token="+token)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.GetClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}
