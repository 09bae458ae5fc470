package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"

	"waste-management-backend/internal/middleware"
	"waste-management-backend/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS configuration of the HTTP API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades HTTP connection to WebSocket. When authRequired is
// set the client must present a token as ?token= or a bearer header.
func HandleWebSocket(hub *Hub, jwtSecret string, authRequired bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var email string
		if authRequired {
			tokenString := r.URL.Query().Get("token")
			if tokenString == "" {
				tokenString, _ = middleware.BearerToken(r)
			}
			claims, err := middleware.ParseToken(jwtSecret, tokenString)
			if err != nil {
				utils.Logger.WithError(err).Warn("❌ Invalid websocket token")
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			email = claims.Email
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.Logger.WithError(err).Error("❌ WebSocket upgrade failed")
			return
		}

		client := NewClient(email, conn, hub)
		select {
		case hub.register <- client:
		case <-hub.stop:
			conn.Close()
			return
		}

		go client.WritePump()
		go client.ReadPump()
	}
}
