package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/grubdash/kds"
	"github.com/yeremiapane/grubdash/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KDSHandler -> GET /kds/ws, streams order events until the client leaves.
func KDSHandler(hub *kds.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.InfoLogger.WithError(err).Info("kds: upgrade failed")
			return
		}

		hub.Register(ws)

		// Clients only listen; reading detects the disconnect.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unregister(ws)
	}
}
