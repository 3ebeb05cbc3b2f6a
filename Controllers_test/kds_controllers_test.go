package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/grubdash/controllers"
	"github.com/yeremiapane/grubdash/kds"
	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/repository"
)

func TestKDSHandlerStreamsOrderEvents(t *testing.T) {
	hub := kds.NewHub()
	orderCtrl := controllers.NewOrderController(repository.NewOrderMemoryStore(), sequentialIDs("order"), hub)

	r := gin.New()
	r.GET("/kds/ws", controllers.KDSHandler(hub))
	r.POST("/orders", orderCtrl.CreateOrder)

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/kds/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	w := performRequest(r, http.MethodPost, "/orders", wrap(newOrderBody()))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event string       `json:"event"`
		Data  models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, kds.EventOrderCreated, msg.Event)
	assert.Equal(t, "order-1", msg.Data.ID)
	assert.Equal(t, "A", msg.Data.DeliverTo)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestKDSHandlerRejectsPlainHTTP(t *testing.T) {
	hub := kds.NewHub()
	r := gin.New()
	r.GET("/kds/ws", controllers.KDSHandler(hub))

	w := performRequest(r, http.MethodGet, "/kds/ws", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, hub.Count())
}
