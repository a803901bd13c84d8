package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

func newUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		// доступ уже проверен API ключом
		CheckOrigin: func(r *http.Request) bool { return true },
	}
}

// @Summary Stream alert snapshots
// @Description Websocket that pushes the reconciled set on every change. Requires API key.
// @Tags Alerts
// @Security ApiKeyAuth
// @Success 101 "Switching Protocols"
// @Router /alerts/stream [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "streamAlerts")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	changes, unsubscribe := h.alerts.Changes()
	defer unsubscribe()

	closed := make(chan struct{})
	go readPump(conn, closed, log)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := h.writeSnapshot(conn); err != nil {
		log.WithError(err).Debug("Initial snapshot write failed")
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case <-changes:
			if err := h.writeSnapshot(conn); err != nil {
				log.WithError(err).Debug("Snapshot write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeSnapshot(conn *websocket.Conn) error {
	msg := StreamMessage{
		Type:   "snapshot",
		State:  string(h.alerts.State()),
		Alerts: ModelsToAlertResponses(h.alerts.Snapshot()),
	}
	if active, ok := h.alerts.ActiveBroadcast(); ok {
		resp := ModelToAlertResponse(active)
		msg.ActiveBroadcast = &resp
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

// readPump нужен только для pong и обнаружения закрытия
func readPump(conn *websocket.Conn, closed chan<- struct{}, log *logrus.Entry) {
	defer close(closed)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("Websocket closed unexpectedly")
			}
			return
		}
	}
}
