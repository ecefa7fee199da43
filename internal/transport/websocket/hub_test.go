package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", hub.HandleWebSocket)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, hub *Hub, url string, want int) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.ConnectedClients() == want }, 2*time.Second, 10*time.Millisecond)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHub_BroadcastsChanges(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url, 1)

	hub.Publish(domain.ChangeEvent{
		Type:          domain.EventAppointmentsChanged,
		AppointmentID: "42",
		Operation:     domain.JournalOperationConfirm,
		DoctorID:      "D1",
		Date:          "2025-05-16",
		OccurredAt:    time.Date(2025, 5, 16, 9, 0, 0, 0, time.UTC),
	})

	msg := readMessage(t, conn)
	assert.Equal(t, domain.EventAppointmentsChanged, msg.Type)

	data, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "42", data["appointmentId"])
	assert.Equal(t, "2025-05-16", data["date"])
}

func TestHub_DoctorSubscription(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url+"?doctorId=D2", 1)

	hub.Publish(domain.ChangeEvent{Type: domain.EventAppointmentsChanged, AppointmentID: "1", DoctorID: "D1"})
	hub.Publish(domain.ChangeEvent{Type: domain.EventAppointmentsChanged, AppointmentID: "2", DoctorID: "D2"})

	msg := readMessage(t, conn)
	data, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2", data["appointmentId"])
}

func TestHub_PingPong(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url, 1)

	require.NoError(t, conn.WriteJSON(Message{Type: MessageTypePing}))
	assert.Equal(t, MessageTypePong, readMessage(t, conn).Type)
}

func TestHub_Disconnect(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url, 1)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	assert.Eventually(t, func() bool { return hub.ConnectedClients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
