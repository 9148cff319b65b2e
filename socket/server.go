package socket

import (
	"context"
	"log"

	socketio "github.com/googollee/go-socket.io"

	"strive_server/auth"
)

// connState tracks the two-phase subscription handshake per connection:
// first the external authorizer approves a room, then subscribe gates
// against it.
type connState struct {
	Sub            string
	AuthorizedRoom string
}

// NewSocketServer initializes and returns a new Socket.IO server
func NewSocketServer(authorizer *auth.AuthorizerClient) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		s.SetContext(connState{})
		return nil
	})

	// Phase 1: the external authorizer approves the caller for one room.
	server.OnEvent("/", "authorize", func(s socketio.Conn, data map[string]string) {
		roomID := data["roomId"]
		if roomID == "" {
			log.Println("❌ Invalid roomId in authorize request")
			s.Emit("authorizeError", map[string]string{"error": "roomId: required"})
			return
		}

		headers := map[string]string{
			"Authorization": s.RemoteHeader().Get("Authorization"),
		}
		sub, err := authorizer.Authorize(context.Background(), auth.ModeSubscription, headers)
		if err != nil {
			log.Printf("❌ Subscription authorization failed: %v", err)
			s.Emit("authorizeError", map[string]string{"error": "not authorized"})
			return
		}

		s.SetContext(connState{Sub: sub, AuthorizedRoom: roomID})
		log.Printf("✅ %s authorized for room %s", sub, roomID)
	})

	// Phase 2: gate the requested room against the authorized one and join.
	// The handshake emits nothing on success; a payload here would be
	// mistaken for a delivered event downstream.
	server.OnEvent("/", "subscribe", func(s socketio.Conn, data map[string]string) {
		state, _ := s.Context().(connState)
		ctx := context.Background()
		if state.Sub != "" {
			ctx = auth.WithClaims(ctx, &auth.Claims{Sub: state.Sub})
		}

		roomID := data["roomId"]
		if err := auth.GateSubscription(ctx, state.AuthorizedRoom, roomID); err != nil {
			log.Printf("❌ Subscribe rejected for room %s: %v", roomID, err)
			s.Emit("subscribeError", map[string]string{"error": "not authorized"})
			return
		}

		s.Join(roomID)
		log.Printf("👥 %s subscribed to room %s", s.ID(), roomID)
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, message map[string]interface{}) {
		roomID, _ := message["roomId"].(string)
		if roomID == "" {
			return
		}
		server.BroadcastToRoom("/", roomID, "newMessage", message)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", s.ID(), reason)
	})

	return server
}
