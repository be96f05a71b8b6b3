package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lgoncalvess/WordWar-Server/game/registry"
	"github.com/lgoncalvess/WordWar-Server/game/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// Client event names. A frame is the event name, a '#' separator and a JSON
// body: create_room#{"id":"R1","playerId":"p1","playerName":"Ana"}.
const (
	EventCreateRoom   = "create_room"
	EventJoinRoom     = "join_room"
	EventStartGame    = "start_game"
	EventSelectLetter = "select_letter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Handler upgrades HTTP requests to game WebSocket connections and routes
// their frames into the game service.
type Handler struct {
	service service.GameService
}

// NewHandler creates a WebSocket handler backed by the given service.
func NewHandler(svc service.GameService) *Handler {
	return &Handler{service: svc}
}

// ServeWS handles WebSocket requests from clients
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn:    conn,
		service: h.service,
		send:    make(chan []byte, 256),
	}

	go client.writePump()
	go client.readPump()
}

// Client is one WebSocket connection. It is the delivery capability handed
// to the room broadcaster for the player bound to this connection.
type Client struct {
	conn    *websocket.Conn
	service service.GameService

	mu     sync.Mutex
	send   chan []byte
	closed bool

	// Room/player pair from the last successful create_room or join_room.
	// Only the read pump touches these.
	roomID   string
	playerID string
}

// Send queues a message for delivery to the peer. It never blocks: a closed
// connection or a full send buffer is reported as an error and the message
// is dropped.
func (c *Client) Send(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("connection is closed")
	}
	select {
	case c.send <- []byte(message):
		return nil
	default:
		return fmt.Errorf("send buffer is full")
	}
}

// closeSend marks the client closed and releases the write pump.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump pumps frames from the WebSocket connection into the game service
func (c *Client) readPump() {
	defer func() {
		c.closeSend()
		if c.roomID != "" {
			c.service.DisconnectPlayer(context.Background(), c.roomID, c.playerID)
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		c.dispatch(context.Background(), string(data))
	}
}

// dispatch routes one event frame to the matching service operation.
func (c *Client) dispatch(ctx context.Context, frame string) {
	event, body, found := strings.Cut(frame, "#")
	if !found {
		log.Printf("Dropping malformed frame: %.64q", frame)
		return
	}

	switch event {
	case EventCreateRoom:
		var req service.CreateRoomRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			log.Printf("Invalid %s payload: %v", event, err)
			return
		}
		req.Session = c
		handle, err := c.service.CreateRoom(ctx, req)
		if err != nil {
			c.Send(clientError(req.RoomID, req.PlayerID, err))
			return
		}
		c.roomID, c.playerID = handle.RoomID, handle.PlayerID

	case EventJoinRoom:
		var req service.JoinRoomRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			log.Printf("Invalid %s payload: %v", event, err)
			return
		}
		req.Session = c
		handle, err := c.service.JoinRoom(ctx, req)
		if err != nil {
			c.Send(clientError(req.RoomID, req.PlayerID, err))
			return
		}
		c.roomID, c.playerID = handle.RoomID, handle.PlayerID

	case EventStartGame:
		var req service.StartGameRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			log.Printf("Invalid %s payload: %v", event, err)
			return
		}
		if err := c.service.StartGame(ctx, req.RoomID); err != nil {
			c.Send(clientError(req.RoomID, "", err))
		}

	case EventSelectLetter:
		var req service.SelectLetterRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			log.Printf("Invalid %s payload: %v", event, err)
			return
		}
		if err := c.service.SelectLetter(ctx, req); err != nil {
			c.Send(clientError(req.RoomID, req.PlayerID, err))
		}

	default:
		log.Printf("Unknown event %q", event)
	}
}

// clientError translates service errors into the plain-text messages the
// game clients display.
func clientError(roomID, playerID string, err error) string {
	switch {
	case errors.Is(err, registry.ErrRoomAlreadyExists):
		return fmt.Sprintf("Room %s already exists.", roomID)
	case errors.Is(err, registry.ErrRoomNotFound):
		return fmt.Sprintf("Room %s does not exist.", roomID)
	case errors.Is(err, registry.ErrPlayerAlreadyExists):
		return fmt.Sprintf("Player %s already exists.", playerID)
	case errors.Is(err, registry.ErrPlayerNotFound):
		return fmt.Sprintf("Player %s does not exist.", playerID)
	case errors.Is(err, registry.ErrInsufficientPlayers):
		return fmt.Sprintf("Room %s should await other player.", roomID)
	}
	return "Unable to process request."
}

// writePump pumps queued messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
