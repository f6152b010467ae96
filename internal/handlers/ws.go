package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/darkhuo10/vgameshop/internal/types"
)

var (
	gameClients   = make(map[string]map[*websocket.Conn]bool)
	gameClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastReviewRefresh tells every client watching a game that its review
// list changed and should be refetched.
func BroadcastReviewRefresh(gameID string) {
	gameClientsMu.RLock()
	clients, exists := gameClients[gameID]
	if !exists || len(clients) == 0 {
		gameClientsMu.RUnlock()
		return
	}

	// Copy the connections so the lock is not held while writing
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	gameClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":    "refresh",
			"message": "Review data updated",
			"game_id": gameID,
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			gameClientsMu.Lock()
			if clients, exists := gameClients[gameID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(gameClients, gameID)
				}
			}
			gameClientsMu.Unlock()
			conn.Close()
		}
	}
}

// ReviewFeed upgrades the request to a websocket and keeps the client
// subscribed to review refresh events for one game.
func ReviewFeed(c *gin.Context) {
	gameID := c.Param("game_id")

	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	gameClientsMu.Lock()
	if gameClients[gameID] == nil {
		gameClients[gameID] = make(map[*websocket.Conn]bool)
	}
	gameClients[gameID][conn] = true
	gameClientsMu.Unlock()

	defer func() {
		gameClientsMu.Lock()

		if clients, exists := gameClients[gameID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(gameClients, gameID)
			}
		}

		gameClientsMu.Unlock()
		conn.Close()

		log.Printf("WebSocket connection closed for game %s", gameID)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":    "connected",
		"message": "WebSocket connection established",
		"game_id": gameID,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for game %s: %v", gameID, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for game %s: %v", gameID, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for game %s: %v", gameID, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for game %s: %v", gameID, err)
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			log.Printf("Received message from client for game %s: %s", gameID, string(message))
		case websocket.PongMessage:
			log.Printf("Received pong for game %s", gameID)
		}
	}
}
