package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"team-collab-app/dto"
	"team-collab-app/dto/req"
	"team-collab-app/repository"
	"team-collab-app/security"
	"team-collab-app/usecase"
)

// WebSocketHandler keeps one room per channel and fans broadcast messages
// out to every connection in that room.
type WebSocketHandler struct {
	*logrus.Logger
	sync.Mutex
	usecase.MessageUsecase
	ChannelRepository repository.ChannelRepository
	JWT               *security.JWT
	Clients           map[string]map[*websocket.Conn]bool // channelId -> connections
	Broadcast         chan dto.BroadcastMessage
}

func NewWebSocketHandler(logger *logrus.Logger, messageUsecase usecase.MessageUsecase, channelRepository repository.ChannelRepository, jwt *security.JWT) *WebSocketHandler {
	handler := &WebSocketHandler{
		Logger:            logger,
		MessageUsecase:    messageUsecase,
		ChannelRepository: channelRepository,
		JWT:               jwt,
		Clients:           make(map[string]map[*websocket.Conn]bool),
		Broadcast:         make(chan dto.BroadcastMessage),
	}
	go handler.runBroadcast()
	return handler
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()

	token := c.Query("token")
	channelID := c.Query("channelId")

	userID, err := handler.JWT.GetUserIdFromToken(token)
	if err != nil {
		handler.Logger.WithError(err).Warn("Websocket connection with invalid token")
		c.Close()
		return
	}

	channel, err := handler.ChannelRepository.FindChannelByID(ctx, channelID)
	if err != nil || channel == nil {
		handler.Logger.Warnf("Websocket connection to unknown channel: %s", channelID)
		c.Close()
		return
	}

	handler.registerClient(channelID, c)
	defer func() {
		handler.removeClient(channelID, c)
		c.Close()
	}()

	for {
		var payload req.MessageRequest
		if err := c.ReadJSON(&payload); err != nil {
			handler.Logger.Warnf("Read error: %v", err)
			break
		}

		// membership and channel ownership are checked inside Send
		broadcastMessage, err := handler.MessageUsecase.Send(ctx, userID, channel.WorkspaceID, channelID, &payload)
		if err != nil {
			handler.Logger.WithError(err).Error("Failed to process incoming message")
			continue
		}

		handler.Broadcast <- broadcastMessage
	}
}

func (handler *WebSocketHandler) registerClient(channelID string, conn *websocket.Conn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if handler.Clients[channelID] == nil {
		handler.Clients[channelID] = make(map[*websocket.Conn]bool)
	}
	handler.Clients[channelID][conn] = true
	handler.Logger.Infof("Client joined channel room: %s (Total: %d)", channelID, len(handler.Clients[channelID]))
}

func (handler *WebSocketHandler) removeClient(channelID string, conn *websocket.Conn) {
	handler.Mutex.Lock()
	defer handler.Mutex.Unlock()

	if clients, ok := handler.Clients[channelID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(handler.Clients, channelID)
		}
	}
	handler.Logger.Infof("Client left channel room: %s", channelID)
}

func (handler *WebSocketHandler) runBroadcast() {
	for msg := range handler.Broadcast {
		handler.Mutex.Lock()
		clients := handler.Clients[msg.ChannelID]
		for conn := range clients {
			if err := conn.WriteJSON(msg); err != nil {
				handler.Logger.Warnf("Error broadcasting message: %v", err)
				conn.Close()
				delete(clients, conn)
			}
		}
		handler.Mutex.Unlock()
	}
}
