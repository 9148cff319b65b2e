package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"strive_server/services"
	"strive_server/utils"
)

// ChatController struct
type ChatController struct {
	ChatService     *services.ChatService
	ReactionService *services.ReactionService
}

// NewChatController initializes the chat controller
func NewChatController(chat *services.ChatService, reactions *services.ReactionService) *ChatController {
	return &ChatController{ChatService: chat, ReactionService: reactions}
}

// SendMessage - Store a new message in the room resolved from the room id
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input services.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), input)
	if err != nil {
		log.Printf("❌ Failed to send message: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

// GetMessages - Fetch messages for a room in UI order
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	limit := utils.ParseLimit(r, 50)

	messages, err := c.ChatService.GetMessages(r.Context(), roomID, limit)
	if err != nil {
		log.Printf("❌ Error fetching messages: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// AddReaction - Atomically increment a reaction counter
func (c *ChatController) AddReaction(w http.ResponseWriter, r *http.Request) {
	c.applyReaction(w, r, "add")
}

// RemoveReaction - Atomically decrement a reaction counter
func (c *ChatController) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	c.applyReaction(w, r, "remove")
}

// UpdateReactionSummary - Apply the action named in the body; unknown actions
// are a fetch-only read
func (c *ChatController) UpdateReactionSummary(w http.ResponseWriter, r *http.Request) {
	c.applyReaction(w, r, "")
}

func (c *ChatController) applyReaction(w http.ResponseWriter, r *http.Request, action string) {
	var input services.ReactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if action != "" {
		input.Action = action
	}

	summary, err := c.ReactionService.ApplyReaction(r.Context(), input)
	if err != nil {
		log.Printf("❌ Failed to apply reaction: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ListReactionSummaries - Fetch every reaction summary for a message
func (c *ChatController) ListReactionSummaries(w http.ResponseWriter, r *http.Request) {
	messageID := r.URL.Query().Get("messageId")

	summaries, err := c.ReactionService.ListSummaries(r.Context(), messageID)
	if err != nil {
		log.Printf("❌ Error fetching reaction summaries: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
