package routes

import (
	"strive_server/controllers"
	"strive_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, reactionService *services.ReactionService) {
	controller := controllers.NewChatController(chatService, reactionService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/message", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/reactions", controller.ListReactionSummaries).Methods("GET")
	chatRouter.HandleFunc("/reactions/add", controller.AddReaction).Methods("POST")
	chatRouter.HandleFunc("/reactions/remove", controller.RemoveReaction).Methods("POST")
	chatRouter.HandleFunc("/reactions/summary", controller.UpdateReactionSummary).Methods("PATCH")
}
