package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"strive_server/auth"
	"strive_server/routes"
	"strive_server/services"
	"strive_server/socket"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize the external authorizer client
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	authorizer := &auth.AuthorizerClient{
		Lambda:       lambda.NewFromConfig(cfg),
		FunctionName: os.Getenv("AUTHORIZER_FUNCTION"),
	}

	// Initialize Services
	profileService := &services.ProfileService{Dynamo: dynamoService}
	goalService := &services.GoalService{Dynamo: dynamoService}
	taskService := &services.TaskService{Dynamo: dynamoService}
	questService := &services.QuestService{Dynamo: dynamoService}
	badgeService := &services.BadgeService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	reactionService := &services.ReactionService{Dynamo: dynamoService}
	dashboardService := &services.DashboardService{Goals: goalService, Tasks: taskService}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Strive")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterGoalRoutes(r, goalService, taskService)
	routes.RegisterProgressRoutes(r, questService, badgeService, dashboardService)
	routes.RegisterChatRoutes(r, chatService, reactionService)
	routes.RegisterAuthRoutes(r, authorizer)
	routes.RegisterS3Routes(r)

	// Mount the subscription socket server
	socketServer := socket.NewSocketServer(authorizer)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server failed: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Identity middleware feeds the access guard
	handler := auth.Middleware(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(handler)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
