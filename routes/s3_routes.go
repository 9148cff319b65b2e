package routes

import (
	"strive_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for attachment upload/read URLs
func RegisterS3Routes(r *mux.Router) {
	r.HandleFunc("/api/attachments/upload-url", controllers.GenerateAttachmentURL).Methods("POST")
	r.HandleFunc("/api/attachments/read-url", controllers.GetAttachmentReadURL).Methods("POST")
}
