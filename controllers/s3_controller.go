package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"strive_server/services"
)

// GenerateAttachmentURL generates a presigned URL for chat attachment uploads
func GenerateAttachmentURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "Missing required fields"}`, http.StatusBadRequest)
		return
	}

	url, key, err := services.GenerateAttachmentUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("❌ Error generating pre-signed URL: %v", err)
		http.Error(w, `{"error": "Failed to generate pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GetAttachmentReadURL generates a presigned URL for reading an attachment
func GetAttachmentReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	url, err := services.GenerateAttachmentReadURL(payload.Key)
	if err != nil {
		http.Error(w, `{"error": "Failed to generate read pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
