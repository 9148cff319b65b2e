package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"strive_server/services"
)

// ProfileController struct
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController initializes the profile controller
func NewProfileController(service *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: service}
}

// GetOwnProfile - Fetch the authenticated caller's profile
func (c *ProfileController) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := c.ProfileService.GetOwnProfile(r.Context())
	if err != nil {
		log.Printf("❌ Error fetching profile: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// CreateProfile - Create the caller's profile
func (c *ProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email string   `json:"email"`
		Tags  []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.CreateProfile(r.Context(), request.Email, request.Tags)
	if err != nil {
		log.Printf("❌ Failed to create profile: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile - Merge supplied fields into the caller's profile
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.UpdateProfile(r.Context(), input)
	if err != nil {
		log.Printf("❌ Failed to update profile: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
