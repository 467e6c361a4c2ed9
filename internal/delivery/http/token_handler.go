package http

import (
	"encoding/json"
	"net/http"

	"stock-screener-backend/internal/repository"
)

// TokenHandler manages the device tokens that receive scan alerts.
type TokenHandler struct {
	tokens *repository.TokenRepository
}

func NewTokenHandler(tokens *repository.TokenRepository) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type RegisterTokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
}

func (h *TokenHandler) decodeToken(w http.ResponseWriter, r *http.Request) (RegisterTokenRequest, bool) {
	var req RegisterTokenRequest
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (h *TokenHandler) respond(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TokenResponse{
		Success: true,
		Message: message,
		Count:   h.tokens.GetTokenCount(),
	})
}

func (h *TokenHandler) HandleRegisterToken(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeToken(w, r)
	if !ok {
		return
	}
	if req.Platform == "" {
		req.Platform = "android"
	}
	h.tokens.RegisterToken(req.Token, req.Platform)
	h.respond(w, "Token registered")
}

func (h *TokenHandler) HandleUnregisterToken(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeToken(w, r)
	if !ok {
		return
	}
	h.tokens.UnregisterToken(req.Token)
	h.respond(w, "Token unregistered")
}

func (h *TokenHandler) HandleGetTokenCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.respond(w, "")
}
