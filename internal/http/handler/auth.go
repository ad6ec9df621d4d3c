package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PSrandula/issue-tracker-app/internal/apperror"
	"github.com/PSrandula/issue-tracker-app/internal/auth"
)

type AuthHandler struct {
	Svc *auth.Service
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperror.NewValidation("Invalid JSON body"))
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	token, err := h.Svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperror.NewValidation("Invalid JSON body"))
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	token, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
