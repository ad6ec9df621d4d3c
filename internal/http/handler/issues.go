package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/PSrandula/issue-tracker-app/internal/apperror"
	"github.com/PSrandula/issue-tracker-app/internal/issue"

	"github.com/go-chi/chi/v5"
)

type IssueHandler struct {
	Svc *issue.Service
}

func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f issue.Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, r, apperror.NewValidation("Invalid JSON body"))
		return
	}

	is, err := h.Svc.Create(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, is)
}

func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v := strings.TrimSpace(q.Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	limit := issue.DefaultPageSize
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	res, err := h.Svc.List(r.Context(), issue.ListQuery{
		Search:   q.Get("search"),
		Status:   strings.TrimSpace(q.Get("status")),
		Priority: strings.TrimSpace(q.Get("priority")),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := issueID(w, r)
	if !ok {
		return
	}

	is, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, is)
}

func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := issueID(w, r)
	if !ok {
		return
	}

	var f issue.Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, r, apperror.NewValidation("Invalid JSON body"))
		return
	}

	is, err := h.Svc.Update(r.Context(), id, f)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, is)
}

func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := issueID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func (h *IssueHandler) Export(w http.ResponseWriter, r *http.Request) {
	csvText, err := h.Svc.ExportCSV(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=issues_export.csv`)
	_, _ = w.Write([]byte(csvText))
}

func issueID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		writeError(w, r, apperror.NewNotFound("Not found"))
		return 0, false
	}
	return id, true
}
