package churchboard

import (
	"encoding/json"
	"net/http"
)

// The API keeps the envelope contract of the original frontend: domain
// outcomes, including failures, travel as HTTP 200 bodies with a success
// flag. Transport-level problems (malformed JSON, bad path ids, missing
// identity) are the only responses with non-200 status codes.

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	PerPage     int   `json:"per_page"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// NewPagination computes the pagination block for a page of a total count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		PerPage:     limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// EmptyPagination is the zeroed block returned when a list query fails;
// it keeps the requested page and limit, matching the fallback contract.
func EmptyPagination(page, limit int) Pagination {
	return Pagination{CurrentPage: page, PerPage: limit}
}

type listResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type createdResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError is for transport-level failures only; everything else uses
// the 200 envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Success: false, Message: message})
}

// respondList writes a successful list envelope. data must never be nil so
// the frontend always receives an array.
func respondList(w http.ResponseWriter, data any, p Pagination) {
	respondJSON(w, http.StatusOK, listResponse{Success: true, Data: data, Pagination: p})
}

// respondEmptyList writes the fabricated empty success page used when a
// list query fails.
func respondEmptyList(w http.ResponseWriter, page, limit int) {
	respondList(w, []any{}, EmptyPagination(page, limit))
}

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, dataResponse{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, messageResponse{Success: true, Message: message})
}

// respondFailure writes a domain-level failure: HTTP 200, success false.
func respondFailure(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, messageResponse{Success: false, Message: message})
}

func respondCreated(w http.ResponseWriter, message string, data any) {
	respondJSON(w, http.StatusOK, createdResponse{Success: true, Message: message, Data: data})
}
