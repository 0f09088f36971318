package churchboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/churchhaven/churchboard/pkg/models"
)

// Shared helpers for the domain handlers.

// decodeJSON decodes the request body into dst, writing the 400 response
// itself when the payload is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// authorNames resolves the author ids of a record batch to display names.
func (a *App) authorNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return a.store.UserNames(ctx, unique)
}

// displayName returns the resolved name for an author id with the anonymous
// fallback.
func displayName(names map[int64]string, id int64) string {
	if name := names[id]; name != "" {
		return name
	}
	return models.AnonymousName
}
