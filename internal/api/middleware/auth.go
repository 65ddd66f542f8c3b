package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prooflab/resolute/internal/domain"
)

type contextKey string

const workspaceContextKey contextKey = "workspace"

func WorkspaceFromContext(ctx context.Context) *domain.Workspace {
	w, _ := ctx.Value(workspaceContextKey).(*domain.Workspace)
	return w
}

// APIKeyAuth resolves the Bearer API key to a workspace and stores it in
// the request context. Keys are looked up by SHA-256 hash; the plaintext
// key is never persisted.
func APIKeyAuth(workspaces domain.WorkspaceStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			workspace, err := workspaces.GetByAPIKeyHash(r.Context(), HashAPIKey(parts[1]))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			ctx := context.WithValue(r.Context(), workspaceContextKey, workspace)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HashAPIKey is also used when minting keys for new workspaces.
func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
