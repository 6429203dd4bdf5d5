package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const clientIDKey ctxKey = "client_id"

const (
	ClientIDHeader = "X-Client-ID"
	ClientCookie   = "rdf_client"

	maxClientIDLen = 64
)

// ClientContext identifica al cliente dueño del set de favoritos:
// - Header X-Client-ID si viene y es válido.
// - Si no, la cookie rdf_client.
// - Si no hay ninguno, emite un id nuevo y lo deja en cookie.
// El id resuelto siempre vuelve en el header X-Client-ID de la respuesta.
func ClientContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := strings.TrimSpace(r.Header.Get(ClientIDHeader))
		if !ValidClientID(clientID) {
			clientID = ""
			if c, err := r.Cookie(ClientCookie); err == nil && ValidClientID(c.Value) {
				clientID = c.Value
			}
		}

		if clientID == "" {
			clientID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set(ClientIDHeader, clientID)
		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetClientID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(clientIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithClientID es para tests y jobs que no pasan por HTTP.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// ValidClientID acepta hasta 64 caracteres [A-Za-z0-9_-].
func ValidClientID(id string) bool {
	if id == "" || len(id) > maxClientIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
