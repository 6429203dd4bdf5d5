package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"rescue-dog-favorites/internal/domain/favorites"
	"rescue-dog-favorites/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/favorites/view", func(vr chi.Router) {
		vr.Get("/", viewHandler(svc))
		vr.Get("/latest", latestViewHandler(svc))
	})
	r.Get("/favorites/compare", compareHandler(svc))
}

// viewHandler godoc
// @Summary Vista de favoritos
// @Description Hidrata los favoritos, aplica filtros y calcula insights. `state` distingue empty / error / unavailable / no_matches / ready. Responde 409 si un cambio de favoritos o un refresh más nuevo dejó obsoleta esta vista.
// @Tags catalog
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Param breed query string false "Raza"
// @Param size query string false "Tamaño"
// @Param sex query string false "Sexo"
// @Param age query string false "puppy | young | adult | senior"
// @Success 200 {object} View
// @Failure 400 {string} string "invalid filter"
// @Failure 409 {string} string "view superseded by a newer request"
// @Router /favorites/view [get]
func viewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := middleware.GetClientID(r.Context())
		if !ok {
			http.Error(w, "missing client id", http.StatusBadRequest)
			return
		}
		f, err := FilterFromQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		v, err := svc.View(r.Context(), clientID, f)
		if err != nil {
			writeViewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// latestViewHandler godoc
// @Summary Última vista aplicada
// @Tags catalog
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Success 200 {object} View
// @Failure 404 {string} string "no view yet"
// @Router /favorites/view/latest [get]
func latestViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := middleware.GetClientID(r.Context())
		if !ok {
			http.Error(w, "missing client id", http.StatusBadRequest)
			return
		}

		v, ok := svc.Latest(clientID)
		if !ok {
			http.Error(w, "no view yet", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// compareHandler godoc
// @Summary Comparar perros
// @Description Tabla lado a lado de 2 a 3 perros de la vista filtrada.
// @Tags catalog
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Param ids query string true "ids separados por coma"
// @Param breed query string false "Raza"
// @Param size query string false "Tamaño"
// @Param sex query string false "Sexo"
// @Param age query string false "puppy | young | adult | senior"
// @Success 200 {object} Comparison
// @Failure 400 {string} string "invalid ids / invalid filter"
// @Failure 422 {string} string "compare needs 2 to 3 dogs from the current view"
// @Failure 502 {string} string "favorite dogs could not be loaded"
// @Router /favorites/compare [get]
func compareHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := middleware.GetClientID(r.Context())
		if !ok {
			http.Error(w, "missing client id", http.StatusBadRequest)
			return
		}
		q := r.URL.Query()
		f, err := FilterFromQuery(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ids, err := parseIDs(q.Get("ids"))
		if err != nil {
			http.Error(w, "invalid ids", http.StatusBadRequest)
			return
		}

		cmp, err := svc.Compare(r.Context(), clientID, f, ids)
		if err != nil {
			writeViewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cmp)
	}
}

func parseIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrCompareSelection
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, ErrCompareSelection
		}
		out = append(out, id)
	}
	return out, nil
}

func writeViewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, favorites.ErrInvalidInput):
		http.Error(w, "missing client id", http.StatusBadRequest)
	case errors.Is(err, ErrSuperseded):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrCompareSelection):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrDogsUnavailable):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
