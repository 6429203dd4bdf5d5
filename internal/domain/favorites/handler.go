package favorites

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rescue-dog-favorites/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, shareBase string) {
	r.Route("/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc))
		fr.Delete("/", clearFavoritesHandler(svc))

		// Compartir / importar
		fr.Get("/share", shareFavoritesHandler(svc, shareBase))
		fr.Post("/import", importFavoritesHandler(svc))

		fr.Put("/{dogID}", addFavoriteHandler(svc))
		fr.Delete("/{dogID}", removeFavoriteHandler(svc))
		fr.Post("/{dogID}/toggle", toggleFavoriteHandler(svc))
	})
}

type favoritesResponse struct {
	IDs        []int64 `json:"ids"`
	Count      int     `json:"count"`
	Persistent bool    `json:"persistent"`
}

type toggleResponse struct {
	favoritesResponse
	Favorited bool `json:"favorited"`
}

type shareResponse struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}

type importRequest struct {
	URL string `json:"url"`
}

type importResponse struct {
	favoritesResponse
	Added int `json:"added"`
}

// listFavoritesHandler godoc
// @Summary Listar favoritos
// @Description Devuelve los ids favoritos del cliente en orden de inserción. El cliente se identifica con `X-Client-ID` o la cookie `rdf_client`.
// @Tags favorites
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Success 200 {object} favoritesResponse
// @Failure 400 {string} string "missing client id"
// @Router /favorites [get]
func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toFavoritesResponse(st))
	}
}

// addFavoriteHandler godoc
// @Summary Agregar favorito
// @Description Idempotente: agregar un id que ya está no cambia el set.
// @Tags favorites
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Param dogID path int true "ID del perro"
// @Success 200 {object} favoritesResponse
// @Failure 400 {string} string "invalid dog id"
// @Failure 409 {string} string "favorites limit reached"
// @Router /favorites/{dogID} [put]
func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}
		id, ok := dogIDParam(w, r)
		if !ok {
			return
		}

		if err := st.Add(r.Context(), id); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFavoritesResponse(st))
	}
}

// removeFavoriteHandler godoc
// @Summary Quitar favorito
// @Tags favorites
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Param dogID path int true "ID del perro"
// @Success 200 {object} favoritesResponse
// @Failure 400 {string} string "invalid dog id"
// @Router /favorites/{dogID} [delete]
func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}
		id, ok := dogIDParam(w, r)
		if !ok {
			return
		}

		if err := st.Remove(r.Context(), id); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFavoritesResponse(st))
	}
}

// toggleFavoriteHandler godoc
// @Summary Alternar favorito
// @Tags favorites
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Param dogID path int true "ID del perro"
// @Success 200 {object} toggleResponse
// @Failure 400 {string} string "invalid dog id"
// @Failure 409 {string} string "favorites limit reached"
// @Router /favorites/{dogID}/toggle [post]
func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}
		id, ok := dogIDParam(w, r)
		if !ok {
			return
		}

		added, err := st.Toggle(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{
			favoritesResponse: toFavoritesResponse(st),
			Favorited:         added,
		})
	}
}

// clearFavoritesHandler godoc
// @Summary Vaciar favoritos
// @Tags favorites
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Success 200 {object} favoritesResponse
// @Router /favorites [delete]
func clearFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}
		st.Clear(r.Context())
		writeJSON(w, http.StatusOK, toFavoritesResponse(st))
	}
}

// shareFavoritesHandler godoc
// @Summary Link para compartir
// @Description Devuelve una URL pública con los favoritos codificados en el parámetro `c` (base36 separados por ".").
// @Tags favorites
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Success 200 {object} shareResponse
// @Router /favorites/share [get]
func shareFavoritesHandler(svc *Service, base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}

		u, err := st.ShareableURL(base)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, shareResponse{URL: u, Count: st.Count()})
	}
}

// importFavoritesHandler godoc
// @Summary Importar favoritos de un link
// @Description Une los ids del link con el set actual. Acepta `c`, `shared` y el formato legacy `ids`; un parámetro mal formado se ignora.
// @Tags favorites
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "ID de cliente"
// @Param payload body importRequest true "URL compartida (o solo su query)"
// @Success 200 {object} importResponse
// @Failure 400 {string} string "invalid json"
// @Router /favorites/import [post]
func importFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, ok := clientStore(w, r, svc)
		if !ok {
			return
		}

		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		added := st.LoadFromURL(r.Context(), req.URL)
		writeJSON(w, http.StatusOK, importResponse{
			favoritesResponse: toFavoritesResponse(st),
			Added:             added,
		})
	}
}

func clientStore(w http.ResponseWriter, r *http.Request, svc *Service) (*Store, bool) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		http.Error(w, "missing client id", http.StatusBadRequest)
		return nil, false
	}
	st, err := svc.Store(r.Context(), clientID)
	if err != nil {
		http.Error(w, "missing client id", http.StatusBadRequest)
		return nil, false
	}
	return st, true
}

func dogIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "dogID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid dog id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrLimitReached):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toFavoritesResponse(st *Store) favoritesResponse {
	ids := st.IDs()
	return favoritesResponse{
		IDs:        ids,
		Count:      len(ids),
		Persistent: st.Persistent(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
