package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MiniCart/pkg/kit"
)

type Server struct {
	Catalog *Catalog
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.List())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		if s.Log != nil {
			s.Log.Debug("bad product id", zap.String("id", raw), zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": raw})
		return
	}

	p, ok := s.Catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
