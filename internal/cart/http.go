package cart

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MiniCart/pkg/kit"
)

const (
	maxAddBody = 1 << 20

	// ids above 2^53 cannot round-trip through a JSON number
	maxJSONInt = 1 << 53
)

type Server struct {
	Store *Store
	Log   *zap.Logger

	// Limiter, when set, guards the mutating routes.
	Limiter *kit.IPRateLimiter
}

type addReq struct {
	ID any `json:"id"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/summary", s.summary)

	r.Group(func(mr chi.Router) {
		if s.Limiter != nil {
			mr.Use(s.Limiter.Middleware)
		}
		mr.Post("/", s.add)
		mr.Delete("/{id}", s.remove)
	})

	return r
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) summary(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Summary())
}

// add never fails: a body that does not name a catalog product leaves the
// cart as it was and still answers 200 with the current contents.
func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeAddRequest(w, r)
	if !ok {
		s.debug(r, "add ignored: bad body")
		kit.WriteJSON(w, http.StatusOK, s.Store.List())
		return
	}

	items, found := s.Store.Add(id)
	if !found {
		s.debug(r, "add ignored: unknown product", zap.Int64("product_id", id))
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		s.debug(r, "remove ignored: bad id", zap.String("id", raw))
		kit.WriteJSON(w, http.StatusOK, s.Store.List())
		return
	}

	items, removed := s.Store.Remove(id)
	if removed == 0 {
		s.debug(r, "remove ignored: not in cart", zap.Int64("product_id", id))
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func decodeAddRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAddBody)
	defer func() { _ = r.Body.Close() }()

	var req addReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, false
	}
	return productID(req.ID)
}

// productID accepts only JSON numbers with an integral value; strings such as
// "1" do not match a product.
func productID(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > maxJSONInt {
		return 0, false
	}
	return int64(f), true
}

func (s *Server) debug(r *http.Request, msg string, fields ...zap.Field) {
	if s.Log == nil {
		return
	}
	fields = append(fields, zap.String("request_id", kit.RequestID(r)))
	s.Log.Debug(msg, fields...)
}
