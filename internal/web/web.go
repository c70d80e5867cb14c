package web

import (
	_ "embed"
	"net/http"

	"MiniCart/pkg/kit"
)

//go:embed index.html
var indexHTML []byte

// Handler serves the storefront page. It only talks to /api.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteHTML(w, http.StatusOK, indexHTML)
	}
}
