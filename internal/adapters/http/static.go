package httpadapter

import (
	_ "embed"
	"net/http"
)

//go:embed web/index.html
var indexPage []byte

// handleIndex serves the embedded practice page. The page is a thin shell
// over the JSON API: category selector, answer box, optional camera
// snapshot, rendered results.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}
