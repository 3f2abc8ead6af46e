package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gosuda/littleknowledge/internal/content"
)

func registerPageRoutes(r chi.Router, page func(path string) http.HandlerFunc) {
	r.Get("/", page(content.PathHome))
	for _, p := range []string{content.PathPronouns, content.PathConsonantClusters} {
		r.Get(p, page(p))
		r.Get(p+"/", page(p))
	}
}

func registerStaticRoutes(r chi.Router, assets fs.FS) {
	if assets == nil {
		return
	}
	r.Handle("/static/*", staticFileServer(assets))
}
