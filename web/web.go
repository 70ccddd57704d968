// Package web embeds the landing page served under /static/.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

const indexPage = "index.html"

//go:embed static
var assets embed.FS

// StaticHandler serves the embedded assets. Mount it with the /static/ prefix stripped.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	files := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// http.FileServer answers .../index.html with a redirect to the directory;
		// the landing page is linked by its full name, so serve it in place.
		if strings.TrimPrefix(r.URL.Path, "/") == indexPage {
			u := *r.URL
			u.Path = "/"
			u.RawPath = ""
			r2 := r.Clone(r.Context())
			r2.URL = &u
			files.ServeHTTP(w, r2)
			return
		}
		files.ServeHTTP(w, r)
	})
}
