// Package web serves the embedded browser UI: a single page that looks up an
// address by postcode and shows its upcoming collections.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// assets is the static directory with its prefix stripped.
var assets = mustSub(files, "static")

//go:embed static/index.html
var indexHTML []byte

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Index handles GET /.
func Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// Static serves the embedded assets. Mount it at /static/.
func Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(assets))
}
