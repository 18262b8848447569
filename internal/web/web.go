// Package web serves the embedded browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Static returns the embedded static directory as a filesystem rooted at
// its contents
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Assets serves files under /static/
func Assets() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(Static()))
}

// Index serves the client page at the site root
func Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, Static(), "index.html")
}
