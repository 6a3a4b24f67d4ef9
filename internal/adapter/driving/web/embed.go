package web

import (
	"embed"
	"io/fs"
)

// StaticFS holds the embedded static assets (stylesheet, scripts, images).
//
//go:embed static
var StaticFS embed.FS

// Assets returns the static assets rooted at the asset directory, the way
// they are served under <base>/static/ and copied by the export.
func Assets() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic("web: static assets missing: " + err.Error())
	}
	return sub
}
