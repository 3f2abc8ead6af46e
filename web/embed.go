// Package web embeds the site's static assets for single-binary distribution.
package web

//go:generate sh -c "GOOS=js GOARCH=wasm go build -trimpath -ldflags=-s -o static/scrolltop.wasm ../cmd/scrolltop"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/wasm_exec.js"

import (
	"embed"
	"io/fs"
)

// Assets contains the stylesheet, the WebAssembly loader and, when built
// with `go generate ./web`, scrolltop.wasm plus the matching wasm_exec.js.
//
//go:embed all:static
var Assets embed.FS

// Static returns Assets rooted at the static/ directory.
func Static() fs.FS {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
