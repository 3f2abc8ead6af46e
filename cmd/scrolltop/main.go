//go:build js && wasm

// Command scrolltop is the WebAssembly entry point that drives the
// "return to top" button on content pages.
//
// Build with:
//
//	go generate ./web
package main

import (
	"syscall/js"

	"github.com/gosuda/littleknowledge/internal/scroll"
	"github.com/gosuda/littleknowledge/internal/scroll/jshost"
)

func main() {
	host := jshost.New()
	if !host.Available() {
		return
	}

	g := js.Global()
	if bind(g.Get("window"), g.Get("document"), host) == nil {
		return
	}

	// The instance lives as long as the page, including while it sits in
	// the back/forward cache.
	select {}
}

// bind attaches a controller to the page's [data-scroll-top] button and
// returns it, or nil when the page has no button.
//
// A page stored in the back/forward cache keeps its Go instance, so the
// listener is released on pagehide and registered again on pageshow rather
// than torn down for good.
func bind(window, document js.Value, host scroll.Host) *scroll.Controller {
	button := document.Call("querySelector", "[data-scroll-top]")
	if !button.Truthy() {
		return nil
	}

	c := scroll.NewController(host)
	c.OnChange(func(visible bool) {
		if visible {
			button.Call("removeAttribute", "hidden")
		} else {
			button.Call("setAttribute", "hidden", "")
		}
	})

	button.Call("addEventListener", "click", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		c.ScrollToTop()
		return nil
	}))

	window.Call("addEventListener", "pagehide", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if persisted(args) {
			c.Deactivate()
		}
		return nil
	}))
	window.Call("addEventListener", "pageshow", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if persisted(args) {
			c.Activate()
			c.Sync()
		}
		return nil
	}))

	c.Activate()
	c.Sync()
	return c
}

// persisted reports whether a pagehide/pageshow event involves the
// back/forward cache.
func persisted(args []js.Value) bool {
	if len(args) == 0 || !args[0].Truthy() {
		return false
	}
	p := args[0].Get("persisted")
	return p.Type() == js.TypeBoolean && p.Bool()
}
