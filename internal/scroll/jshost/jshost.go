//go:build js && wasm

// Package jshost binds scroll.Host to the browser window via syscall/js.
package jshost

import (
	"syscall/js"

	"github.com/gosuda/littleknowledge/internal/scroll"
)

var _ scroll.Host = (*Window)(nil)

// Window is a scroll.Host backed by the global window object.
type Window struct {
	window   js.Value
	document js.Value
}

// New returns a Window bound to js.Global().
func New() *Window {
	g := js.Global()
	return &Window{
		window:   g.Get("window"),
		document: g.Get("document"),
	}
}

// Available reports whether the environment exposes a scrollable window.
func (w *Window) Available() bool {
	return w.window.Truthy() && w.window.Get("addEventListener").Type() == js.TypeFunction
}

// AddScrollListener registers fn as a passive "scroll" listener. The returned
// function removes the listener and releases the underlying js.Func.
func (w *Window) AddScrollListener(fn func(position float64)) func() {
	cb := js.FuncOf(func(_ js.Value, _ []js.Value) any {
		fn(w.ScrollY())
		return nil
	})

	opts := js.Global().Get("Object").New()
	opts.Set("passive", true)
	w.window.Call("addEventListener", "scroll", cb, opts)

	return func() {
		w.window.Call("removeEventListener", "scroll", cb, opts)
		cb.Release()
	}
}

// ScrollY returns window.scrollY, falling back to pageYOffset and then the
// document element's scrollTop on older engines.
func (w *Window) ScrollY() float64 {
	if v := w.window.Get("scrollY"); v.Type() == js.TypeNumber {
		return v.Float()
	}
	if v := w.window.Get("pageYOffset"); v.Type() == js.TypeNumber {
		return v.Float()
	}
	if el := w.document.Get("documentElement"); el.Truthy() {
		return el.Get("scrollTop").Float()
	}
	return 0
}

// ScrollTo scrolls the window to offset. When smooth scrolling is not
// supported the window jumps.
func (w *Window) ScrollTo(offset float64, smooth bool) {
	if smooth && w.supportsSmooth() {
		opts := js.Global().Get("Object").New()
		opts.Set("top", offset)
		opts.Set("behavior", "smooth")
		w.window.Call("scrollTo", opts)
		return
	}
	w.window.Call("scrollTo", 0, offset)
}

func (w *Window) supportsSmooth() bool {
	el := w.document.Get("documentElement")
	if !el.Truthy() {
		return false
	}
	style := el.Get("style")
	return style.Truthy() && !style.Get("scrollBehavior").IsUndefined()
}
