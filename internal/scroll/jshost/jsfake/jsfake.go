//go:build js && wasm

// Package jsfake builds plain JavaScript objects that stand in for DOM event
// targets in js/wasm tests, so code written against window, document and
// elements runs under a headless wasm executor.
package jsfake

import "syscall/js"

type listener struct {
	fn   js.Value
	opts js.Value
}

// Target is a fake EventTarget with attribute support. Attrs mirrors the
// element's attributes as set from JavaScript.
type Target struct {
	Value js.Value
	Attrs map[string]string

	listeners map[string][]listener
	funcs     []js.Func
}

// NewTarget returns a Target exposing addEventListener, removeEventListener,
// setAttribute, removeAttribute and hasAttribute.
func NewTarget() *Target {
	t := &Target{
		Value:     js.Global().Get("Object").New(),
		Attrs:     make(map[string]string),
		listeners: make(map[string][]listener),
	}

	t.Func("addEventListener", func(args []js.Value) any {
		l := listener{fn: args[1], opts: js.Undefined()}
		if len(args) > 2 {
			l.opts = args[2]
		}
		t.listeners[args[0].String()] = append(t.listeners[args[0].String()], l)
		return nil
	})
	t.Func("removeEventListener", func(args []js.Value) any {
		event := args[0].String()
		kept := t.listeners[event][:0]
		for _, l := range t.listeners[event] {
			if !l.fn.Equal(args[1]) {
				kept = append(kept, l)
			}
		}
		t.listeners[event] = kept
		return nil
	})
	t.Func("setAttribute", func(args []js.Value) any {
		t.Attrs[args[0].String()] = args[1].String()
		return nil
	})
	t.Func("removeAttribute", func(args []js.Value) any {
		delete(t.Attrs, args[0].String())
		return nil
	})
	t.Func("hasAttribute", func(args []js.Value) any {
		_, ok := t.Attrs[args[0].String()]
		return ok
	})

	return t
}

// Func installs fn as the method name on the target.
func (t *Target) Func(name string, fn func(args []js.Value) any) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any { return fn(args) })
	t.funcs = append(t.funcs, f)
	t.Value.Set(name, f)
}

// Listeners returns how many listeners are registered for event.
func (t *Target) Listeners(event string) int {
	return len(t.listeners[event])
}

// Options returns the options object passed with the first listener for
// event, or undefined.
func (t *Target) Options(event string) js.Value {
	if ls := t.listeners[event]; len(ls) > 0 {
		return ls[0].opts
	}
	return js.Undefined()
}

// Dispatch calls every listener for event with an event object built from
// init.
func (t *Target) Dispatch(event string, init map[string]any) {
	ev := js.Global().Get("Object").New()
	for k, v := range init {
		ev.Set(k, v)
	}
	ls := append([]listener(nil), t.listeners[event]...)
	for _, l := range ls {
		l.fn.Invoke(ev)
	}
}

// Release frees the Go callbacks backing the target's methods.
func (t *Target) Release() {
	for _, f := range t.funcs {
		f.Release()
	}
	t.funcs = nil
}
