package vdom

import "github.com/vango-dev/vrange/internal/errors"

// Component is a stateful unit that renders to a VNode.
// Implementations embed Base:
//
//	type Counter struct {
//	    vdom.Base
//	}
//
//	func (c *Counter) Render() *vdom.VNode {
//	    return vdom.Span(c.State["count"])
//	}
type Component interface {
	Render() *VNode
	base() *Base
}

// State is a component's local data. Nested map[string]any values are
// merged key by key by SetState.
type State = map[string]any

// Base carries the data every component owns.
type Base struct {
	// Props are the attributes the component was built with.
	Props Props

	// Children are the children the component was built with.
	Children []*VNode

	// State is changed through SetState.
	State State

	self     Component
	renderer *Renderer
	pos      Position
	snapshot *VNode
}

func (b *Base) base() *Base { return b }

// SetAttribute stores a prop.
func (b *Base) SetAttribute(name string, value any) {
	if b.Props == nil {
		b.Props = make(Props)
	}
	b.Props[name] = value
}

// AppendChild stores a child passed by the builder.
func (b *Base) AppendChild(child *VNode) {
	b.Children = append(b.Children, child)
}

// SetState merges patch into State and re-renders the component.
// It panics if the component has never been mounted.
func (b *Base) SetState(patch State) {
	if b.renderer == nil || b.snapshot == nil || b.self == nil {
		panic(errors.New("E101").
			WithDetailf("component %s has no rendered output to reconcile against", typeName(b.self)).
			WithSuggestion("Mount the component with vdom.Render (or inside a mounted parent) before calling SetState").
			WithCaller(1))
	}
	if b.State == nil {
		b.State = patch
	} else {
		MergeState(b.State, patch)
	}
	b.renderer.update(b.self)
}

// Snapshot returns the output produced by the last render pass.
func (b *Base) Snapshot() *VNode {
	return b.snapshot
}

// Position returns the span the component occupies. Components nested in
// an element report the span of their rendered output.
func (b *Base) Position() Position {
	if b.pos == nil && b.snapshot != nil {
		return b.snapshot.pos
	}
	return b.pos
}

// Mounted reports whether the component can be re-rendered.
func (b *Base) Mounted() bool {
	return b.renderer != nil && b.snapshot != nil
}

// MergeState deep-merges patch into target in place. When both the
// current and the patch value under a key are maps they are merged
// recursively; any other patch value replaces the current one.
func MergeState(target, patch State) {
	for key, value := range patch {
		if current, ok := target[key].(map[string]any); ok && current != nil {
			if next, ok := value.(map[string]any); ok {
				MergeState(current, next)
				continue
			}
		}
		target[key] = value
	}
}
