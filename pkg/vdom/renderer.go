package vdom

import (
	"log/slog"
	"time"

	"github.com/vango-dev/vrange/internal/errors"
)

// DefaultMaxDepth bounds how deep resolving may recurse before the tree is
// considered runaway.
const DefaultMaxDepth = 256

// Renderer mounts trees on a Surface and re-renders components that were
// mounted through it.
type Renderer struct {
	surface  Surface
	observer Observer
	logger   *slog.Logger
	maxDepth int

	// pass accumulates counters for the pass in progress.
	pass *Pass
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithObserver reports reconciliation decisions to o.
func WithObserver(o Observer) RenderOption {
	return func(r *Renderer) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) RenderOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) RenderOption {
	return func(r *Renderer) {
		if n > 0 {
			r.maxDepth = n
		}
	}
}

// NewRenderer creates a Renderer for the given surface.
func NewRenderer(s Surface, opts ...RenderOption) *Renderer {
	r := &Renderer{
		surface:  s,
		observer: NopObserver{},
		logger:   slog.Default(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render mounts root into container, replacing the container's content,
// and returns the Renderer that owns the mounted tree.
func Render(s Surface, root *VNode, container LiveNode, opts ...RenderOption) *Renderer {
	r := NewRenderer(s, opts...)
	r.Render(root, container)
	return r
}

// Surface returns the surface the renderer mounts into.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Render mounts root over the entire current content of container.
func (r *Renderer) Render(root *VNode, container LiveNode) {
	done := r.begin(PhaseRender, root.Tag)
	pos := r.surface.CreatePosition(container, 0, r.surface.ChildCount(container))
	r.mount(root, pos, 0)
	done()
}

// update re-renders c and patches its span.
func (r *Renderer) update(c Component) {
	b := c.base()
	done := r.begin(PhaseUpdate, typeName(c))
	next := r.renderComponent(c, 0)
	r.reconcile(b.snapshot, next)
	b.snapshot = next
	done()
}

// begin starts a pass and returns the function that finishes it.
func (r *Renderer) begin(phase, component string) func() {
	prev := r.pass
	p := &Pass{Phase: phase, Component: component, Start: time.Now()}
	r.pass = p
	return func() {
		p.Duration = time.Since(p.Start)
		r.pass = prev
		r.logger.Debug("vdom pass finished",
			"phase", p.Phase,
			"component", p.Component,
			"mounted", p.Mounted,
			"reused", p.Reused,
			"replaced", p.Replaced,
			"appended", p.Appended,
			"duration", p.Duration,
		)
		r.observer.PassFinished(*p)
	}
}

// resolve returns the element or text node n stands for. Elements get
// their computed children assigned; components are rendered until they
// produce an element or text node.
func (r *Renderer) resolve(n *VNode, depth int) *VNode {
	if depth > r.maxDepth {
		panic(errors.New("E103").
			WithDetailf("resolving %s exceeded depth %d", n, r.maxDepth).
			WithSuggestion("Make sure every component eventually renders an element or text node"))
	}
	switch n.Kind {
	case KindElement:
		computed := make([]*VNode, len(n.Children))
		for i, child := range n.Children {
			computed[i] = r.resolve(child, depth+1)
		}
		n.computed = computed
		return n
	case KindComponent:
		out := r.renderComponent(n.Comp, depth)
		n.Comp.base().snapshot = out
		return out
	default:
		return n
	}
}

// renderComponent calls c.Render and resolves the result.
func (r *Renderer) renderComponent(c Component, depth int) *VNode {
	b := c.base()
	b.self = c
	b.renderer = r
	out := c.Render()
	if out == nil {
		panic(errors.New("E104").WithDetailf("component %s", typeName(c)))
	}
	return r.resolve(out, depth+1)
}

// mount attaches n at pos.
func (r *Renderer) mount(n *VNode, pos Position, depth int) {
	switch n.Kind {
	case KindElement:
		r.mountElement(n, pos, depth)
	case KindText:
		n.pos = pos
		r.surface.ReplaceContent(pos, r.surface.CreateText(n.Text))
		r.mounted(n)
	case KindComponent:
		n.Comp.base().pos = pos
		out := r.resolve(n, depth)
		r.mount(out, pos, depth+1)
	}
}

func (r *Renderer) mountElement(n *VNode, pos Position, depth int) {
	n.pos = pos
	live := r.surface.CreateElement(n.Tag)

	for _, name := range sortedKeys(n.Props) {
		r.applyProp(n, live, name, n.Props[name])
	}

	if n.computed == nil {
		r.resolve(n, depth)
	}
	for _, child := range n.computed {
		end := r.surface.ChildCount(live)
		r.mount(child, r.surface.CreatePosition(live, end, end), depth+1)
	}

	r.surface.ReplaceContent(pos, live)
	r.mounted(n)
}

// applyProp binds one attribute to a freshly created live element.
func (r *Renderer) applyProp(n *VNode, live LiveNode, name string, value any) {
	if event, ok := EventName(name); ok {
		h, ok := toHandler(value)
		if !ok {
			r.logger.Warn("vdom: skipping listener with unsupported value",
				"tag", n.Tag,
				"attr", name,
				"type", typeName(value),
			)
			return
		}
		r.surface.AddEventListener(live, event, h)
		return
	}
	if name == "className" {
		name = "class"
	}
	r.surface.SetAttribute(live, name, propToString(value))
}

func (r *Renderer) mounted(n *VNode) {
	if r.pass != nil {
		r.pass.Mounted++
	}
	r.observer.NodeMounted(n)
}
