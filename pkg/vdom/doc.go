// Package vdom is the vrange reconciliation engine.
//
// A VNode describes a piece of UI before it is bound to a live rendering
// surface. There are three kinds: elements, text leaves and stateful
// components. Trees are built with Build or the element helpers:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    Span(count),
//	    Button(OnClick(c.add), "add"),
//	)
//
// # Mounting
//
// Render binds a tree to a container on a Surface. Every mounted element
// and text node owns a Position: a span inside a live container that
// surrounds exactly the live node it produced. Mounting into a position
// replaces whatever the span held before.
//
// # Components
//
// User components embed Base and implement Render. SetState deep-merges a
// patch into State and immediately re-renders the component. The new
// output is reconciled against the previous one:
//
//   - nodes whose tag, attributes and text are unchanged keep their live
//     node and Position, and their children are reconciled by index;
//   - any other node is mounted afresh at the old node's Position;
//   - new children beyond the old child count are appended after the last
//     old child.
//
// Reconciliation is positional. Children are never moved or removed: when
// a new child list is shorter, the surplus live children stay in place.
//
// # Concurrency
//
// A Renderer and the components it mounted are not safe for concurrent
// use. All mounting and reconciliation runs synchronously inside Render or
// SetState.
package vdom
