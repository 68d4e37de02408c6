// Package el is the dot-importable DSL for building vrange trees.
//
// It re-exports the element constructors, attribute helpers, event helpers
// and types from pkg/vdom so component code can be written as:
//
//	import . "github.com/vango-dev/vrange/el"
//
//	func (c *Counter) Render() *VNode {
//	    return Div(
//	        H1("Counter"),
//	        Span(c.State["count"]),
//	        Button(OnClick(c.add), "add"),
//	    )
//	}
package el
