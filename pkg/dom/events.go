package dom

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/vrange/pkg/vdom"
)

// Dispatch delivers an event of type typ to target and then to each of its
// ancestors. The propagation path is fixed before the first listener runs.
// It returns the number of handlers invoked.
func (d *Document) Dispatch(target *html.Node, typ string, data map[string]any) int {
	if target == nil {
		return 0
	}
	var path []*html.Node
	for n := target; n != nil; n = n.Parent {
		path = append(path, n)
	}

	called := 0
	for _, n := range path {
		handlers := d.listeners[n][typ]
		if len(handlers) == 0 {
			continue
		}
		// Handlers may re-render and register new listeners.
		snapshot := append([]vdom.EventHandler(nil), handlers...)
		for _, h := range snapshot {
			h(vdom.Event{
				Type:          typ,
				Target:        target,
				CurrentTarget: n,
				Data:          data,
			})
			called++
		}
	}
	return called
}

// Click dispatches a click event to target.
func (d *Document) Click(target *html.Node) int {
	return d.Dispatch(target, "click", nil)
}
