// Package demo holds the sample components served by the vrange CLI and
// inspector.
package demo

import (
	"fmt"
	"sort"

	. "github.com/vango-dev/vrange/el"
	"github.com/vango-dev/vrange/internal/errors"
)

// Demo describes a mountable sample.
type Demo struct {
	Name        string
	Description string

	// Root builds the root node, usually a component built with props.
	Root func() *VNode

	// Target is the id of the element clicked by "vrange demo".
	Target string
}

var registry = map[string]Demo{
	"counter": {
		Name:        "counter",
		Description: "heading, counter span and an add button",
		Root: func() *VNode {
			return Build(NewCounter, Props{"id": "a", "className": "b"}, Em("child content"))
		},
		Target: "add",
	},
	"todo": {
		Name:        "todo",
		Description: "list that grows by one item per click",
		Root: func() *VNode {
			return Mount(NewTodoList())
		},
		Target: "add-item",
	},
}

// Lookup returns the named demo.
func Lookup(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return Demo{}, errors.New("E301").
			WithDetail(fmt.Sprintf("no demo named %q", name)).
			WithSuggestion(fmt.Sprintf("Available demos: %v", Names()))
	}
	return d, nil
}

// Names lists registered demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
