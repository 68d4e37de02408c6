package demo

import (
	"fmt"

	. "github.com/vango-dev/vrange/el"
)

// TodoList appends an item per click. The item text comes from the event's
// "text" field when present.
type TodoList struct {
	Base
}

// NewTodoList creates an empty list.
func NewTodoList() *TodoList {
	t := &TodoList{}
	t.State = State{"items": []string{}, "next": 1}
	return t
}

// Items returns the current items.
func (t *TodoList) Items() []string {
	items, _ := t.State["items"].([]string)
	return items
}

// Add appends an item.
func (t *TodoList) Add(e Event) {
	next, _ := t.State["next"].(int)
	text, _ := e.Data["text"].(string)
	if text == "" {
		text = fmt.Sprintf("item %d", next)
	}

	items := append(append([]string(nil), t.Items()...), text)
	t.SetState(State{"items": items, "next": next + 1})
}

func (t *TodoList) Render() *VNode {
	items := t.Items()
	return Div(ID("todo"),
		H2("Todo"),
		Ul(ID("items"), Range(items, func(item string, _ int) *VNode {
			return Li(item)
		})),
		Button(ID("add-item"), OnClick(t.Add), "add"),
		P(ID("summary"), fmt.Sprintf("%d items", len(items))),
	)
}
