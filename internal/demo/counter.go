package demo

import . "github.com/vango-dev/vrange/el"

// Counter shows a number and a button that increments it. Children passed
// to the counter are rendered below the button.
type Counter struct {
	Base
}

// NewCounter creates a counter starting at 1.
func NewCounter() *Counter {
	c := &Counter{}
	c.State = State{"num": 1}
	return c
}

// Add increments the counter.
func (c *Counter) Add() {
	num, _ := c.State["num"].(int)
	c.SetState(State{"num": num + 1})
}

func (c *Counter) Render() *VNode {
	return Div(ID("counter"),
		H1("Counter"),
		Span(ID("count"), c.State["num"]),
		Button(ID("add"), OnClick(c.Add), "add"),
		Div(c.Children),
	)
}
