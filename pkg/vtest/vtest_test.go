package vtest

import (
	"testing"

	"github.com/vango-dev/vrange/pkg/vdom"
)

type clicker struct {
	vdom.Base
}

func (c *clicker) Render() *vdom.VNode {
	n, _ := c.State["n"].(int)
	return vdom.Div(
		vdom.Span(vdom.ID("n"), n),
		vdom.Button(vdom.ID("inc"), vdom.OnClick(func() {
			c.SetState(vdom.State{"n": n + 1})
		}), "+"),
	)
}

func TestRenderToString(t *testing.T) {
	got := RenderToString(vdom.P(vdom.Class("x"), "hi"))
	if got != `<p class="x">hi</p>` {
		t.Errorf("RenderToString() = %q", got)
	}
}

func TestExpectHelpers(t *testing.T) {
	node := vdom.Div(vdom.Class("btn-primary"), vdom.Button("Save"))
	ExpectContains(t, node, "Save")
	ExpectNotContains(t, node, "Delete")
	ExpectElement(t, node, "button")
	ExpectAttribute(t, node, "class", "btn-primary")
}

func TestHarness(t *testing.T) {
	h := Mount(t, vdom.Mount(&clicker{}))
	h.ExpectText("n", "0")

	if n := h.Click("inc"); n != 1 {
		t.Errorf("Click() = %d, want 1", n)
	}
	h.Click("inc")
	h.ExpectText("n", "2")
	h.ExpectContains(`<button id="inc">+</button>`)
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate() = %q", got)
	}
}
