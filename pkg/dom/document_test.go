package dom

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/vrange/pkg/vdom"
)

func TestNewHasBody(t *testing.T) {
	d := New()
	body := d.Body()
	if body == nil {
		t.Fatal("Body() = nil")
	}
	if d.ChildCount(body) != 0 {
		t.Errorf("ChildCount(body) = %d, want 0", d.ChildCount(body))
	}
}

func TestGetElementByID(t *testing.T) {
	d, err := ParseString(`<div id="app"><span id="inner">x</span></div>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if n := d.GetElementByID("inner"); n == nil || n.Data != "span" {
		t.Errorf("GetElementByID(inner) = %v, want span", n)
	}
	if n := d.GetElementByID("missing"); n != nil {
		t.Errorf("GetElementByID(missing) = %v, want nil", n)
	}
}

func TestSetAttributeReplaces(t *testing.T) {
	d := New()
	n := d.CreateElement("div").(*html.Node)
	d.SetAttribute(n, "class", "a")
	d.SetAttribute(n, "class", "b")
	if len(n.Attr) != 1 {
		t.Fatalf("len(Attr) = %d, want 1", len(n.Attr))
	}
	if got := Attr(n, "class"); got != "b" {
		t.Errorf("class = %q, want b", got)
	}
}

func TestReplaceContentWholeContainer(t *testing.T) {
	d, _ := ParseString(`<div id="app"><p>one</p><p>two</p></div>`)
	app := d.GetElementByID("app")

	pos := d.CreatePosition(app, 0, d.ChildCount(app))
	span := d.CreateElement("span")
	d.ReplaceContent(pos, span)

	if got := InnerHTML(app); got != "<span></span>" {
		t.Errorf("InnerHTML = %q, want <span></span>", got)
	}
	if pos.Node() != span {
		t.Error("range should surround the inserted node")
	}
	container, offset := pos.End()
	if container != app || offset != 1 {
		t.Errorf("End() = (%v, %d), want (app, 1)", container, offset)
	}
}

func TestRangeTracksNode(t *testing.T) {
	d := New()
	body := d.Body()

	first := d.CreatePosition(body, 0, 0)
	d.ReplaceContent(first, d.CreateText("b"))

	// Insert a sibling in front; the first range must follow its node.
	before := d.CreatePosition(body, 0, 0)
	d.ReplaceContent(before, d.CreateText("a"))

	_, offset := first.End()
	if offset != 2 {
		t.Errorf("End() offset = %d, want 2", offset)
	}

	d.ReplaceContent(first, d.CreateText("c"))
	if got := TextContent(body); got != "ac" {
		t.Errorf("TextContent = %q, want ac", got)
	}
}

func TestEmptyRangeInsertsAtOffset(t *testing.T) {
	d, _ := ParseString(`<ul id="list"><li>1</li><li>3</li></ul>`)
	list := d.GetElementByID("list")

	li := d.CreateElement("li")
	d.ReplaceContent(d.CreatePosition(list, 1, 1), li)
	d.ReplaceContent(d.CreatePosition(li, 0, 0), d.CreateText("2"))

	want := "<li>1</li><li>2</li><li>3</li>"
	if got := InnerHTML(list); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestReplaceContentDropsListeners(t *testing.T) {
	d := New()
	body := d.Body()
	btn := d.CreateElement("button").(*html.Node)
	d.AddEventListener(btn, "click", func(vdom.Event) {})

	pos := d.CreatePosition(body, 0, 0)
	d.ReplaceContent(pos, btn)
	if d.Listeners(btn, "click") != 1 {
		t.Fatalf("Listeners = %d, want 1", d.Listeners(btn, "click"))
	}

	d.ReplaceContent(pos, d.CreateText("gone"))
	if d.Listeners(btn, "click") != 0 {
		t.Errorf("Listeners after replace = %d, want 0", d.Listeners(btn, "click"))
	}
}

func TestDispatchBubbles(t *testing.T) {
	d := New()
	body := d.Body()
	outer := d.CreateElement("div").(*html.Node)
	inner := d.CreateElement("button").(*html.Node)
	outer.AppendChild(inner)
	d.ReplaceContent(d.CreatePosition(body, 0, 0), outer)

	var order []string
	d.AddEventListener(inner, "click", func(e vdom.Event) {
		if e.Target != inner {
			t.Error("Target should be the button")
		}
		order = append(order, "inner")
	})
	d.AddEventListener(outer, "click", func(e vdom.Event) {
		if e.CurrentTarget != outer {
			t.Error("CurrentTarget should be the div")
		}
		order = append(order, "outer")
	})

	if n := d.Click(inner); n != 2 {
		t.Errorf("Click() = %d, want 2", n)
	}
	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Errorf("order = %v, want [inner outer]", order)
	}
	if n := d.Dispatch(inner, "input", nil); n != 0 {
		t.Errorf("Dispatch(input) = %d, want 0", n)
	}
}

func TestStats(t *testing.T) {
	d := New()
	d.CreateElement("div")
	d.CreateElement("p")
	d.CreateText("x")
	d.ReplaceContent(d.CreatePosition(d.Body(), 0, 0), d.CreateText("y"))

	want := Stats{Elements: 2, Texts: 2, Replacements: 1}
	if got := d.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
