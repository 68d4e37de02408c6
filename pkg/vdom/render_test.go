package vdom_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/vrange/internal/errors"
	"github.com/vango-dev/vrange/pkg/dom"
	"github.com/vango-dev/vrange/pkg/vdom"
)

type passLog struct {
	vdom.NopObserver
	passes []vdom.Pass
}

func (p *passLog) PassFinished(pass vdom.Pass) { p.passes = append(p.passes, pass) }

func (p *passLog) last() vdom.Pass {
	if len(p.passes) == 0 {
		return vdom.Pass{}
	}
	return p.passes[len(p.passes)-1]
}

type counter struct {
	vdom.Base
}

func newCounter() *counter {
	c := &counter{}
	c.State = vdom.State{"count": 0}
	return c
}

func (c *counter) add() {
	c.SetState(vdom.State{"count": c.State["count"].(int) + 1})
}

func (c *counter) Render() *vdom.VNode {
	return vdom.Div(vdom.ID("counter"),
		vdom.H1("Counter"),
		vdom.Span(vdom.Class("count"), c.State["count"]),
		vdom.Button(vdom.OnClick(c.add), "add"),
	)
}

type static struct {
	vdom.Base
}

func (s *static) Render() *vdom.VNode {
	return vdom.Div(vdom.Class("box"), vdom.Span("a"), vdom.Span("b"))
}

type switcher struct {
	vdom.Base
}

func (s *switcher) Render() *vdom.VNode {
	return vdom.Build(s.State["tag"].(string), nil, "x")
}

type list struct {
	vdom.Base
}

func (l *list) Render() *vdom.VNode {
	items, _ := l.State["items"].([]string)
	return vdom.Ul(vdom.Range(items, func(item string, _ int) *vdom.VNode {
		return vdom.Li(item)
	}))
}

func newList(items ...string) *list {
	l := &list{}
	l.State = vdom.State{"items": items}
	return l
}

func mount(t *testing.T, comp vdom.Component, opts ...vdom.RenderOption) (*dom.Document, *html.Node) {
	t.Helper()
	doc, err := dom.ParseString(`<div id="app"><p>placeholder</p></div>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	app := doc.GetElementByID("app")
	vdom.Render(doc, vdom.Mount(comp), app, opts...)
	return doc, app
}

func expectPanicCode(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic = %v, want error with code %s", r, code)
		}
		if got := errors.Code(err); got != code {
			t.Fatalf("panic code = %q, want %q (%v)", got, code, err)
		}
	}()
	fn()
}

func TestRenderReplacesContainerContent(t *testing.T) {
	_, app := mount(t, newCounter())

	want := `<div id="counter"><h1>Counter</h1><span class="count">0</span><button>add</button></div>`
	if got := dom.InnerHTML(app); got != want {
		t.Errorf("InnerHTML = %q\nwant %q", got, want)
	}
}

func TestRenderElementTree(t *testing.T) {
	doc := dom.New()
	body := doc.Body()
	root := vdom.Ul(vdom.ClassName("items"), vdom.Li("one"), vdom.Li(2))

	vdom.Render(doc, root, body)

	want := `<ul class="items"><li>one</li><li>2</li></ul>`
	if got := dom.InnerHTML(body); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
	if !root.Mounted() || root.Position().Node() != body.FirstChild {
		t.Error("root should be mounted around the ul")
	}
}

func TestClickUpdatesCounter(t *testing.T) {
	obs := &passLog{}
	c := newCounter()
	doc, app := mount(t, c, vdom.WithObserver(obs))

	div := doc.GetElementByID("counter")
	h1 := doc.ElementsByTag("h1")[0]
	span := doc.ElementsByTag("span")[0]
	button := doc.ElementsByTag("button")[0]

	if n := doc.Click(button); n != 1 {
		t.Fatalf("Click() handlers = %d, want 1", n)
	}

	want := `<div id="counter"><h1>Counter</h1><span class="count">1</span><button>add</button></div>`
	if got := dom.InnerHTML(app); got != want {
		t.Errorf("InnerHTML = %q\nwant %q", got, want)
	}
	if doc.GetElementByID("counter") != div {
		t.Error("container div should keep its live node")
	}
	if doc.ElementsByTag("h1")[0] != h1 || doc.ElementsByTag("span")[0] != span {
		t.Error("unchanged elements should keep their live nodes")
	}
	// A fresh handler makes the button differ, so it is rebuilt.
	newButton := doc.ElementsByTag("button")[0]
	if newButton == button {
		t.Error("button should be replaced")
	}
	if doc.Listeners(button, "click") != 0 || doc.Listeners(newButton, "click") != 1 {
		t.Error("listener should move to the new button")
	}

	p := obs.last()
	if p.Phase != vdom.PhaseUpdate {
		t.Errorf("Phase = %q, want update", p.Phase)
	}
	if p.Reused != 4 || p.Replaced != 2 || p.Mounted != 3 || p.Appended != 0 {
		t.Errorf("pass = %+v, want reused 4, replaced 2, mounted 3", p)
	}

	doc.Click(newButton)
	doc.Click(doc.ElementsByTag("button")[0])
	if got := c.State["count"]; got != 3 {
		t.Errorf("count = %v, want 3", got)
	}
	if got := dom.TextContent(doc.ElementsByTag("span")[0]); got != "3" {
		t.Errorf("span text = %q, want 3", got)
	}
}

func TestIdenticalRerenderReusesEverything(t *testing.T) {
	obs := &passLog{}
	s := &static{}
	doc, app := mount(t, s, vdom.WithObserver(obs))
	before := dom.InnerHTML(app)
	spans := doc.ElementsByTag("span")
	created := doc.Stats()

	s.SetState(vdom.State{})

	if got := dom.InnerHTML(app); got != before {
		t.Errorf("InnerHTML = %q, want %q", got, before)
	}
	after := doc.ElementsByTag("span")
	if after[0] != spans[0] || after[1] != spans[1] {
		t.Error("spans should keep their live nodes")
	}
	if doc.Stats() != created {
		t.Errorf("Stats = %+v, want %+v", doc.Stats(), created)
	}
	if p := obs.last(); p.Reused != 5 || p.Mounted != 0 || p.Replaced != 0 {
		t.Errorf("pass = %+v, want 5 reused and nothing mounted", p)
	}
}

func TestKindChangeReplacesAtSamePosition(t *testing.T) {
	s := &switcher{}
	s.State = vdom.State{"tag": "div"}
	doc, app := mount(t, s)

	s.SetState(vdom.State{"tag": "span"})

	if got := dom.InnerHTML(app); got != "<span>x</span>" {
		t.Errorf("InnerHTML = %q, want <span>x</span>", got)
	}
	if doc.ChildCount(app) != 1 {
		t.Errorf("ChildCount = %d, want 1", doc.ChildCount(app))
	}
	if s.Position().Node() != app.FirstChild {
		t.Error("component position should surround the new span")
	}
}

func TestAttributeChangeRebuildsElement(t *testing.T) {
	doc := dom.New()
	body := doc.Body()
	c := &attrs{}
	c.State = vdom.State{"class": "a"}
	vdom.Render(doc, vdom.Mount(c), body)
	old := body.FirstChild

	c.SetState(vdom.State{"class": "b"})

	if body.FirstChild == old {
		t.Error("element with a changed attribute should be rebuilt")
	}
	if got := dom.Attr(body.FirstChild, "class"); got != "b" {
		t.Errorf("class = %q, want b", got)
	}
}

type attrs struct {
	vdom.Base
}

func (a *attrs) Render() *vdom.VNode {
	return vdom.P(vdom.Class(a.State["class"].(string)), "text")
}

func TestChildrenAreAppended(t *testing.T) {
	obs := &passLog{}
	l := newList("A", "B")
	doc, app := mount(t, l, vdom.WithObserver(obs))
	items := doc.ElementsByTag("li")

	l.SetState(vdom.State{"items": []string{"A", "X", "C"}})

	want := "<ul><li>A</li><li>X</li><li>C</li></ul>"
	if got := dom.InnerHTML(app); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
	now := doc.ElementsByTag("li")
	if now[0] != items[0] || now[1] != items[1] {
		t.Error("existing items should keep their live nodes")
	}
	if p := obs.last(); p.Appended != 1 {
		t.Errorf("Appended = %d, want 1", p.Appended)
	}
}

func TestAppendIntoEmptyList(t *testing.T) {
	l := newList()
	_, app := mount(t, l)

	l.SetState(vdom.State{"items": []string{"A", "B"}})

	want := "<ul><li>A</li><li>B</li></ul>"
	if got := dom.InnerHTML(app); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

type blank struct {
	vdom.Base
}

func (b *blank) Render() *vdom.VNode {
	return vdom.P(b.State["x"])
}

func TestSetStateOnNilStateAdoptsPatch(t *testing.T) {
	b := &blank{}
	_, app := mount(t, b)
	if got := dom.InnerHTML(app); got != "<p></p>" {
		t.Fatalf("initial InnerHTML = %q, want %q", got, "<p></p>")
	}

	b.SetState(vdom.State{"x": 7})

	if len(b.State) != 1 || b.State["x"] != 7 {
		t.Errorf("State = %v, want map[x:7]", b.State)
	}
	if got := dom.InnerHTML(app); got != "<p>7</p>" {
		t.Errorf("InnerHTML = %q, want %q", got, "<p>7</p>")
	}
}

func TestSurplusChildrenAreKept(t *testing.T) {
	l := newList("A", "B", "C")
	_, app := mount(t, l)

	l.SetState(vdom.State{"items": []string{"A"}})
	want := "<ul><li>A</li><li>B</li><li>C</li></ul>"
	if got := dom.InnerHTML(app); got != want {
		t.Errorf("shorter list: InnerHTML = %q, want %q", got, want)
	}

	l.SetState(vdom.State{"items": []string{}})
	if got := dom.InnerHTML(app); got != want {
		t.Errorf("empty list: InnerHTML = %q, want %q", got, want)
	}
}

type parent struct {
	vdom.Base
	child *counter
}

func (p *parent) Render() *vdom.VNode {
	return vdom.Section(vdom.H2("parent"), vdom.Mount(p.child))
}

func TestNestedComponentSetState(t *testing.T) {
	p := &parent{child: newCounter()}
	doc, _ := mount(t, p)
	section := doc.ElementsByTag("section")[0]

	if !p.child.Mounted() {
		t.Fatal("nested component should be mounted")
	}
	p.child.add()

	if got := dom.TextContent(doc.ElementsByTag("span")[0]); got != "1" {
		t.Errorf("span text = %q, want 1", got)
	}
	if doc.ElementsByTag("section")[0] != section {
		t.Error("parent element should be untouched")
	}
	if p.child.Position().Node() != doc.GetElementByID("counter") {
		t.Error("nested position should surround the child's element")
	}
}

func TestClassNameAndListenerValues(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	doc := dom.New()
	body := doc.Body()

	clicked := false
	root := vdom.Div(
		vdom.ClassName("wrap"),
		vdom.AttrOf("onClick", "alert(1)"),
		vdom.Button(vdom.On("click", func(e vdom.Event) { clicked = e.Type == "click" }), "go"),
	)
	vdom.Render(doc, root, body, vdom.WithLogger(logger))

	div := body.FirstChild
	if got := dom.Attr(div, "class"); got != "wrap" {
		t.Errorf("class = %q, want wrap", got)
	}
	if dom.Attr(div, "onClick") != "" || doc.Listeners(div, "click") != 0 {
		t.Error("string listener should be skipped")
	}
	if !strings.Contains(logs.String(), "unsupported value") {
		t.Errorf("expected a warning, got %q", logs.String())
	}

	doc.Click(div.FirstChild)
	if !clicked {
		t.Error("button listener should run")
	}
}

func TestSetStateBeforeMountPanics(t *testing.T) {
	expectPanicCode(t, "E101", func() { newCounter().add() })
}

type loop struct {
	vdom.Base
}

func (l *loop) Render() *vdom.VNode { return vdom.Mount(&loop{}) }

func TestRunawayRecursionPanics(t *testing.T) {
	expectPanicCode(t, "E103", func() {
		mount(t, &loop{}, vdom.WithMaxDepth(16))
	})
}

type empty struct {
	vdom.Base
}

func (e *empty) Render() *vdom.VNode { return nil }

func TestNilRenderPanics(t *testing.T) {
	expectPanicCode(t, "E104", func() { mount(t, &empty{}) })
}

func TestIsSameNode(t *testing.T) {
	handler := func() {}
	tests := []struct {
		name string
		a, b *vdom.VNode
		want bool
	}{
		{"same element", vdom.Div(vdom.ID("x")), vdom.Div(vdom.ID("x")), true},
		{"children ignored", vdom.Div("a"), vdom.Div("b", "c"), true},
		{"different tag", vdom.Div(), vdom.Span(), false},
		{"attr count", vdom.Div(vdom.ID("x")), vdom.Div(), false},
		{"attr value", vdom.Div(vdom.ID("x")), vdom.Div(vdom.ID("y")), false},
		{"attr name", vdom.Div(vdom.ID("x")), vdom.Div(vdom.Class("x")), false},
		{"int vs string", vdom.Div(vdom.Value(1)), vdom.Div(vdom.Value("1")), false},
		{"func never equal", vdom.Div(vdom.OnClick(handler)), vdom.Div(vdom.OnClick(handler)), false},
		{"same text", vdom.Text("a"), vdom.Text("a"), true},
		{"different text", vdom.Text("a"), vdom.Text("b"), false},
		{"text vs element", vdom.Text("a"), vdom.Div(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vdom.IsSameNode(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSameNode() = %v, want %v", got, tt.want)
			}
		})
	}
}
