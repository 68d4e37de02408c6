package el

import (
	"reflect"
	"testing"

	"github.com/vango-dev/vrange/pkg/vdom"
)

var (
	_ vdom.VNode = VNode{}
	_ vdom.Props = Props{}
	_ vdom.Attr  = Attr{}
	_ vdom.State = State{}
)

func TestElementConstructorsMatchVDOM(t *testing.T) {
	args := []any{
		vdom.ID("root"),
		vdom.Class("one", "two"),
		"hello",
		vdom.Span("child"),
	}

	got := Div(args...)
	want := vdom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]int{1, 2, 3}, func(n, _ int) *VNode {
		if n == 2 {
			return nil
		}
		return Li(n)
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].Children[0].Text != "3" {
		t.Errorf("second item = %s, want 3", nodes[1].Children[0])
	}
}

func TestEventHelpers(t *testing.T) {
	if a := OnClick(func() {}); a.Key != "onClick" {
		t.Errorf("OnClick key = %q", a.Key)
	}
	if a := On("submit", func() {}); a.Key != "onSubmit" {
		t.Errorf("On key = %q", a.Key)
	}
}
