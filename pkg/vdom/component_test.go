package vdom

import (
	"reflect"
	"testing"
)

func TestMergeState(t *testing.T) {
	tests := []struct {
		name   string
		target State
		patch  State
		want   State
	}{
		{
			name:   "nested maps merge",
			target: State{"a": map[string]any{"b": 1, "c": 3}},
			patch:  State{"a": map[string]any{"b": 2}},
			want:   State{"a": map[string]any{"b": 2, "c": 3}},
		},
		{
			name:   "slices overwrite",
			target: State{"a": map[string]any{"x": 1}},
			patch:  State{"a": []any{1, 2}},
			want:   State{"a": []any{1, 2}},
		},
		{
			name:   "map replaces scalar",
			target: State{"a": 1},
			patch:  State{"a": map[string]any{"b": 2}},
			want:   State{"a": map[string]any{"b": 2}},
		},
		{
			name:   "new keys added",
			target: State{"a": 1},
			patch:  State{"b": "two"},
			want:   State{"a": 1, "b": "two"},
		},
		{
			name:   "empty patch",
			target: State{"a": 1},
			patch:  State{},
			want:   State{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			MergeState(tt.target, tt.patch)
			if !reflect.DeepEqual(tt.target, tt.want) {
				t.Errorf("MergeState() = %v, want %v", tt.target, tt.want)
			}
		})
	}
}

func TestMergeStateInPlace(t *testing.T) {
	inner := map[string]any{"b": 1}
	target := State{"a": inner}
	MergeState(target, State{"a": map[string]any{"b": 2}})
	if inner["b"] != 2 {
		t.Errorf("inner map = %v, want it mutated in place", inner)
	}
}

func TestBaseSetAttributeAndChildren(t *testing.T) {
	var b Base
	b.SetAttribute("title", "x")
	b.AppendChild(Text("c"))
	if b.Props["title"] != "x" || len(b.Children) != 1 {
		t.Errorf("Base = %+v", b)
	}
	if b.Mounted() || b.Snapshot() != nil || b.Position() != nil {
		t.Error("unmounted base should report no render state")
	}
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeString(t *testing.T) {
	n := Div(ID("x"), OnClick(func() {}), "a")
	if got := n.String(); got != "<div id=x onClick=func>[1]" {
		t.Errorf("String() = %q", got)
	}
	if got := Text("hi").String(); got != `"hi"` {
		t.Errorf("String() = %q", got)
	}
}
