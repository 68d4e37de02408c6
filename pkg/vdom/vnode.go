package vdom

import (
	"fmt"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Stateful component instance
)

// TextTag is the tag carried by every text node.
const TextTag = "#text"

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes and event handlers.
type Props map[string]any

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name, TextTag, or the component type name
	Props    Props     // Attributes and event handlers (component props for KindComponent)
	Children []*VNode  // Child nodes as built
	Text     string    // For KindText
	Comp     Component // For KindComponent

	// computed holds the resolved children of an element. It is assigned
	// each time the element is resolved.
	computed []*VNode

	// pos is where the node is attached on the surface.
	pos Position
}

// SetAttribute stores an attribute on an element node.
func (v *VNode) SetAttribute(name string, value any) {
	if v.Kind == KindComponent {
		v.Comp.base().SetAttribute(name, value)
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[name] = value
}

// AppendChild pushes child onto the node's children.
func (v *VNode) AppendChild(child *VNode) {
	if v.Kind == KindComponent {
		v.Comp.base().AppendChild(child)
		return
	}
	v.Children = append(v.Children, child)
}

// Computed returns the resolved children assigned by the last resolve.
func (v *VNode) Computed() []*VNode {
	return v.computed
}

// Position returns the span the node is mounted at, or nil.
func (v *VNode) Position() Position {
	return v.pos
}

// Mounted reports whether the node is attached to a surface.
func (v *VNode) Mounted() bool {
	return v != nil && v.pos != nil
}

// String returns a compact, single-line description useful in logs.
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindText:
		return fmt.Sprintf("%q", v.Text)
	case KindComponent:
		return "<" + v.Tag + "/>"
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(v.Tag)
	for _, key := range sortedKeys(v.Props) {
		fmt.Fprintf(&b, " %s=%v", key, describeValue(v.Props[key]))
	}
	fmt.Fprintf(&b, ">[%d]", len(v.Children))
	return b.String()
}

func describeValue(value any) string {
	if isFunc(value) {
		return "func"
	}
	return propToString(value)
}

// Attr represents a single attribute passed to an element helper.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
