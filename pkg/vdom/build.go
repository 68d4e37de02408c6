package vdom

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/vango-dev/vrange/internal/errors"
)

// Factory creates a fresh component instance.
type Factory func() Component

// Build creates a node of the given kind.
//
// kind is either a tag name or a component factory: a Factory, a
// func() Component, or any func() *T where *T implements Component.
// Attributes are copied with SetAttribute. Children may be nested slices,
// nil (dropped), strings and numbers (converted to text nodes), *VNode
// values or Component values.
func Build(kind any, attrs Props, children ...any) *VNode {
	node := newNode(kind)
	for name, value := range attrs {
		node.SetAttribute(name, value)
	}
	appendChildren(node, children)
	return node
}

func newNode(kind any) *VNode {
	if tag, ok := kind.(string); ok {
		return &VNode{
			Kind:     KindElement,
			Tag:      tag,
			Props:    make(Props),
			Children: make([]*VNode, 0),
		}
	}

	factory, ok := factoryOf(kind)
	if !ok {
		panic(errors.New("E102").
			WithDetailf("Build received kind of type %T", kind).
			WithCaller(2))
	}
	comp := factory()
	if isNilComponent(comp) {
		panic(errors.New("E105").
			WithDetailf("factory %T returned nil", kind).
			WithCaller(2))
	}
	return componentNode(comp)
}

var componentType = reflect.TypeOf((*Component)(nil)).Elem()

// factoryOf recognizes the supported component factory shapes.
func factoryOf(kind any) (func() Component, bool) {
	switch f := kind.(type) {
	case Factory:
		return f, f != nil
	case func() Component:
		return f, f != nil
	}

	v := reflect.ValueOf(kind)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, false
	}
	t := v.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 || !t.Out(0).Implements(componentType) {
		return nil, false
	}
	return func() Component {
		out := v.Call(nil)[0]
		if out.Kind() == reflect.Pointer && out.IsNil() {
			return nil
		}
		return out.Interface().(Component)
	}, true
}

func isNilComponent(comp Component) bool {
	if comp == nil {
		return true
	}
	rv := reflect.ValueOf(comp)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// componentNode wraps a component instance in a node.
func componentNode(comp Component) *VNode {
	b := comp.base()
	b.self = comp
	if b.Props == nil {
		b.Props = make(Props)
	}
	return &VNode{
		Kind:  KindComponent,
		Tag:   typeName(comp),
		Props: b.Props,
		Comp:  comp,
	}
}

// Mount wraps an already constructed component so it can be passed to
// Render or used as a child.
func Mount(comp Component) *VNode {
	return componentNode(comp)
}

func appendChildren(node *VNode, items []any) {
	for _, item := range items {
		switch v := item.(type) {
		case nil, bool:
			continue
		case *VNode:
			if v != nil {
				node.AppendChild(v)
			}
		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.AppendChild(child)
				}
			}
		case []any:
			appendChildren(node, v)
		case string:
			node.AppendChild(Text(v))
		case Attr:
			if v.Key != "" {
				node.SetAttribute(v.Key, v.Value)
			}
		case Component:
			if isNilComponent(v) {
				continue
			}
			node.AppendChild(componentNode(v))
		default:
			if text, ok := numberText(v); ok {
				node.AppendChild(Text(text))
				continue
			}
			rv := reflect.ValueOf(v)
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				nested := make([]any, rv.Len())
				for i := range nested {
					nested[i] = rv.Index(i).Interface()
				}
				appendChildren(node, nested)
				continue
			}
			if s, ok := v.(fmt.Stringer); ok {
				node.AppendChild(Text(s.String()))
				continue
			}
			panic(errors.New("E106").
				WithDetailf("child of type %T cannot be appended to <%s>", v, node.Tag).
				WithCaller(3))
		}
	}
}

// numberText converts Go numeric values to their text form.
func numberText(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}
