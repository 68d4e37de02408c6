package vdom

import (
	"fmt"
	"reflect"
	"strconv"
)

// IsSameNode reports whether next can keep prev's live node: same tag,
// same attribute names and values, and for text nodes the same content.
// Attribute values are compared by identity: functions, maps and slices
// never compare equal, so an element carrying a freshly created handler is
// always rebuilt.
func IsSameNode(prev, next *VNode) bool {
	if prev == nil || next == nil {
		return prev == next
	}
	if prev.Kind != next.Kind || prev.Tag != next.Tag {
		return false
	}
	if len(prev.Props) != len(next.Props) {
		return false
	}
	for name, value := range next.Props {
		old, ok := prev.Props[name]
		if !ok || !propsEqual(old, value) {
			return false
		}
	}
	if next.Kind == KindText && prev.Text != next.Text {
		return false
	}
	return true
}

// reconcile brings the live structure of prev up to date with next.
func (r *Renderer) reconcile(prev, next *VNode) {
	if !IsSameNode(prev, next) {
		pos := prev.pos
		r.logger.Debug("vdom: replacing node", "old", prev.String(), "new", next.String())
		if r.pass != nil {
			r.pass.Replaced++
		}
		r.observer.NodeReplaced(prev, next)
		r.mount(next, pos, 0)
		return
	}

	// The span moves to next; prev is about to be discarded with the old
	// snapshot.
	next.pos = prev.pos
	if r.pass != nil {
		r.pass.Reused++
	}
	r.observer.NodeReused(next)

	children := next.computed
	if len(children) == 0 {
		// Surplus old children are intentionally left in place.
		return
	}

	old := prev.computed
	var tail Position
	if len(old) > 0 {
		tail = old[len(old)-1].pos
	}
	for i, child := range children {
		if i < len(old) {
			r.reconcile(old[i], child)
			continue
		}
		pos := r.positionAfter(tail, next)
		r.mount(child, pos, 0)
		if r.pass != nil {
			r.pass.Appended++
		}
		r.observer.ChildAppended(child)
		r.logger.Debug("vdom: appended child", "parent", next.Tag, "child", child.String())
		tail = pos
	}
}

// positionAfter returns an empty span right after tail, or at the end of
// parent's live node when there is no previous child.
func (r *Renderer) positionAfter(tail Position, parent *VNode) Position {
	if tail != nil {
		container, offset := tail.End()
		return r.surface.CreatePosition(container, offset, offset)
	}
	live := parent.pos.Node()
	end := r.surface.ChildCount(live)
	return r.surface.CreatePosition(live, end, end)
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) (equal bool) {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	if b == nil {
		return false
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// Structs holding interfaces can still panic on ==.
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// propToString converts a prop value to its attribute form.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return "null"
	default:
		if text, ok := numberText(v); ok {
			return text
		}
		return fmt.Sprintf("%v", v)
	}
}
