package vdom

// LiveNode is a node owned by a Surface. The engine never inspects it.
type LiveNode = any

// Position is a span inside a live container where a subtree is or will
// be attached. After content is placed in it, the span surrounds exactly
// that content.
type Position interface {
	// End returns the container and offset immediately after the span.
	End() (container LiveNode, offset int)

	// Node returns the live node the span currently surrounds, or nil if
	// the span is empty.
	Node() LiveNode
}

// Surface is the live rendering surface the engine mounts into.
type Surface interface {
	// CreateElement creates a detached element node of the given tag.
	CreateElement(tag string) LiveNode

	// CreateText creates a detached text node.
	CreateText(content string) LiveNode

	// SetAttribute sets a literal attribute on an element node.
	SetAttribute(n LiveNode, name, value string)

	// AddEventListener registers h for events named event on n.
	AddEventListener(n LiveNode, event string, h EventHandler)

	// CreatePosition returns a span covering children [start, end) of
	// container.
	CreatePosition(container LiveNode, start, end int) Position

	// ReplaceContent removes everything inside p, inserts n in its place
	// and narrows p to surround n.
	ReplaceContent(p Position, n LiveNode)

	// ChildCount returns the number of structural children of n.
	ChildCount(n LiveNode) int
}

// Event is delivered to listeners registered through on* attributes.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string

	// Target is the live node the event was dispatched to.
	Target LiveNode

	// CurrentTarget is the live node whose listener is running.
	CurrentTarget LiveNode

	// Data carries surface-specific payload (input values, keys, ...).
	Data map[string]any
}

// EventHandler handles a dispatched event.
type EventHandler func(Event)

// toHandler adapts the accepted listener shapes to an EventHandler.
func toHandler(value any) (EventHandler, bool) {
	switch h := value.(type) {
	case EventHandler:
		return h, h != nil
	case func(Event):
		return h, h != nil
	case func():
		if h == nil {
			return nil, false
		}
		return func(Event) { h() }, true
	}
	return nil, false
}
