// Package dom is an in-memory live surface for the vdom engine.
//
// Documents are trees of golang.org/x/net/html nodes. Event listeners live
// in a side table keyed by node, and Dispatch bubbles an event from its
// target up through the target's ancestors.
//
// A Range starts out as an offset span [start, end) of a container. Once
// content is placed in it, the range tracks the node it surrounds, so its
// offsets stay correct when siblings are inserted before it.
//
// Documents are not safe for concurrent use.
package dom
