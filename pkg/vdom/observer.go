package vdom

import "time"

// Pass phases.
const (
	PhaseRender = "render"
	PhaseUpdate = "update"
)

// Pass summarizes one Render or SetState pass.
type Pass struct {
	Phase     string
	Component string
	Start     time.Time
	Duration  time.Duration

	Mounted  int // element and text nodes given a fresh live node
	Reused   int // nodes that kept their live node
	Replaced int // subtrees mounted over an old node's position
	Appended int // children mounted after the previous last child
}

// Observer receives reconciliation decisions as they happen.
// Callbacks run synchronously inside the pass and must not call back into
// the renderer.
type Observer interface {
	NodeMounted(n *VNode)
	NodeReused(n *VNode)
	NodeReplaced(prev, next *VNode)
	ChildAppended(n *VNode)
	PassFinished(p Pass)
}

// NopObserver ignores everything. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) NodeMounted(*VNode)       {}
func (NopObserver) NodeReused(*VNode)        {}
func (NopObserver) NodeReplaced(_, _ *VNode) {}
func (NopObserver) ChildAppended(*VNode)     {}
func (NopObserver) PassFinished(Pass)        {}
