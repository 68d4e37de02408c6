package observe

import "github.com/vango-dev/vrange/pkg/vdom"

type multi []vdom.Observer

// Multi returns an observer that forwards to each non-nil observer in order.
func Multi(observers ...vdom.Observer) vdom.Observer {
	m := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) NodeMounted(n *vdom.VNode) {
	for _, o := range m {
		o.NodeMounted(n)
	}
}

func (m multi) NodeReused(n *vdom.VNode) {
	for _, o := range m {
		o.NodeReused(n)
	}
}

func (m multi) NodeReplaced(prev, next *vdom.VNode) {
	for _, o := range m {
		o.NodeReplaced(prev, next)
	}
}

func (m multi) ChildAppended(n *vdom.VNode) {
	for _, o := range m {
		o.ChildAppended(n)
	}
}

func (m multi) PassFinished(p vdom.Pass) {
	for _, o := range m {
		o.PassFinished(p)
	}
}
