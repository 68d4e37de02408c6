package el

import "github.com/vango-dev/vrange/pkg/vdom"

type (
	VNode        = vdom.VNode
	VKind        = vdom.VKind
	Props        = vdom.Props
	Attr         = vdom.Attr
	State        = vdom.State
	Base         = vdom.Base
	Component    = vdom.Component
	Factory      = vdom.Factory
	Event        = vdom.Event
	EventHandler = vdom.EventHandler
)
