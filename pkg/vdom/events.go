package vdom

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EventName maps an on<EventName> attribute to the event it listens for:
// the part after "on" with its first character lower-cased.
// onClick becomes click and onDblClick becomes dblClick.
func EventName(attr string) (string, bool) {
	if len(attr) <= 2 || !strings.EqualFold(attr[:2], "on") {
		return "", false
	}
	rest := attr[2:]
	first, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(first)) + rest[size:], true
}

// On binds handler to the named event. The handler may be a func(),
// a func(Event) or an EventHandler.
func On(event string, handler any) Attr {
	if event == "" {
		return Attr{}
	}
	first, size := utf8.DecodeRuneInString(event)
	return attr("on"+string(unicode.ToUpper(first))+event[size:], handler)
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return attr("onClick", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Attr { return attr("onDblClick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Attr { return attr("onMousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Attr { return attr("onMouseup", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return attr("onMouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Attr { return attr("onMouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return attr("onKeydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return attr("onKeyup", handler) }

// Form events

// OnInput handles input events.
func OnInput(handler any) Attr { return attr("onInput", handler) }

// OnChange handles change events.
func OnChange(handler any) Attr { return attr("onChange", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Attr { return attr("onSubmit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return attr("onFocus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return attr("onBlur", handler) }
