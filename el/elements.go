package el

import "github.com/vango-dev/vrange/pkg/vdom"

// Build and component wrapping.
var (
	Build   = vdom.Build
	Mount   = vdom.Mount
	Element = vdom.Element
	Text    = vdom.Text
	Textf   = vdom.Textf
	If      = vdom.If
	IfElse  = vdom.IfElse
	When    = vdom.When
	Repeat  = vdom.Repeat
)

// Range maps a slice to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}

// Elements.
var (
	Header   = vdom.Header
	Footer   = vdom.Footer
	Main     = vdom.Main
	Nav      = vdom.Nav
	Section  = vdom.Section
	Article  = vdom.Article
	H1       = vdom.H1
	H2       = vdom.H2
	H3       = vdom.H3
	Div      = vdom.Div
	P        = vdom.P
	Span     = vdom.Span
	Pre      = vdom.Pre
	Ul       = vdom.Ul
	Ol       = vdom.Ol
	Li       = vdom.Li
	Hr       = vdom.Hr
	A        = vdom.A
	Strong   = vdom.Strong
	Em       = vdom.Em
	Small    = vdom.Small
	Code     = vdom.Code
	Br       = vdom.Br
	Form     = vdom.Form
	Input    = vdom.Input
	Textarea = vdom.Textarea
	Select   = vdom.Select
	Option   = vdom.Option
	Button   = vdom.Button
	Label    = vdom.Label
	Table    = vdom.Table
	Tr       = vdom.Tr
	Th       = vdom.Th
	Td       = vdom.Td
	Img      = vdom.Img
)

// Attributes.
var (
	AttrOf      = vdom.AttrOf
	ID          = vdom.ID
	Class       = vdom.Class
	ClassName   = vdom.ClassName
	StyleAttr   = vdom.StyleAttr
	Data        = vdom.Data
	Role        = vdom.Role
	AriaLabel   = vdom.AriaLabel
	TitleAttr   = vdom.TitleAttr
	Href        = vdom.Href
	Src         = vdom.Src
	Name        = vdom.Name
	Value       = vdom.Value
	Type        = vdom.Type
	Placeholder = vdom.Placeholder
	Disabled    = vdom.Disabled
	Checked     = vdom.Checked
	TabIndex    = vdom.TabIndex
)

// Events.
var (
	On           = vdom.On
	OnClick      = vdom.OnClick
	OnDblClick   = vdom.OnDblClick
	OnMouseDown  = vdom.OnMouseDown
	OnMouseUp    = vdom.OnMouseUp
	OnMouseEnter = vdom.OnMouseEnter
	OnMouseLeave = vdom.OnMouseLeave
	OnKeyDown    = vdom.OnKeyDown
	OnKeyUp      = vdom.OnKeyUp
	OnInput      = vdom.OnInput
	OnChange     = vdom.OnChange
	OnSubmit     = vdom.OnSubmit
	OnFocus      = vdom.OnFocus
	OnBlur       = vdom.OnBlur
)
