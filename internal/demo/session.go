package demo

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/vango-dev/vrange/internal/errors"
	"github.com/vango-dev/vrange/pkg/dom"
	"github.com/vango-dev/vrange/pkg/vdom"
)

// HostDocument is the page demos are mounted into.
const HostDocument = `<!DOCTYPE html>
<html>
<head><title>vrange</title></head>
<body><div id="app">loading</div></body>
</html>`

// HostID is the id of the mount container in HostDocument.
const HostID = "app"

// Session is a demo mounted into its own document. It is not safe for
// concurrent use.
type Session struct {
	Demo     Demo
	Doc      *dom.Document
	Host     *html.Node
	Root     *vdom.VNode
	Renderer *vdom.Renderer
}

// Start parses source (HostDocument when empty), finds the element with id
// HostID and mounts the named demo into it.
func Start(name, source string, opts ...vdom.RenderOption) (*Session, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if source == "" {
		source = HostDocument
	}
	doc, err := dom.ParseString(source)
	if err != nil {
		return nil, errors.FromError(err, "E302")
	}
	host := doc.GetElementByID(HostID)
	if host == nil {
		return nil, errors.New("E302").
			WithDetail(fmt.Sprintf("no element with id %q in host document", HostID))
	}

	root := d.Root()
	r := vdom.Render(doc, root, host, opts...)
	return &Session{Demo: d, Doc: doc, Host: host, Root: root, Renderer: r}, nil
}

// Dispatch sends an event to the element with the given id and returns the
// number of handlers that ran.
func (s *Session) Dispatch(id, event string, data map[string]any) (int, error) {
	target := s.Doc.GetElementByID(id)
	if target == nil {
		return 0, errors.New("E303").
			WithDetail(fmt.Sprintf("no element with id %q", id))
	}
	return s.Doc.Dispatch(target, event, data), nil
}

// Click clicks the demo's target element n times.
func (s *Session) Click(n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.Dispatch(s.Demo.Target, "click", nil); err != nil {
			return err
		}
	}
	return nil
}

// HTML serializes the whole document.
func (s *Session) HTML() string {
	return dom.OuterHTML(s.Doc.Root())
}

// AppHTML serializes the content of the host element.
func (s *Session) AppHTML() string {
	return dom.InnerHTML(s.Host)
}
