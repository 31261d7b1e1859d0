package dom

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps an *html.Node. Two Elements are equal when they wrap the same node.
type Element struct {
	n *html.Node
}

// Tag returns the element name, or "" for text and comment nodes.
func (e Element) Tag() string {
	if e.n == nil || e.n.Type != html.ElementNode {
		return ""
	}
	return e.n.Data
}

// Attr returns the named attribute.
func (e Element) Attr(name string) (string, bool) {
	if e.n == nil {
		return "", false
	}
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the text content of the element.
func (e Element) Text() string {
	if e.n == nil {
		return ""
	}
	var sb strings.Builder
	collectText(e.n, &sb)
	return sb.String()
}

// HTML returns the underlying node.
func (e Element) HTML() *html.Node {
	return e.n
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// HTMLDocument is a Document backed by golang.org/x/net/html.
// It holds one live tree at a time: each Parse drops the handlers of the
// previous tree. Clicks are dispatched with Click and bubble from the target
// to its ancestors.
type HTMLDocument struct {
	mu       sync.RWMutex
	handlers map[*html.Node]ClickHandler
}

// NewHTMLDocument creates an empty document.
func NewHTMLDocument() *HTMLDocument {
	return &HTMLDocument{
		handlers: make(map[*html.Node]ClickHandler),
	}
}

// Parse parses markup as a fragment in a <div> context and returns the first
// top-level node. Further top-level nodes are discarded.
func (d *HTMLDocument) Parse(markup string) (Node, error) {
	d.mu.Lock()
	d.handlers = make(map[*html.Node]ClickHandler)
	d.mu.Unlock()

	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	if len(nodes) == 0 {
		return nil, nil
	}

	return Element{n: nodes[0]}, nil
}

// FindAnchors returns the <a> descendants of root.
func (d *HTMLDocument) FindAnchors(root Node) []Node {
	return Query(root, "a")
}

// OnClick sets the click handler of node, replacing any previous one like
// assigning onclick. Nodes not produced by an HTMLDocument are ignored.
func (d *HTMLDocument) OnClick(node Node, handler ClickHandler) {
	el, ok := node.(Element)
	if !ok || el.n == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[el.n] = handler
}

// Click dispatches a click on node and returns the resulting event.
// The node's handler runs first, then the handler of each ancestor.
// CurrentTarget is set to the node whose handler is running.
func (d *HTMLDocument) Click(node Node) *Event {
	ev := NewEvent(node)

	el, ok := node.(Element)
	if !ok || el.n == nil {
		return ev
	}

	for n := el.n; n != nil; n = n.Parent {
		d.mu.RLock()
		handler := d.handlers[n]
		d.mu.RUnlock()

		if handler == nil {
			continue
		}
		ev.CurrentTarget = Element{n: n}
		handler(ev)
	}
	ev.CurrentTarget = nil

	return ev
}

// HandlerCount returns the number of click handlers attached to node: 0 or 1.
func (d *HTMLDocument) HandlerCount(node Node) int {
	el, ok := node.(Element)
	if !ok {
		return 0
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.handlers[el.n] == nil {
		return 0
	}
	return 1
}

// Render serialises node and its descendants back to markup.
func Render(node Node) (string, error) {
	el, ok := node.(Element)
	if !ok || el.n == nil {
		return "", nil
	}

	var sb strings.Builder
	if err := html.Render(&sb, el.n); err != nil {
		return "", fmt.Errorf("render node: %w", err)
	}
	return sb.String(), nil
}

// Query returns the descendants of root with the given tag, in document order.
// root itself is not included.
func Query(root Node, tag string) []Node {
	el, ok := root.(Element)
	if !ok || el.n == nil {
		return nil
	}

	var out []Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				out = append(out, Element{n: c})
			}
			walk(c)
		}
	}
	walk(el.n)

	return out
}
