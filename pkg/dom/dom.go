// Package dom abstracts the element tree a pagination control is mounted into.
//
// The pagination logic only needs three capabilities from its environment:
// turning markup into a tree, finding the anchors in that tree and attaching
// click handlers to them. Document captures exactly that, so the link logic can
// be exercised without a live browser. HTMLDocument implements it on top of
// golang.org/x/net/html and can dispatch synthetic clicks.
package dom

// Node is an element (or text node) in a parsed tree.
type Node interface {
	// Tag returns the lower-case element name, or "" for non-element nodes.
	Tag() string

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)

	// Text returns the concatenated text content of the node and its descendants.
	Text() string
}

// ClickHandler is invoked when a node is clicked.
type ClickHandler func(ev *Event)

// Event describes one click dispatched to a node.
type Event struct {
	// Target is the node the click was dispatched to.
	Target Node

	// CurrentTarget is the node whose handler is running. It differs from
	// Target while the click bubbles through ancestors.
	CurrentTarget Node

	defaultPrevented bool
}

// NewEvent creates a click event for target.
func NewEvent(target Node) *Event {
	return &Event{Target: target}
}

// PreventDefault suppresses the environment's default action (navigation).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Document is the rendering environment capability.
type Document interface {
	// Parse materialises markup into a tree and returns its first top-level
	// node. Empty markup yields a nil Node and no error. Handlers bound to
	// earlier trees are released.
	Parse(markup string) (Node, error)

	// FindAnchors returns every <a> element within root, in document order.
	FindAnchors(root Node) []Node

	// OnClick sets the click handler of node, replacing any previous one.
	OnClick(node Node, handler ClickHandler)
}
