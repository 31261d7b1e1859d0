package testutil

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Sternrassler/pagelinks/pkg/dom"
)

// Recorder collects the payloads of pagination-request events.
type Recorder struct {
	mu    sync.Mutex
	nodes []dom.Node
}

// Handle records el. Pass it to OnRequest.
func (r *Recorder) Handle(el dom.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes = append(r.nodes, el)
}

// Nodes returns the recorded payloads in emit order.
func (r *Recorder) Nodes() []dom.Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]dom.Node(nil), r.nodes...)
}

// Count returns the number of recorded events.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}

// Pages returns the data-page attribute of every recorded payload, or 0
// where it is missing.
func (r *Recorder) Pages() []int {
	nodes := r.Nodes()
	pages := make([]int, 0, len(nodes))
	for _, n := range nodes {
		v, _ := n.Attr("data-page")
		page, _ := strconv.Atoi(v)
		pages = append(pages, page)
	}
	return pages
}

// Last returns the most recent payload, or nil.
func (r *Recorder) Last() dom.Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[len(r.nodes)-1]
}

// AnchorByClass returns the first anchor whose parent carries class, such as
// "pagination-next". Anchors come from doc.FindAnchors(root).
func AnchorByClass(doc *dom.HTMLDocument, root dom.Node, class string) dom.Node {
	for _, a := range doc.FindAnchors(root) {
		el, ok := a.(dom.Element)
		if !ok || el.HTML().Parent == nil {
			continue
		}
		for _, attr := range el.HTML().Parent.Attr {
			if attr.Key == "class" && hasClass(attr.Val, class) {
				return a
			}
		}
	}
	return nil
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}
