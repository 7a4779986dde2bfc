package svgdom

// VisitFunc is called once per element during a walk. It returns true if it
// changed the element, which Walk tallies.
type VisitFunc func(*Element) bool

// Walk visits every element in the document in pre-order, including the
// root and everything inside defs, gradient, and pattern subtrees, and
// returns the number of elements the visitor reported as changed.
//
// The visitor may remove the element it is visiting (or any of that
// element's descendants); each element's child list is snapshotted before
// descent so removal does not skip siblings.
func (d *Document) Walk(visit VisitFunc) int {
	if d == nil || d.Root == nil {
		return 0
	}
	return walk(d.Root, visit)
}

func walk(e *Element, visit VisitFunc) int {
	changed := 0
	if visit(e) {
		changed++
	}
	for _, c := range append([]*Element(nil), e.children...) {
		changed += walk(c, visit)
	}
	return changed
}

// FindAll returns every element in the document whose local tag name equals
// tag, in document order.
func (d *Document) FindAll(tag string) []*Element {
	var out []*Element
	d.Walk(func(e *Element) bool {
		if e.Tag == tag {
			out = append(out, e)
		}
		return false
	})
	return out
}
