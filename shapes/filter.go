package shapes

import "github.com/tsawler/dieline/svgdom"

// Stats summarizes a geometric filter pass.
type Stats struct {
	Kept         int
	Removed      int
	ByKind       map[Kind]int
	RemovedByTag map[string]int
}

// Filter prunes every element the classifier rejects, keeping container
// structure intact. Containers that end up empty are left in place; the
// document stays valid either way.
func Filter(doc *svgdom.Document, config Config) Stats {
	c := NewClassifier()
	c.Configure(config)

	stats := Stats{
		ByKind:       map[Kind]int{},
		RemovedByTag: map[string]int{},
	}

	doc.Walk(func(e *svgdom.Element) bool {
		if e == doc.Root || IsContainer(e.Tag) {
			return false
		}
		kind, keep := c.Classify(e)
		stats.ByKind[kind]++
		if keep {
			stats.Kept++
			return false
		}
		stats.Removed++
		stats.RemovedByTag[e.Tag]++
		e.Detach()
		return true
	})

	return stats
}
