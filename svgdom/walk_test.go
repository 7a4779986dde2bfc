package svgdom

import "testing"

func TestWalkVisitsEveryElement(t *testing.T) {
	doc := mustParse(t, sample)

	var tags []string
	doc.Walk(func(e *Element) bool {
		tags = append(tags, e.Tag)
		return false
	})

	counts := map[string]int{}
	for _, tag := range tags {
		counts[tag]++
	}
	// Gradient stops inside defs must be visited.
	if counts["stop"] != 2 {
		t.Errorf("visited %d stops, want 2", counts["stop"])
	}
	if counts["svg"] != 1 || counts["defs"] != 1 || counts["rect"] != 1 {
		t.Errorf("unexpected visit counts: %v", counts)
	}
}

func TestWalkCountsChanges(t *testing.T) {
	doc := mustParse(t, sample)

	changed := doc.Walk(func(e *Element) bool {
		return e.Tag == "stop"
	})
	if changed != 2 {
		t.Errorf("Walk() change count = %d, want 2", changed)
	}
}

func TestWalkSurvivesRemovalDuringVisit(t *testing.T) {
	doc := mustParse(t, `<svg><g><rect/><circle/><line/></g></svg>`)

	var visited []string
	doc.Walk(func(e *Element) bool {
		visited = append(visited, e.Tag)
		if e.Tag == "rect" || e.Tag == "circle" {
			e.Detach()
			return true
		}
		return false
	})

	// Removing rect must not skip circle or line.
	want := []string{"svg", "g", "rect", "circle", "line"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited = %v, want %v", visited, want)
		}
	}

	if n := len(doc.FindAll("rect")) + len(doc.FindAll("circle")); n != 0 {
		t.Errorf("%d removed elements still present", n)
	}
}
