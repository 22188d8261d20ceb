package parser

import "github.com/hhe-bench/hheperf/internal/models"

// spanTracker correlates Start and End events within one log stream. Open
// spans are stacked per name, so an End event always closes the most
// recently opened unclosed span of that name. Recursive or overlapping
// operations with the same name therefore close inside-out.
type spanTracker struct {
	spans []*models.Span
	open  map[string][]*models.Span
}

func newSpanTracker() *spanTracker {
	return &spanTracker{open: make(map[string][]*models.Span)}
}

// Start opens a span for name and returns it for the caller to fill.
func (t *spanTracker) Start(name string) *models.Span {
	s := &models.Span{Name: name, Category: Categorize(name)}
	t.spans = append(t.spans, s)
	t.open[name] = append(t.open[name], s)
	return s
}

// End pops the most recently opened span of name. A nil return means no open
// span exists; the End event is dropped.
func (t *spanTracker) End(name string) *models.Span {
	stack := t.open[name]
	if len(stack) == 0 {
		return nil
	}
	s := stack[len(stack)-1]
	t.open[name] = stack[:len(stack)-1]
	return s
}

// Closed returns the spans that saw both a Start and an End, in the order
// their Start events appeared. Spans still open at end of input are dropped.
func (t *spanTracker) Closed() []models.Span {
	stillOpen := make(map[*models.Span]bool)
	for _, stack := range t.open {
		for _, s := range stack {
			stillOpen[s] = true
		}
	}
	closed := make([]models.Span, 0, len(t.spans))
	for _, s := range t.spans {
		if !stillOpen[s] {
			closed = append(closed, *s)
		}
	}
	return closed
}
