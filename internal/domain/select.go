package domain

import (
	"fmt"
	"strings"
)

// UnknownEventError reports a requested name absent from the catalogue.
// Known carries every valid name so the diagnostic is self-contained.
type UnknownEventError struct {
	Name  string
	Known []string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event %q; available events: %s", e.Name, strings.Join(e.Known, ", "))
}

// Select resolves the requested names against the catalogue. An empty request
// yields every catalogue event in definition order; otherwise exactly the
// requested events are returned in request order, repeats included. The whole
// selection resolves before any event is reported, so an unknown name aborts
// with no partial output.
func Select(cat Catalogue, names []string) ([]Event, error) {
	if len(names) == 0 {
		return cat.Events(), nil
	}

	selected := make([]Event, 0, len(names))
	for _, name := range names {
		event, ok := cat.Lookup(name)
		if !ok {
			return nil, &UnknownEventError{Name: name, Known: cat.Names()}
		}
		selected = append(selected, event)
	}
	return selected, nil
}
