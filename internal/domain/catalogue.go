package domain

import "github.com/couchcryptid/ringdown-toolkit/internal/units"

// Catalogue is a read-only, insertion-ordered set of named events.
type Catalogue struct {
	names  []string
	byName map[string]Event
}

// LoadCatalogue returns the built-in catalogue of canonical events. It is a
// pure factory: every call builds a fresh value, and nothing is read from
// disk or the environment.
func LoadCatalogue() Catalogue {
	c := Catalogue{byName: make(map[string]Event, 3)}
	c.add(Event{
		Name:      "GW150914",
		Tau:       units.New(4.0, units.Millisecond),
		Freq:      units.New(251, units.Hertz),
		Reference: "Abbott et al. (2016, PRL 116, 061102)",
	})
	c.add(Event{
		Name:      "GW170104",
		Tau:       units.New(5.0, units.Millisecond),
		Freq:      units.New(200, units.Hertz),
		Reference: "Abbott et al. (2017, PRL 118, 221101)",
	})
	c.add(Event{
		Name:      "GW190521",
		Tau:       units.New(5.5, units.Millisecond),
		Freq:      units.New(190, units.Hertz),
		Reference: "Abbott et al. (2020, PRL 125, 101102)",
	})
	return c
}

func (c *Catalogue) add(e Event) {
	c.names = append(c.names, e.Name)
	c.byName[e.Name] = e
}

// Lookup returns the event with the given name, reporting whether it exists.
func (c Catalogue) Lookup(name string) (Event, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Names returns the event names in definition order. The slice is a copy.
func (c Catalogue) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Events returns all events in definition order. The slice is a copy.
func (c Catalogue) Events() []Event {
	events := make([]Event, 0, len(c.names))
	for _, name := range c.names {
		events = append(events, c.byName[name])
	}
	return events
}

// Len returns the number of catalogue entries.
func (c Catalogue) Len() int { return len(c.names) }
