package occasion

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Rule decides whether a given day falls on an occasion.
type Rule interface {
	Matches(t time.Time) bool
}

// FixedDate matches one calendar day every year.
type FixedDate struct {
	Month time.Month
	Day   int
}

func (r FixedDate) Matches(t time.Time) bool {
	return t.Month() == r.Month && t.Day() == r.Day
}

// DateRange matches an inclusive span of calendar days. Ranges that
// run past December 31st wrap into the next year.
type DateRange struct {
	FromMonth time.Month
	FromDay   int
	ToMonth   time.Month
	ToDay     int
}

func (r DateRange) Matches(t time.Time) bool {
	day := int(t.Month())*100 + t.Day()
	from := int(r.FromMonth)*100 + r.FromDay
	to := int(r.ToMonth)*100 + r.ToDay
	if from <= to {
		return day >= from && day <= to
	}
	return day >= from || day <= to
}

// NthWeekday matches the nth weekday of a month, counted from 1. A
// negative n counts from the end of the month, so -1 is the last.
type NthWeekday struct {
	Month   time.Month
	Weekday time.Weekday
	N       int
}

func (r NthWeekday) Matches(t time.Time) bool {
	if t.Month() != r.Month || t.Weekday() != r.Weekday {
		return false
	}
	if r.N > 0 {
		return (t.Day()-1)/7+1 == r.N
	}
	daysInMonth := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return (daysInMonth-t.Day())/7+1 == -r.N
}

// Occasion pairs a named date rule with the celebration palette shown
// while it is active.
type Occasion struct {
	Name   string
	Rule   Rule
	Colors []string
}

// Registry holds the known occasions.
type Registry struct {
	mu        sync.RWMutex
	occasions map[string]Occasion
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{occasions: make(map[string]Occasion)}
}

// Register adds an occasion. Registering a name twice is an error.
func (r *Registry) Register(o Occasion) error {
	if o.Name == "" {
		return fmt.Errorf("occasion name cannot be empty")
	}
	if o.Rule == nil {
		return fmt.Errorf("occasion %q has no rule", o.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.occasions[o.Name]; exists {
		return fmt.Errorf("occasion %q already registered", o.Name)
	}
	r.occasions[o.Name] = o
	return nil
}

// Lookup returns the occasion with the given name.
func (r *Registry) Lookup(name string) (Occasion, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.occasions[name]
	return o, ok
}

// Names returns all registered occasion names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.occasions))
	for name := range r.occasions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Active returns every occasion whose rule matches the given time,
// sorted by name for stable output.
func (r *Registry) Active(t time.Time) []Occasion {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []Occasion
	for _, o := range r.occasions {
		if o.Rule.Matches(t) {
			active = append(active, o)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })
	return active
}

// Current returns the first active occasion for the given time.
func (r *Registry) Current(t time.Time) (Occasion, bool) {
	active := r.Active(t)
	if len(active) == 0 {
		return Occasion{}, false
	}
	return active[0], true
}

// DefaultRegistry returns a registry preloaded with the built-in
// occasions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	builtins := []Occasion{
		{
			Name:   "new-year",
			Rule:   FixedDate{Month: time.January, Day: 1},
			Colors: []string{"#ffd700", "#c0c0c0", "#ffffff"},
		},
		{
			Name:   "valentines",
			Rule:   FixedDate{Month: time.February, Day: 14},
			Colors: []string{"#e0218a", "#ff6b81", "#ffffff"},
		},
		{
			Name:   "halloween",
			Rule:   DateRange{FromMonth: time.October, FromDay: 25, ToMonth: time.October, ToDay: 31},
			Colors: []string{"#ff7518", "#31004a", "#77dd77"},
		},
		{
			Name:   "thanksgiving",
			Rule:   NthWeekday{Month: time.November, Weekday: time.Thursday, N: 4},
			Colors: []string{"#d2691e", "#ffbf00", "#8b4513"},
		},
		{
			Name:   "holidays",
			Rule:   DateRange{FromMonth: time.December, FromDay: 24, ToMonth: time.December, ToDay: 26},
			Colors: []string{"#cc0000", "#1a7a3a", "#ffffff"},
		},
	}
	for _, o := range builtins {
		// Names are unique above, so Register cannot fail.
		_ = r.Register(o)
	}
	return r
}
