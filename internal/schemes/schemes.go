// Package schemes holds the fixed table of government assistance schemes and
// resolves free-text queries against it.
package schemes

import (
	"errors"
	"strings"
)

// Scheme keys, in resolution priority order.
const (
	KeyFarming      = "farming"
	KeyUnemployment = "unemployment"
	KeyHousing      = "housing"
	KeyEducation    = "education"
	KeyHealth       = "health"
	KeyBusiness     = "business"
)

// ErrUnknownScheme is returned when a scheme key is not in the table.
var ErrUnknownScheme = errors.New("unknown scheme")

// Scheme is one assistance category with its canned description and the
// external page where users apply.
type Scheme struct {
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
	ApplyURL    string `json:"apply_url" yaml:"apply_url"`
}

// Table is an ordered, read-only sequence of schemes. Order decides which
// scheme wins when a query mentions more than one key.
type Table struct {
	entries []Scheme
}

// Initialize builds the scheme table. The result is never mutated.
func Initialize() Table {
	return Table{entries: []Scheme{
		{
			Key:         KeyFarming,
			Description: "Details about farming schemes. Some farming schemes: PM-KISAN, PMFBY.",
			ApplyURL:    "https://pmkisan.gov.in/",
		},
		{
			Key:         KeyUnemployment,
			Description: "Details about unemployment schemes. Some unemployment schemes: Atmanirbhar Bharat Rojgar Yojana, PM-SYM.",
			ApplyURL:    "https://dge.gov.in/dge/schemes_programmes",
		},
		{
			Key:         KeyHousing,
			Description: "Details about housing schemes. Some housing schemes: PMAY, CLSS.",
			ApplyURL:    "https://www.india.gov.in/topics/housing",
		},
		{
			Key:         KeyEducation,
			Description: "Details about education schemes. Some education schemes: PM e-VIDYA, Samagra Shiksha.",
			ApplyURL:    "https://www.education.gov.in/scholarships-education-loan-0",
		},
		{
			Key:         KeyHealth,
			Description: "Details about health schemes. Some health schemes: Ayushman Bharat, PM-JAY.",
			ApplyURL:    "https://www.india.gov.in/topics/health-family-welfare",
		},
		{
			Key:         KeyBusiness,
			Description: "Details about business schemes. Some business schemes: PMEGP, CGTMSE.",
			ApplyURL:    "https://www.myscheme.gov.in/",
		},
	}}
}

// NewTable builds a table from entries, keeping their order. Keys are
// trimmed and lower-cased. Entries with a blank key are dropped. Initialize
// is the production table; NewTable serves tests and tools that need a
// different set.
func NewTable(entries ...Scheme) Table {
	t := Table{entries: make([]Scheme, 0, len(entries))}
	for _, e := range entries {
		e.Key = strings.ToLower(strings.TrimSpace(e.Key))
		if e.Key == "" {
			continue
		}
		t.entries = append(t.entries, e)
	}
	return t
}

// Len returns the number of schemes in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// All returns a copy of the schemes in priority order.
func (t Table) All() []Scheme {
	out := make([]Scheme, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the scheme keys in priority order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for _, s := range t.entries {
		keys = append(keys, s.Key)
	}
	return keys
}

// Lookup finds a scheme by exact key, ignoring case.
func (t Table) Lookup(key string) (Scheme, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range t.entries {
		if s.Key == key {
			return s, true
		}
	}
	return Scheme{}, false
}

// Get is like Lookup but returns ErrUnknownScheme for a missing key.
func (t Table) Get(key string) (Scheme, error) {
	s, ok := t.Lookup(key)
	if !ok {
		return Scheme{}, ErrUnknownScheme
	}
	return s, nil
}
