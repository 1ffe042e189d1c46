package schemes

import (
	"html"
	"strings"
)

// Resolution outcomes, also used as metric label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// FallbackMessage is the response when no scheme matches.
const FallbackMessage = "Sorry, I couldn't find information on that scheme."

// Resolution is the result of matching a query. The zero value is NotFound.
type Resolution struct {
	found  bool
	scheme Scheme
}

// Found reports whether a scheme matched.
func (r Resolution) Found() bool {
	return r.found
}

// Scheme returns the matched scheme and true, or a zero Scheme and false.
func (r Resolution) Scheme() (Scheme, bool) {
	return r.scheme, r.found
}

// Key returns the matched scheme key, or "" when nothing matched.
func (r Resolution) Key() string {
	return r.scheme.Key
}

// Outcome returns OutcomeFound or OutcomeNotFound.
func (r Resolution) Outcome() string {
	if r.found {
		return OutcomeFound
	}
	return OutcomeNotFound
}

// Resolve matches query against the table. The first scheme, in table order,
// whose key occurs anywhere in the lower-cased query wins.
func Resolve(query string, table Table) Resolution {
	q := strings.ToLower(query)
	if q == "" {
		return Resolution{}
	}
	for _, s := range table.entries {
		if strings.Contains(q, s.Key) {
			return Resolution{found: true, scheme: s}
		}
	}
	return Resolution{}
}

// Compose renders a resolution as the bot's reply markup: the description
// followed by an apply link, or FallbackMessage.
func Compose(r Resolution) string {
	s, ok := r.Scheme()
	if !ok {
		return FallbackMessage
	}
	return html.EscapeString(s.Description) +
		" <br/>Click here to apply: <a href='" + html.EscapeString(s.ApplyURL) + "'>Apply now</a>"
}
