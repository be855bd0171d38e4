package style

// Declaration is a single `property: value;` pair, field-for-field the
// shape github.com/npillmayer/fp's cascade code consumes (Property plus
// a single Value), which is what lets styledtree's cascade be grounded
// directly on that implementation.
type Declaration struct {
	Property string
	Value    Value
}

// Declarations is an ordered list of Declaration, used both for a
// Rule's body and for a parsed inline style="" attribute.
type Declarations []Declaration

// Get returns the last declaration for prop, matching CSS's "last
// declaration in a block wins" rule for repeated properties within a
// single block.
func (ds Declarations) Get(prop string) (Value, bool) {
	var found Value
	ok := false
	for _, d := range ds {
		if d.Property == prop {
			found, ok = d.Value, true
		}
	}
	return found, ok
}

// Selector is a simple selector: any combination of a tag name, an id,
// and a list of classes, with no combinators. An empty Tag ("" or "*")
// matches any tag.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// Specificity returns the selector's (id, class, tag) specificity
// triple, used by the cascade to order matching rules.
func (s Selector) Specificity() Specificity {
	tag := 0
	if s.Tag != "" && s.Tag != "*" {
		tag = 1
	}
	id := 0
	if s.ID != "" {
		id = 1
	}
	return Specificity{ID: id, Class: len(s.Classes), Tag: tag}
}

// Specificity is the (ids, classes, tags) triple CSS ranks selector
// matches by; compared lexicographically, most-significant field first.
type Specificity struct {
	ID, Class, Tag int
}

// Less reports whether s ranks below other (other wins a tie-broken
// cascade comparison).
func (s Specificity) Less(other Specificity) bool {
	if s.ID != other.ID {
		return s.ID < other.ID
	}
	if s.Class != other.Class {
		return s.Class < other.Class
	}
	return s.Tag < other.Tag
}

// Matches reports whether the selector matches an element described by
// tag, id and classes.
func (s Selector) Matches(tag, id string, classes []string) bool {
	if s.Tag != "" && s.Tag != "*" && s.Tag != tag {
		return false
	}
	if s.ID != "" && s.ID != id {
		return false
	}
	for _, want := range s.Classes {
		found := false
		for _, have := range classes {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Rule is a comma-separated selector list sharing one declaration body.
type Rule struct {
	Selectors    []Selector
	Declarations Declarations
}

// Stylesheet is an ordered list of rules, in document (parse) order.
// Document order is significant: the cascade's tie-break for rules of
// equal specificity is "later wins", which canopy implements by
// stable-sorting rules in the order they were appended here.
type Stylesheet struct {
	Rules []Rule
}
