package resource

import (
	"regexp"
	"sort"

	"github.com/fintechmx/validations/pkg/enums"
)

var uriRegex = regexp.MustCompile(`/([a-z_]+)/(\w+)`)

// PrefixLen is the number of leading ID characters used as a dispatch key.
const PrefixLen = 2

// Reference is a parsed resource URI. Construct one with Parse or ParseKnown.
type Reference struct {
	URI        string
	Collection string
	ID         string
	IDPrefix   string
}

// CategoryTable maps an entry type to the entity names reachable from it and
// the ID prefixes each entity issues.
type CategoryTable map[enums.EntryType]map[string][]string

// Parse extracts the collection and ID segments from uri. The ID prefix is
// the first two characters of the ID, or the whole ID when shorter.
func Parse(uri string) (Reference, error) {
	match := uriRegex.FindStringSubmatch(uri)
	if match == nil {
		return Reference{}, ErrInvalidURI
	}
	ref := Reference{
		URI:        uri,
		Collection: match[1],
		ID:         match[2],
	}
	ref.IDPrefix = ref.ID
	if len(ref.ID) > PrefixLen {
		ref.IDPrefix = ref.ID[:PrefixLen]
	}
	return ref, nil
}

// ParseKnown parses uri and rejects references whose ID prefix is absent
// from every prefix list in categories. This distinguishes a foreign or
// malformed ID from one that is recognized but category-ambiguous.
func ParseKnown(uri string, categories CategoryTable) (Reference, error) {
	ref, err := Parse(uri)
	if err != nil {
		return Reference{}, err
	}
	for _, entities := range categories {
		for _, prefixes := range entities {
			for _, prefix := range prefixes {
				if ref.IDPrefix == prefix {
					return ref, nil
				}
			}
		}
	}
	return Reference{}, ErrUnknownIDPrefix
}

// Entity resolves the reference by its collection segment. The boolean is
// false when the collection is not in the table.
func (r Reference) Entity(collections map[string]string) (string, bool) {
	entity, ok := collections[r.Collection]
	return entity, ok
}

// EntityByCategory resolves the reference by its ID prefix, scoped to the
// given entry type. Entities are scanned in name order so resolution is
// deterministic when a prefix is shared; the first match wins.
func (r Reference) EntityByCategory(category enums.EntryType, categories CategoryTable) (string, bool) {
	entities, ok := categories[category]
	if !ok {
		return "", false
	}

	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, prefix := range entities[name] {
			if r.IDPrefix == prefix {
				return name, true
			}
		}
	}
	return "", false
}
