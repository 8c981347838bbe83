package schema

import (
	"sort"
	"strings"
)

// DisplayName returns the best human-readable label for a contributor:
// the known name, else the email local part, else the raw identity key.
func DisplayName(identity string, details CanonicalDetails) string {
	if details.Name != "" {
		return details.Name
	}
	if details.Email != "" {
		return EmailLocalPart(details.Email)
	}
	return identity
}

// EmailLocalPart strips the domain from an email address. Non-email
// strings are returned unchanged.
func EmailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// SortedIdentities returns the contributor map keys in lexical order
// for deterministic iteration.
func SortedIdentities(contributors map[string]*Contributor) []string {
	keys := make([]string, 0, len(contributors))
	for k := range contributors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
