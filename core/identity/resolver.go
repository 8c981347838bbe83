package identity

import (
	"strings"

	"github.com/huangsam/gitcredit/schema"
)

// Resolver maps raw commit identities onto canonical contributors.
//
// The canonical-identity registry is run-scoped mutable state: construct
// a fresh Resolver per analysis run and do not share one across
// concurrent aggregation passes. Resolution is streaming and greedy in
// first-seen order, so merge outcomes can depend on commit order; this
// is accepted behavior, not full pairwise clustering.
type Resolver struct {
	threshold float64
	fuzzy     bool

	groupOf   map[string]string // raw group member -> canonical representative
	overrides map[string]schema.CanonicalDetails

	entries  []canonicalEntry  // registration order drives tie-breaking
	resolved map[string]string // raw identity -> canonical, for referential stability
	details  map[string]*schema.CanonicalDetails
	pinned   map[string]bool // canonical ids whose details come from an override
}

type canonicalEntry struct {
	id  string
	key string // normalized comparison key
}

// NewResolver builds a Resolver from an optional alias configuration.
// A nil configuration degrades to the identity function: every distinct
// raw identity becomes its own canonical identity and no fuzzy merging
// happens. With a configuration present (even an empty one), identities
// whose normalized similarity reaches threshold are merged.
func NewResolver(aliases *schema.AliasConfig, threshold float64) *Resolver {
	r := &Resolver{
		threshold: threshold,
		fuzzy:     aliases != nil,
		groupOf:   make(map[string]string),
		overrides: make(map[string]schema.CanonicalDetails),
		resolved:  make(map[string]string),
		details:   make(map[string]*schema.CanonicalDetails),
		pinned:    make(map[string]bool),
	}
	if aliases == nil {
		return r
	}

	for identity, d := range aliases.Canonical {
		r.overrides[identity] = d
	}
	// Groups that share a member describe the same contributor, so merge
	// them into equivalence classes before picking representatives.
	parent := make(map[string]string)
	var find func(string) string
	find = func(x string) string {
		p, ok := parent[x]
		if !ok || p == x {
			return x
		}
		root := find(p)
		parent[x] = root
		return root
	}

	var order []string // members in declaration order
	seen := make(map[string]bool)
	for _, group := range aliases.Groups {
		if len(group) == 0 {
			continue
		}
		for _, member := range group {
			if !seen[member] {
				seen[member] = true
				order = append(order, member)
			}
			ra, rb := find(group[0]), find(member)
			if ra != rb {
				parent[rb] = ra
			}
		}
	}

	classes := make(map[string][]string)
	for _, member := range order {
		root := find(member)
		classes[root] = append(classes[root], member)
	}
	for _, members := range classes {
		// The representative is the earliest-declared member, unless an
		// explicit canonical-details override names a later member.
		rep := members[0]
		for _, member := range members {
			if _, ok := aliases.Canonical[member]; ok {
				rep = member
				break
			}
		}
		for _, member := range members {
			r.groupOf[member] = rep
		}
	}
	return r
}

// Resolve returns the canonical identity for one commit's raw identity.
// The raw identity is the grouping key (email or name per the configured
// mode); name and email are the commit's author fields, used for group
// lookups and display-detail updates. Once a raw identity resolves to a
// canonical identity, repeated calls return the same canonical identity
// for the lifetime of this Resolver.
func (r *Resolver) Resolve(raw, name, email string) string {
	if canonical, ok := r.resolved[raw]; ok {
		r.updateDetails(canonical, name, email)
		return canonical
	}

	// Explicit alias groups win outright; fuzzy matching is skipped for
	// explicitly grouped identities.
	for _, candidate := range []string{raw, email, name} {
		if candidate == "" {
			continue
		}
		if rep, ok := r.groupOf[candidate]; ok {
			r.register(rep, Normalize(rep))
			r.resolved[raw] = rep
			r.updateDetails(rep, name, email)
			return rep
		}
	}

	key := Normalize(raw)

	if !r.fuzzy {
		r.register(raw, key)
		r.resolved[raw] = raw
		r.updateDetails(raw, name, email)
		return raw
	}

	// Compare against canonical identities established so far, in
	// registration order so that ties go to the earliest one.
	best := ""
	bestScore := -1.0
	for _, entry := range r.entries {
		score := Similarity(key, entry.key)
		if score >= r.threshold && score > bestScore {
			best = entry.id
			bestScore = score
		}
	}
	if best == "" {
		best = key
		r.register(key, key)
	}
	r.resolved[raw] = best
	r.updateDetails(best, name, email)
	return best
}

// Details returns the best-known display information for a canonical
// identity. The zero value is returned for unknown identities.
func (r *Resolver) Details(canonical string) schema.CanonicalDetails {
	if d, ok := r.details[canonical]; ok {
		return *d
	}
	return schema.CanonicalDetails{}
}

// Identities returns all canonical identities in first-seen order.
func (r *Resolver) Identities() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	return ids
}

// register adds a canonical identity if it is not yet known.
func (r *Resolver) register(id, key string) {
	if _, ok := r.details[id]; ok {
		return
	}
	r.entries = append(r.entries, canonicalEntry{id: id, key: key})
	if override, ok := r.overrides[id]; ok {
		d := override
		r.details[id] = &d
		r.pinned[id] = true
		return
	}
	r.details[id] = &schema.CanonicalDetails{}
}

// updateDetails improves the display details monotonically: a non-empty
// email fills an empty one, and a human name replaces an empty or
// email-derived one. Override-pinned details are never touched.
func (r *Resolver) updateDetails(canonical, name, email string) {
	if r.pinned[canonical] {
		return
	}
	d, ok := r.details[canonical]
	if !ok {
		return
	}
	if email != "" && d.Email == "" {
		d.Email = email
	}
	if name != "" {
		if d.Name == "" || (isEmailDerived(d.Name) && !isEmailDerived(name)) {
			d.Name = name
		}
	}
}

func isEmailDerived(s string) bool {
	return strings.Contains(s, "@")
}
