package beliefs

import "matchsim/internal/ids"

// ExpiringBelief pairs a Belief with an optional expiry tick. A nil
// ExpiresAt never expires.
type ExpiringBelief struct {
	Belief    Belief
	ExpiresAt *ids.TickNumber
}

// bucket is the per-source ordered collection of expiring beliefs. A slice,
// not a map, so re-sensing within a tick and iteration order stay
// deterministic (insertion order).
type bucket struct {
	source  ids.SourceId
	entries []ExpiringBelief
}

// BeliefSet is a per-combatant mapping from SourceId to a set of expiring
// beliefs, plus one unsourced bucket for beliefs injected by action
// completion/broadcast. Replace on equal uniqueness key within a source,
// union across sources for reads, strict-less-than expiry.
type BeliefSet struct {
	sourced     []bucket
	sourceIndex map[ids.SourceId]int
	unsourced   []ExpiringBelief
}

// NewBeliefSet returns an empty belief set.
func NewBeliefSet() *BeliefSet {
	return &BeliefSet{sourceIndex: make(map[ids.SourceId]int)}
}

func (bs *BeliefSet) bucketFor(source ids.SourceId) *bucket {
	if idx, ok := bs.sourceIndex[source]; ok {
		return &bs.sourced[idx]
	}
	bs.sourced = append(bs.sourced, bucket{source: source})
	idx := len(bs.sourced) - 1
	bs.sourceIndex[source] = idx
	return &bs.sourced[idx]
}

// replace inserts eb into entries, removing any existing entry with an
// equal uniqueness key (0 keys never match, so such beliefs always append
// rather than replace, per Uniqueness's contract).
func replace(entries []ExpiringBelief, eb ExpiringBelief) []ExpiringBelief {
	key := eb.Belief.UniqueKey()
	if key != 0 {
		for i, existing := range entries {
			if existing.Belief.Kind() == eb.Belief.Kind() && existing.Belief.UniqueKey() == key {
				entries[i] = eb
				return entries
			}
		}
	}
	return append(entries, eb)
}

// AddSourced adds a belief under the given sensor/source, replacing any
// existing belief in that source's bucket with an equal uniqueness key.
func (bs *BeliefSet) AddSourced(source ids.SourceId, b Belief, expiresAt *ids.TickNumber) {
	bucket := bs.bucketFor(source)
	bucket.entries = replace(bucket.entries, ExpiringBelief{Belief: b, ExpiresAt: expiresAt})
}

// AddUnsourced adds a belief with no originating sensor (action completions,
// broadcasts), replacing any existing unsourced belief with an equal
// uniqueness key.
func (bs *BeliefSet) AddUnsourced(b Belief, expiresAt *ids.TickNumber) {
	bs.unsourced = replace(bs.unsourced, ExpiringBelief{Belief: b, ExpiresAt: expiresAt})
}

// Expire drops every belief whose expiry tick is at or before currentTick —
// a belief with expiry t is visible on tick t-1 and absent on tick t.
func (bs *BeliefSet) Expire(currentTick ids.TickNumber) {
	keep := func(eb ExpiringBelief) bool {
		return eb.ExpiresAt == nil || *eb.ExpiresAt > currentTick
	}
	for i := range bs.sourced {
		bs.sourced[i].entries = filterExpiring(bs.sourced[i].entries, keep)
	}
	bs.unsourced = filterExpiring(bs.unsourced, keep)
}

func filterExpiring(entries []ExpiringBelief, keep func(ExpiringBelief) bool) []ExpiringBelief {
	n := 0
	for _, eb := range entries {
		if keep(eb) {
			entries[n] = eb
			n++
		}
	}
	return entries[:n]
}

// Beliefs returns the union of every source bucket and the unsourced
// bucket, in deterministic (source-insertion-order, then unsourced) order.
func (bs *BeliefSet) Beliefs() []Belief {
	out := make([]Belief, 0, bs.Len())
	for _, bkt := range bs.sourced {
		for _, eb := range bkt.entries {
			out = append(out, eb.Belief)
		}
	}
	for _, eb := range bs.unsourced {
		out = append(out, eb.Belief)
	}
	return out
}

// Len returns the total number of beliefs across every bucket.
func (bs *BeliefSet) Len() int {
	n := len(bs.unsourced)
	for _, bkt := range bs.sourced {
		n += len(bkt.entries)
	}
	return n
}

// RemoveBeliefsByTest removes every belief (in any bucket) satisfied by
// test.
func (bs *BeliefSet) RemoveBeliefsByTest(test SatisfiabilityTest) {
	keep := func(eb ExpiringBelief) bool {
		return !(test.IsSameVariant(eb.Belief) && test.SatisfiedBy(eb.Belief))
	}
	for i := range bs.sourced {
		bs.sourced[i].entries = filterExpiring(bs.sourced[i].entries, keep)
	}
	bs.unsourced = filterExpiring(bs.unsourced, keep)
}

// CanSatisfy reports whether any belief currently held satisfies test.
func (bs *BeliefSet) CanSatisfy(test SatisfiabilityTest) bool {
	for _, bkt := range bs.sourced {
		for _, eb := range bkt.entries {
			if test.IsSameVariant(eb.Belief) && test.SatisfiedBy(eb.Belief) {
				return true
			}
		}
	}
	for _, eb := range bs.unsourced {
		if test.IsSameVariant(eb.Belief) && test.SatisfiedBy(eb.Belief) {
			return true
		}
	}
	return false
}
