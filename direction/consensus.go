package direction

// Sign labels used in consensus records.
const (
	SignLabelPositive = "positive"
	SignLabelNegative = "negative"
	SignLabelUnknown  = "unknown"
)

// SignTally is the majority verdict for one directed key. Both fields are
// true on a tie, signaling that both signs reached majority and should be
// reported together.
type SignTally struct {
	Positive bool
	Negative bool
}

// Consensus is one authoritative (direction, sign) label for an edge.
type Consensus struct {
	// From and To are the node identifiers in consensus orientation; for
	// undirected records they are the canonical pair.
	From string
	To   string

	// Directed reports whether the record carries direction at all.
	Directed bool

	// Sign is one of the SignLabel constants.
	Sign string
}

// MajorityDirection compares the source counts of the two directed keys.
// Undirected-only records yield KeyUndirected; a tie between the directed
// keys yields KeyNone, which is a valid terminal state left for the caller
// to resolve.
func (r *Record) MajorityDirection() Key {
	if !r.IsDirected() {
		return KeyUndirected
	}
	straight := r.sources[KeyStraight].Len()
	reverse := r.sources[KeyReverse].Len()
	switch {
	case straight > reverse:
		return KeyStraight
	case reverse > straight:
		return KeyReverse
	default:
		return KeyNone
	}
}

// MajoritySign returns the majority sign verdict per directed key. A key
// with no sign information maps to nil. On a tie both fields of the tally
// are true.
func (r *Record) MajoritySign() map[Key]*SignTally {
	out := make(map[Key]*SignTally, 2)
	for _, k := range []Key{KeyStraight, KeyReverse} {
		p := r.signs[Positive][k].Len()
		n := r.signs[Negative][k].Len()
		if p == 0 && n == 0 {
			out[k] = nil
			continue
		}
		out[k] = &SignTally{Positive: p >= n, Negative: n >= p}
	}
	return out
}

// ConsensusEdges derives the authoritative (direction, sign) labels for the
// record. Undirected-only records yield a single undirected row. Directed
// records yield rows for the majority direction, or for both directions on a
// tie; each chosen direction yields one row per majority sign, or a single
// unknown-sign row when no sign data exists.
func (r *Record) ConsensusEdges() []Consensus {
	if !r.IsDirected() {
		if !r.Asserted(KeyUndirected) {
			return nil
		}
		return []Consensus{{From: r.nodes[0], To: r.nodes[1], Directed: false, Sign: SignLabelUnknown}}
	}

	var keys []Key
	switch maj := r.MajorityDirection(); maj {
	case KeyNone:
		keys = []Key{KeyStraight, KeyReverse}
	default:
		keys = []Key{maj}
	}

	tallies := r.MajoritySign()
	var out []Consensus
	for _, k := range keys {
		from, to := r.pairOf(k)
		tally := tallies[k]
		if tally == nil {
			out = append(out, Consensus{From: from, To: to, Directed: true, Sign: SignLabelUnknown})
			continue
		}
		if tally.Positive {
			out = append(out, Consensus{From: from, To: to, Directed: true, Sign: SignLabelPositive})
		}
		if tally.Negative {
			out = append(out, Consensus{From: from, To: to, Directed: true, Sign: SignLabelNegative})
		}
	}
	return out
}
