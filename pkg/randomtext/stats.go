package randomtext

// ModelStats holds aggregated statistics for a built model.
type ModelStats struct {
	Prefixes    int // The number of distinct prefixes.
	Transitions int // The total number of recorded successor occurrences.
	Alphabet    int // The number of distinct successor characters across all prefixes.
	MaxFanout   int // The largest number of distinct successors behind any single prefix.
}

// Stats returns a snapshot of statistics for the model.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{Prefixes: m.Len()}
	alphabet := make(map[rune]struct{})
	for _, key := range m.keys {
		succ := m.chains[key]
		stats.Transitions += len(succ)
		distinct := make(map[rune]struct{}, len(succ))
		for _, r := range succ {
			alphabet[r] = struct{}{}
			distinct[r] = struct{}{}
		}
		if len(distinct) > stats.MaxFanout {
			stats.MaxFanout = len(distinct)
		}
	}
	stats.Alphabet = len(alphabet)
	return stats
}
