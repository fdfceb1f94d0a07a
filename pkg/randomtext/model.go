package randomtext

// Model is a fixed-order character-level Markov model. It maps every prefix
// of exactly Order characters observed in the training corpus to the ordered
// multiset of characters seen immediately after it. Duplicate successors are
// retained; each occurrence raises that character's sampling weight.
//
// Keys are additionally tracked in insertion order so that seeding can pick
// uniformly over the set of distinct prefixes with an injected random source.
// A Model is append-only while Build runs and must be treated as read-only
// once Build returns.
type Model struct {
	order  int
	chains map[string][]rune
	keys   []string
}

// NewModel returns an empty model for the given prefix length. The prefix
// length must be at least 1.
func NewModel(order int) (*Model, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	return &Model{
		order:  order,
		chains: make(map[string][]rune),
	}, nil
}

// Order returns the prefix length the model was built with.
func (m *Model) Order() int { return m.order }

// Len returns the number of distinct prefixes in the model.
func (m *Model) Len() int { return len(m.keys) }

// Keys returns the model's prefixes in insertion order. The returned slice
// is shared with the model and must not be modified.
func (m *Model) Keys() []string { return m.keys }

// Contains reports whether prefix is a key of the model.
func (m *Model) Contains(prefix string) bool {
	_, ok := m.chains[prefix]
	return ok
}

// Successors returns every successor occurrence recorded for prefix, in
// observation order, or nil if the prefix was never observed. The returned
// slice is shared with the model and must not be modified.
func (m *Model) Successors(prefix string) []rune {
	return m.chains[prefix]
}

// Add records next as a successor of prefix, creating the successor list if
// the prefix has not been seen before. This is the only mutation a Model
// supports.
func (m *Model) Add(prefix string, next rune) {
	succ, ok := m.chains[prefix]
	if !ok {
		m.keys = append(m.keys, prefix)
	}
	m.chains[prefix] = append(succ, next)
}

// randomKey picks one prefix uniformly at random over the set of distinct
// keys. The model must be non-empty.
func (m *Model) randomKey(rng Rand) string {
	return m.keys[rng.IntN(len(m.keys))]
}
