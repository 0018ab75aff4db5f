package reactive

// Source is a settable value cell.
type Source[T any] struct {
	g     *Graph
	n     *node
	value T
	eq    func(a, b T) bool
}

// NewSource creates a source compared with ==.
func NewSource[T comparable](g *Graph, name string, initial T) *Source[T] {
	return NewSourceFunc(g, name, initial, equal[T])
}

// NewSourceFunc creates a source with a custom equality. A nil eq treats
// every write as a change.
func NewSourceFunc[T any](g *Graph, name string, initial T, eq func(a, b T) bool) *Source[T] {
	s := &Source[T]{g: g, value: initial, eq: eq}
	s.n = g.add(name, KindSource, nil)
	s.n.recompute = func() bool { return false }
	return s
}

func (s *Source[T]) node() *node { return s.n }

// Get returns the committed value.
func (s *Source[T]) Get() T { return s.value }

// Set writes v. Equal values are ignored; otherwise dependents are
// recomputed before Set returns, unless a batch is open.
func (s *Source[T]) Set(v T) {
	s.g.write(func() bool {
		if s.eq != nil && s.eq(s.value, v) {
			return false
		}
		s.value = v
		s.g.markDependents(s.n)
		return true
	})
}

// Update sets the result of fn applied to the current value.
func (s *Source[T]) Update(fn func(T) T) { s.Set(fn(s.value)) }

// Memo is a cached pure derivation.
type Memo[T any] struct {
	g     *Graph
	n     *node
	value T
	eq    func(a, b T) bool
	fn    func() T
}

// Derive creates a memo compared with ==. fn must only read the given
// dependencies.
func Derive[T comparable](g *Graph, name string, fn func() T, deps ...Node) *Memo[T] {
	return DeriveFunc(g, name, equal[T], fn, deps...)
}

// DeriveFunc creates a memo with a custom equality. A nil eq propagates
// every recomputation.
func DeriveFunc[T any](g *Graph, name string, eq func(a, b T) bool, fn func() T, deps ...Node) *Memo[T] {
	m := &Memo[T]{g: g, eq: eq, fn: fn}
	m.n = g.add(name, KindMemo, deps)
	m.n.recompute = m.recompute
	m.value = fn()
	m.n.computes++
	return m
}

func (m *Memo[T]) node() *node { return m.n }

func (m *Memo[T]) recompute() bool {
	v := m.fn()
	if m.eq != nil && m.eq(m.value, v) {
		return false
	}
	m.value = v
	return true
}

// Get returns the current value, recomputing first if it is stale.
func (m *Memo[T]) Get() T {
	if m.n.dirty {
		m.g.refresh(m.n)
	}
	return m.value
}

// Computes returns how many times the memo has evaluated its function.
func (m *Memo[T]) Computes() int { return m.n.computes }

// Getter is the read side shared by sources and memos.
type Getter[T any] interface {
	Node
	Get() T
}

// Map derives a memo applying fn to a single dependency.
func Map[A any, B comparable](g *Graph, name string, from Getter[A], fn func(A) B) *Memo[B] {
	return Derive(g, name, func() B { return fn(from.Get()) }, from)
}

func equal[T comparable](a, b T) bool { return a == b }
