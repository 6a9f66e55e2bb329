package enums

import "fmt"

// Domain resolves raw wire values to symbolic names.
type Domain interface {
	Name() string
	Resolve(raw uint32) (string, bool)
}

type table[T ~uint32] struct {
	name  string
	names map[T]string
}

func newTable[T ~uint32](name string, names map[T]string) table[T] {
	return table[T]{name: name, names: names}
}

func (t table[T]) Name() string {
	return t.name
}

func (t table[T]) Resolve(raw uint32) (string, bool) {
	s, ok := t.names[T(raw)]
	return s, ok
}

func (t table[T]) format(v T) string {
	if s, ok := t.names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", t.name, uint32(v))
}
