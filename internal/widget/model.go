package widget

import "slices"

// ValueModel holds a single value and notifies subscribers when it changes.
type ValueModel[T comparable] struct {
	value  T
	nextID int
	subs   map[int]func(T)
	order  []int
}

// NewValueModel returns a model holding v.
func NewValueModel[T comparable](v T) *ValueModel[T] {
	return &ValueModel[T]{value: v, subs: make(map[int]func(T))}
}

// Value returns the current value.
func (m *ValueModel[T]) Value() T {
	return m.value
}

// SetValue stores v. Subscribers run, in subscription order, only when the
// value actually changes.
func (m *ValueModel[T]) SetValue(v T) {
	if v == m.value {
		return
	}
	m.value = v
	for _, id := range m.order {
		if fn, ok := m.subs[id]; ok {
			fn(v)
		}
	}
}

// Subscribe registers fn for value changes and returns a function that
// removes it.
func (m *ValueModel[T]) Subscribe(fn func(T)) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.order = append(m.order, id)
	return func() {
		delete(m.subs, id)
		// a fresh slice, so a SetValue ranging over the old one is unaffected
		if i := slices.Index(m.order, id); i >= 0 {
			m.order = slices.Delete(slices.Clone(m.order), i, i+1)
		}
	}
}

// FloatModel is the model behind sliders and color components.
type FloatModel = ValueModel[float64]

// IntModel is the model behind combo boxes and radio collections.
type IntModel = ValueModel[int]

// BoolModel is the model behind checkboxes.
type BoolModel = ValueModel[bool]
