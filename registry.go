package templater

import (
	"iter"
	"maps"
	"slices"
)

// Accessor resolves a value for one selector from a target object.
// The boolean reports whether a value is present; a missing value renders
// as [NotAvailable].
//
// Accessors are invoked without synchronization and may be called from many
// goroutines at once. They must only read the target object and any state
// they capture, or guard that state themselves.
type Accessor[T any] interface {
	Access(obj T) (string, bool)
}

// AccessorFunc adapts an ordinary function to [Accessor].
type AccessorFunc[T any] func(obj T) (string, bool)

// Access calls f(obj).
func (f AccessorFunc[T]) Access(obj T) (string, bool) { return f(obj) }

// Binding pairs a selector with its accessor. Used by [Registry.Extend].
type Binding[T any] struct {
	Selector string
	Accessor Accessor[T]
}

// Registry maps selector names to accessors for target objects of type T.
// The zero value is an empty registry ready to use.
//
// A Registry is built by Insert, Extend, and Remove calls and then shared
// read-only. Rendering from many goroutines is safe; mutating while renders
// are in flight is not and must be serialized by the caller.
type Registry[T any] struct {
	accessors map[string]Accessor[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{accessors: make(map[string]Accessor[T])}
}

// Insert binds selector to a, replacing any previous binding.
// Any string, including the empty string, is a valid selector.
// A nil accessor removes the binding instead.
func (r *Registry[T]) Insert(selector string, a Accessor[T]) {
	if isNilAccessor(a) {
		r.Remove(selector)
		return
	}
	if r.accessors == nil {
		r.accessors = make(map[string]Accessor[T])
	}
	r.accessors[selector] = a
}

// InsertFunc binds selector to fn. A nil fn removes the binding.
func (r *Registry[T]) InsertFunc(selector string, fn func(obj T) (string, bool)) {
	r.Insert(selector, AccessorFunc[T](fn))
}

// Extend inserts each binding in order. Later bindings win on duplicate
// selectors.
func (r *Registry[T]) Extend(bindings ...Binding[T]) {
	for _, b := range bindings {
		r.Insert(b.Selector, b.Accessor)
	}
}

// ExtendSeq inserts every pair yielded by seq, in iteration order.
//
//	reg.ExtendSeq(maps.All(accessors))
func (r *Registry[T]) ExtendSeq(seq iter.Seq2[string, Accessor[T]]) {
	for selector, a := range seq {
		r.Insert(selector, a)
	}
}

// Remove deletes the binding for selector and reports whether one existed.
func (r *Registry[T]) Remove(selector string) bool {
	if _, ok := r.accessors[selector]; !ok {
		return false
	}
	delete(r.accessors, selector)
	return true
}

// Has reports whether selector is bound.
func (r *Registry[T]) Has(selector string) bool {
	_, ok := r.accessors[selector]
	return ok
}

// Len returns the number of bound selectors.
func (r *Registry[T]) Len() int { return len(r.accessors) }

// Selectors returns the bound selectors in sorted order.
func (r *Registry[T]) Selectors() []string {
	return slices.Sorted(maps.Keys(r.accessors))
}

func isNilAccessor[T any](a Accessor[T]) bool {
	if a == nil {
		return true
	}
	fn, ok := a.(AccessorFunc[T])
	return ok && fn == nil
}

func (r *Registry[T]) lookup(selector string) (Accessor[T], bool) {
	a, ok := r.accessors[selector]
	return a, ok
}
