package templater

// Builder assembles a [Registry] with chained calls:
//
//	reg := templater.NewBuilder[Book]().
//		WithSelector("id", func(b Book) (string, bool) { return strconv.Itoa(b.ID), true }).
//		WithSelector("title", func(b Book) (string, bool) { return b.Title, true }).
//		Build()
//
// After Build the builder holds no registry; further calls start a new one.
type Builder[T any] struct {
	reg *Registry[T]
}

// NewBuilder returns a builder with an empty registry.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{reg: NewRegistry[T]()}
}

// WithSelector binds selector to fn. A nil fn drops the selector.
func (b *Builder[T]) WithSelector(selector string, fn func(obj T) (string, bool)) *Builder[T] {
	return b.With(selector, AccessorFunc[T](fn))
}

// With binds selector to a. A nil accessor drops the selector.
func (b *Builder[T]) With(selector string, a Accessor[T]) *Builder[T] {
	if b.reg == nil {
		b.reg = NewRegistry[T]()
	}
	b.reg.Insert(selector, a)
	return b
}

// Build returns the assembled registry.
func (b *Builder[T]) Build() *Registry[T] {
	reg := b.reg
	if reg == nil {
		reg = NewRegistry[T]()
	}
	b.reg = nil
	return reg
}
