package ports

// NumberGenerator produces client-visible order numbers. Implementations must
// guarantee uniqueness; a collision still surfaces as ErrDuplicateNumber from
// the repository's unique constraint rather than silently overwriting.
type NumberGenerator interface {
	Next() string
}
