package domain

// Optional distinguishes an omitted value from an explicit null.
// Set=false: leave the attribute alone. Set=true, Value=nil: clear it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the attribute.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Patch is a partial update of a product.
type Patch struct {
	Title       Optional[string]
	Price       Optional[float64]
	Description Optional[string]
	Category    Optional[string]
	Image       Optional[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return !p.Title.Set && !p.Price.Set && !p.Description.Set && !p.Category.Set && !p.Image.Set
}
