package domain

import "time"

// Field constants for change tracking
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImage       = "image"
)

// Fields holds the user-editable attributes of a product.
// Every attribute is optional; nil means absent or null.
type Fields struct {
	Title       *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
}

// Product is the catalog record. The identifier is assigned by the store
// and never changes after creation.
type Product struct {
	id          string
	title       *string
	price       *float64
	description *string
	category    *string
	image       *string
	createdAt   time.Time
	changes     *ChangeTracker
}

// NewProduct builds a product that has not been persisted yet.
// No field is validated: the catalog accepts whatever the caller sends.
func NewProduct(id string, f Fields, now time.Time) *Product {
	return ReconstructProduct(id, f, now)
}

// ReconstructProduct rebuilds a Product from persisted state.
// Used by stores when loading from the database.
func ReconstructProduct(id string, f Fields, createdAt time.Time) *Product {
	return &Product{
		id:          id,
		title:       cloneString(f.Title),
		price:       cloneFloat(f.Price),
		description: cloneString(f.Description),
		category:    cloneString(f.Category),
		image:       cloneString(f.Image),
		createdAt:   createdAt,
		changes:     NewChangeTracker(),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Title() *string {
	return p.title
}

func (p *Product) Price() *float64 {
	return p.price
}

func (p *Product) Description() *string {
	return p.description
}

func (p *Product) Category() *string {
	return p.category
}

func (p *Product) Image() *string {
	return p.image
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

// Fields returns a copy of the product attributes.
func (p *Product) Fields() Fields {
	return Fields{
		Title:       cloneString(p.title),
		Price:       cloneFloat(p.price),
		Description: cloneString(p.description),
		Category:    cloneString(p.category),
		Image:       cloneString(p.image),
	}
}

// ApplyPatch replaces every attribute that is set in the patch and marks it
// dirty. Attributes left unset keep their previous value.
func (p *Product) ApplyPatch(patch Patch) {
	if patch.Title.Set {
		p.title = cloneString(patch.Title.Value)
		p.changes.MarkDirty(FieldTitle)
	}
	if patch.Price.Set {
		p.price = cloneFloat(patch.Price.Value)
		p.changes.MarkDirty(FieldPrice)
	}
	if patch.Description.Set {
		p.description = cloneString(patch.Description.Value)
		p.changes.MarkDirty(FieldDescription)
	}
	if patch.Category.Set {
		p.category = cloneString(patch.Category.Value)
		p.changes.MarkDirty(FieldCategory)
	}
	if patch.Image.Set {
		p.image = cloneString(patch.Image.Value)
		p.changes.MarkDirty(FieldImage)
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
