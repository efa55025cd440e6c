package catalog

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
)

//go:embed products.json
var productsJSON []byte

// Item is one entry of the static storefront catalog served by GET /products.
// It is independent from the product store.
type Item struct {
	ID          int     `json:"id"`
	Title       string  `json:"titulo"`
	Price       float64 `json:"precio"`
	Description string  `json:"descripcion"`
	Category    string  `json:"categoria"`
	Image       string  `json:"imagen"`
}

var (
	loadOnce sync.Once
	items    []Item
	loadErr  error
)

// Items returns the embedded catalog. The slice is shared; callers must
// not modify it.
func Items() ([]Item, error) {
	loadOnce.Do(func() {
		loadErr = errors.Wrap(json.Unmarshal(productsJSON, &items), "catalog: decode products.json")
	})
	return items, loadErr
}
