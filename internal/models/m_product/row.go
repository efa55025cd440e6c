package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Row is a scanned products row. Columns follow SelectColumns.
type Row struct {
	ProductID   string
	Title       spanner.NullString
	Price       spanner.NullFloat64
	Description spanner.NullString
	Category    spanner.NullString
	Image       spanner.NullString
	CreatedAt   time.Time
}

// ScanRow reads a row selected with SelectColumns.
func ScanRow(r *spanner.Row) (*Row, error) {
	var out Row
	if err := r.Columns(&out.ProductID, &out.Title, &out.Price, &out.Description,
		&out.Category, &out.Image, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
