package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// expected keys are the column names declared in fields.go
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a product.
// The values map must not include product_id; it is always written first.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	c, v := split(values)
	cols = append(cols, c...)
	vals = append(vals, v...)

	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation removes a product row. Spanner ignores deletes of missing keys.
func DeleteMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// BuildInsertMap prepares the canonical columns for insertion.
// Nil attributes are stored as SQL NULL.
func BuildInsertMap(productID string, title *string, price *float64,
	description, category, image *string, createdAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColProductID:   productID,
		ColTitle:       NullString(title),
		ColPrice:       NullFloat(price),
		ColDescription: NullString(description),
		ColCategory:    NullString(category),
		ColImage:       NullString(image),
		ColCreatedAt:   createdAt,
	}
}

// NullString converts an optional string to its Spanner representation.
func NullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

// NullFloat converts an optional float to its Spanner representation.
func NullFloat(f *float64) spanner.NullFloat64 {
	if f == nil {
		return spanner.NullFloat64{}
	}
	return spanner.NullFloat64{Float64: *f, Valid: true}
}

// StringPtr is the inverse of NullString.
func StringPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.StringVal
	return &v
}

// FloatPtr is the inverse of NullFloat.
func FloatPtr(nf spanner.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

func split(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return cols, vals
}
