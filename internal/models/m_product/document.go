package m_product

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document is the MongoDB representation of a product.
// Nil attributes are omitted on insert, as Mongoose does for undefined keys.
type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       *string            `bson:"titulo,omitempty"`
	Price       *float64           `bson:"precio,omitempty"`
	Description *string            `bson:"descripcion,omitempty"`
	Category    *string            `bson:"categoria,omitempty"`
	Image       *string            `bson:"imagen,omitempty"`
}
