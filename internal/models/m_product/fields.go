package m_product

// Spanner table and column names.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColTitle       = "title"
	ColPrice       = "price"
	ColDescription = "description"
	ColCategory    = "category"
	ColImage       = "image"
	ColCreatedAt   = "created_at"
)

// MongoDB collection and document keys. The keys match the documents
// already written by the original Mongoose model.
const (
	CollectionName = "products"

	KeyID          = "_id"
	KeyTitle       = "titulo"
	KeyPrice       = "precio"
	KeyDescription = "descripcion"
	KeyCategory    = "categoria"
	KeyImage       = "imagen"
)

// SelectColumns is the column list every read query uses, in scan order.
var SelectColumns = []string{
	ColProductID, ColTitle, ColPrice, ColDescription, ColCategory, ColImage, ColCreatedAt,
}
