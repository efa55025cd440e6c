package repo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/models/m_product"
)

// MongoStore keeps products in a MongoDB collection. It implements both
// contracts.ProductStore and contracts.ReadModel.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// Insert lets the store assign a fresh ObjectID.
func (s *MongoStore) Insert(ctx context.Context, fields domain.Fields) (*domain.Product, error) {
	doc := m_product.Document{
		ID:          primitive.NewObjectID(),
		Title:       fields.Title,
		Price:       fields.Price,
		Description: fields.Description,
		Category:    fields.Category,
		Image:       fields.Image,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "mongo: insert product")
	}
	return documentToProduct(&doc), nil
}

// Update runs a single findOneAndUpdate, so the match and the write are
// atomic on the document.
func (s *MongoStore) Update(ctx context.Context, productID string, patch domain.Patch) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	filter := bson.D{{Key: m_product.KeyID, Value: oid}}

	var doc m_product.Document
	if patch.IsEmpty() {
		// $set with an empty document is rejected by the server.
		err = s.coll.FindOne(ctx, filter).Decode(&doc)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.D{{Key: "$set", Value: buildSet(patch)}}
		err = s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "mongo: update product %s", productID)
	}
	return documentToProduct(&doc), nil
}

// Delete removes the document. Unknown or malformed IDs match nothing.
func (s *MongoStore) Delete(ctx context.Context, productID string) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil
	}
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: m_product.KeyID, Value: oid}}); err != nil {
		return errors.Wrapf(err, "mongo: delete product %s", productID)
	}
	return nil
}

func (s *MongoStore) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc m_product.Document
	err = s.coll.FindOne(ctx, bson.D{{Key: m_product.KeyID, Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "mongo: get product %s", productID)
	}
	return dto.FromProduct(documentToProduct(&doc)), nil
}

// ListProducts returns the collection in natural order.
func (s *MongoStore) ListProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "mongo: list products")
	}

	var docs []m_product.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "mongo: decode products")
	}

	out := make([]*dto.ProductDTO, 0, len(docs))
	for i := range docs {
		out = append(out, dto.FromProduct(documentToProduct(&docs[i])))
	}
	return out, nil
}

// buildSet maps the set fields of a patch to a $set document. Explicit
// nulls are stored as null.
func buildSet(patch domain.Patch) bson.D {
	set := bson.D{}
	if patch.Title.Set {
		set = append(set, bson.E{Key: m_product.KeyTitle, Value: patch.Title.Value})
	}
	if patch.Price.Set {
		set = append(set, bson.E{Key: m_product.KeyPrice, Value: patch.Price.Value})
	}
	if patch.Description.Set {
		set = append(set, bson.E{Key: m_product.KeyDescription, Value: patch.Description.Value})
	}
	if patch.Category.Set {
		set = append(set, bson.E{Key: m_product.KeyCategory, Value: patch.Category.Value})
	}
	if patch.Image.Set {
		set = append(set, bson.E{Key: m_product.KeyImage, Value: patch.Image.Value})
	}
	return set
}

func documentToProduct(doc *m_product.Document) *domain.Product {
	return domain.ReconstructProduct(doc.ID.Hex(), domain.Fields{
		Title:       doc.Title,
		Price:       doc.Price,
		Description: doc.Description,
		Category:    doc.Category,
		Image:       doc.Image,
	}, doc.ID.Timestamp())
}
