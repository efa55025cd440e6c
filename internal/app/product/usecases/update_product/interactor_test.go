package update_product

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/repo"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

func seed(t *testing.T, store *repo.MemoryStore) string {
	t.Helper()
	title, price, cat := "Chair", 49.99, "furniture"
	p, err := store.Insert(context.Background(), domain.Fields{Title: &title, Price: &price, Category: &cat})
	require.NoError(t, err)
	return p.ID()
}

func TestExecute_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore(clock.RealClock{})
	id := seed(t, store)

	out, err := NewInteractor(store, logging.Discard()).Execute(ctx, Request{
		ProductID: id,
		Patch:     domain.Patch{Price: domain.Some(39.99)},
	})
	require.NoError(t, err)
	assert.Equal(t, id, out.ProductID)
	assert.Equal(t, "Chair", *out.Title)
	assert.Equal(t, 39.99, *out.Price)
	assert.Equal(t, "furniture", *out.Category)
}

func TestExecute_ExplicitNullClears(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore(clock.RealClock{})
	id := seed(t, store)

	out, err := NewInteractor(store, logging.Discard()).Execute(ctx, Request{
		ProductID: id,
		Patch:     domain.Patch{Category: domain.Null[string]()},
	})
	require.NoError(t, err)
	assert.Nil(t, out.Category)
	assert.Equal(t, "Chair", *out.Title)
}

func TestExecute_UnknownID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	store := repo.NewMemoryStore(clock.RealClock{})

	out, err := NewInteractor(store, logger).Execute(context.Background(), Request{
		ProductID: "does-not-exist",
		Patch:     domain.Patch{Title: domain.Some("x")},
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, hook.AllEntries())
}

func TestExecute_StoreFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	store := &repo.UnavailableStore{Cause: errors.New("connection reset")}

	_, err := NewInteractor(store, logger).Execute(context.Background(), Request{ProductID: "p-1"})
	assert.ErrorIs(t, err, domain.ErrUpdateFailed)
	assert.Equal(t, "product update failed", err.Error())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "p-1", entry.Data["product_id"])
}
