package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	instancepb "cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
)

var (
	spannerOnce   sync.Once
	spannerClient *spanner.Client
	spannerErr    error
)

// emulatorClient creates a fresh database on the Spanner emulator, applies
// the migrations and returns a data client. Skips when no emulator is set.
func emulatorClient(t *testing.T) *spanner.Client {
	t.Helper()
	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}
	spannerOnce.Do(func() {
		spannerClient, spannerErr = setupEmulatorDatabase()
	})
	require.NoError(t, spannerErr)
	return spannerClient
}

func setupEmulatorDatabase() (*spanner.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	projectID := envOr("SPANNER_PROJECT_ID", "test-project")
	instanceID := envOr("SPANNER_INSTANCE_ID", "emulator-instance")
	databaseID := "it_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:20]

	parent := fmt.Sprintf("projects/%s", projectID)
	instName := fmt.Sprintf("%s/instances/%s", parent, instanceID)
	dbName := fmt.Sprintf("%s/databases/%s", instName, databaseID)

	instAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return nil, err
	}
	defer instAdmin.Close()

	if _, err := instAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instName}); err != nil {
		if status.Code(err) != codes.NotFound {
			return nil, err
		}
		op, err := instAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
			Parent:     parent,
			InstanceId: instanceID,
			Instance: &instancepb.Instance{
				Config:      parent + "/instanceConfigs/emulator-config",
				DisplayName: "Integration Test Instance",
				NodeCount:   1,
			},
		})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return nil, err
		}
		if err == nil {
			if _, err := op.Wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	dbAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return nil, err
	}
	defer dbAdmin.Close()

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_initial_schema.sql"))
	if err != nil {
		return nil, err
	}
	var stmts []string
	for _, line := range strings.Split(string(ddl), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		stmts = append(stmts, line)
	}
	var extra []string
	for _, s := range strings.Split(strings.Join(stmts, "\n"), ";") {
		if s = strings.TrimSpace(s); s != "" {
			extra = append(extra, s)
		}
	}

	op, err := dbAdmin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          instName,
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", databaseID),
		ExtraStatements: extra,
	})
	if err != nil {
		return nil, err
	}
	if _, err := op.Wait(ctx); err != nil {
		return nil, err
	}

	return spanner.NewClient(context.Background(), dbName)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func TestSpannerStore_Integration(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	clk := clock.NewTicking(time.Now().UTC().Truncate(time.Second), time.Second)

	s := NewSpannerStore(client, clk)
	rm := queries.NewSpannerReadModel(client)

	title, price := "Chair", 49.99
	p, err := s.Insert(ctx, domain.Fields{Title: &title, Price: &price})
	require.NoError(t, err)

	got, err := rm.GetProduct(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Chair", *got.Title)
	assert.Equal(t, 49.99, *got.Price)
	assert.Nil(t, got.Image)

	updated, err := s.Update(ctx, p.ID(), domain.Patch{Image: domain.Some("chair.png"), Price: domain.Null[float64]()})
	require.NoError(t, err)
	assert.Equal(t, "Chair", *updated.Title())
	assert.Nil(t, updated.Price())
	assert.Equal(t, "chair.png", *updated.Image())

	got, err = rm.GetProduct(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, got.Price)
	assert.Equal(t, "chair.png", *got.Image)

	_, err = s.Update(ctx, uuid.New().String(), domain.Patch{Title: domain.Some("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	second, err := s.Insert(ctx, domain.Fields{})
	require.NoError(t, err)

	items, err := rm.ListProducts(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	assert.Less(t, indexOf(ids, p.ID()), indexOf(ids, second.ID()))

	require.NoError(t, s.Delete(ctx, p.ID()))
	_, err = rm.GetProduct(ctx, p.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, s.Delete(ctx, p.ID()))
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
