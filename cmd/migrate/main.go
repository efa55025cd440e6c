package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/pkg/errors"

	"github.com/murkotick/product-catalog-graphql/internal/pkg/config"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

// Applies the DDL in migrations/001_initial_schema.sql to the Spanner
// database backing STORE_DRIVER=spanner (typically the emulator).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	logger := logging.NewLogger(logging.InfoLevel)
	config.LoadEnv(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := config.GetEnv("SPANNER_DATABASE", "")
	if db == "" {
		logger.Fatal("SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}
	ddlPath := config.GetEnv("MIGRATION_FILE", filepath.Join("migrations", "001_initial_schema.sql"))

	n, err := migrate(ctx, db, ddlPath)
	if err != nil {
		logger.WithError(err).WithField("database", db).Fatal("Migration failed")
	}
	logger.WithFields(logging.Fields{"database": db, "statements": n}).Info("Applied DDL statements")
}

func migrate(ctx context.Context, db, ddlPath string) (int, error) {
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		return 0, errors.Wrap(err, "read DDL")
	}
	if len(stmts) == 0 {
		return 0, errors.Errorf("no DDL statements found in %s", ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "database admin client")
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return 0, errors.Wrap(err, "UpdateDatabaseDdl")
	}
	if err := op.Wait(ctx); err != nil {
		return 0, errors.Wrap(err, "UpdateDatabaseDdl wait")
	}
	return len(stmts), nil
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitDDL(string(b)), nil
}

// splitDDL drops "--" comment lines and splits on semicolons.
func splitDDL(sql string) []string {
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
