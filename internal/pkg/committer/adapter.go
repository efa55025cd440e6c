package committer

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
)

// ErrNoClient is returned when the adapter was built without a Spanner client.
var ErrNoClient = errors.New("committer: spanner client is nil")

// Adapter applies commit plans to Spanner.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply writes the plan in a single read-write transaction.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return ErrNoClient
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	return errors.Wrap(err, "committer: apply")
}

// Transact runs build inside a read-write transaction and buffers the plan
// it returns. Reads made through tx and the buffered writes commit
// atomically; Spanner may call build more than once on abort.
func (a *Adapter) Transact(ctx context.Context, build func(ctx context.Context, tx *spanner.ReadWriteTransaction) (*Plan, error)) error {
	if a.client == nil {
		return ErrNoClient
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		plan, err := build(ctx, tx)
		if err != nil {
			return err
		}
		if plan.IsEmpty() {
			return nil
		}
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}
