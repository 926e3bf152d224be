package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	DBExecutor
}

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT id FROM services":                 "select",
		"  insert into appointments (id) VALUES 1": "insert",
		"UPDATE appointments SET status = $1":      "update",
		"DELETE FROM custom_hours":                 "delete",
		"WITH x AS (SELECT 1) SELECT * FROM x":     "with",
		"LOCK TABLE appointments":                  "other",
		"":                                         "unknown",
	}

	for query, want := range tests {
		assert.Equal(t, want, operation(query), query)
	}
}

func TestGetExecutor(t *testing.T) {
	db := &fakeExecutor{}
	tx := &fakeTx{}

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}
