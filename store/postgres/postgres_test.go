package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/store/postgres"
)

func newTestStore(t *testing.T) *postgres.Store {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, dbURL)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx))
	t.Cleanup(func() {
		_ = store.Reset(context.Background())
		store.Close()
	})
	return store
}

func TestStore_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	t0 := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)

	// GIVEN: Three calculations an hour apart
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(ctx, generic.Calculation{
			ID:             generic.CalculationID(id),
			Kind:           generic.KindTakeHome,
			Input:          decimal.NewFromInt(2000000),
			BasicDAPercent: decimal.NewFromInt(50),
			Result:         decimal.RequireFromString("140633.33"),
			RequestID:      "req-" + id,
			CreatedAt:      t0.Add(time.Duration(i) * time.Hour),
		}))
	}

	// THEN: Values round-trip exactly
	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("140633.33").Equal(got.Result))
	assert.Equal(t, "req-b", got.RequestID)
	assert.True(t, t0.Add(time.Hour).Equal(got.CreatedAt))

	// Duplicates are rejected
	err = store.Append(ctx, generic.Calculation{ID: "a", Kind: generic.KindTax, CreatedAt: t0})
	assert.ErrorIs(t, err, generic.ErrDuplicateCalculation)

	list, err := store.List(ctx, generic.CalculationFilter{Kind: generic.KindTakeHome, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, generic.CalculationID("c"), list[0].ID)

	n, err := store.DeleteBefore(ctx, t0.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, generic.ErrCalculationNotFound)
}
