package repository

import (
	"context"
	"testing"

	"cuisinecraft-hub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_Confirm(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	ctx := context.Background()

	res, err := store.Reservations.Create(ctx, &model.Reservation{
		ReservationData: model.ReservationData{
			UserEmail: "guest@x.com",
			UserName:  "Guest",
			Date:      "2026-10-20",
			Time:      "19:30",
			Guests:    4,
			Status:    model.ReservationPending,
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       string
		matched  int64
		modified int64
		err      error
	}{
		{name: "Pending reservation", id: res.InsertedID, matched: 1, modified: 1},
		{name: "Already confirmed", id: res.InsertedID, matched: 1, modified: 0},
		{name: "Unknown reservation", id: uuid.NewString(), matched: 0, modified: 0},
		{name: "Malformed id", id: "42", err: model.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upd, err := store.Reservations.Confirm(ctx, tt.id)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.matched, upd.MatchedCount)
			assert.Equal(t, tt.modified, upd.ModifiedCount)
		})
	}

	mine, err := store.Reservations.ListByEmail(ctx, "guest@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, model.ReservationConfirmed, mine[0].ReservationData.Status)
	assert.Equal(t, 4, mine[0].ReservationData.Guests)

	del, err := store.Reservations.Delete(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	all, err := store.Reservations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
