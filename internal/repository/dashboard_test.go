package repository

import (
	"context"
	"testing"

	"zfast-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCounts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewSponsorRepository(db).Create(ctx, testutils.NewSponsorFactory().Create()))
	require.NoError(t, NewSponsorRepository(db).Create(ctx, testutils.NewSponsorFactory().Create()))
	require.NoError(t, NewCarRepository(db).Create(ctx, testutils.NewCarFactory().Create()))

	contacts := NewContactMessageRepository(db)
	first := testutils.NewContactMessageFactory().Create()
	require.NoError(t, contacts.Create(ctx, first))
	require.NoError(t, contacts.Create(ctx, testutils.NewContactMessageFactory().Create()))
	require.NoError(t, contacts.MarkRead(ctx, first.ID))

	counts, err := NewDashboardRepository(db).Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.Sponsors)
	assert.Equal(t, int64(1), counts.Cars)
	assert.Equal(t, int64(0), counts.TeamMembers)
	assert.Equal(t, int64(2), counts.Messages)
	assert.Equal(t, int64(1), counts.UnreadMessages)
}
