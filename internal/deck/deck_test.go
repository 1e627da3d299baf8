package deck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/store"
)

func testCard(id, subject string) card.Flashcard {
	return card.New(id, subject, "front "+id, "back "+id, card.DifficultyMedium)
}

func TestOpenEmptyStore(t *testing.T) {
	d, err := Open(context.Background(), store.NewMemKV())
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Cards())
}

func TestAddAndReload(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()

	d, err := Open(ctx, kv)
	require.NoError(t, err)
	require.NoError(t, d.Add(ctx, testCard("a", "math")))
	require.NoError(t, d.Add(ctx, testCard("b", "math")))

	reloaded, err := Open(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())

	got, ok := reloaded.Get("a")
	require.True(t, ok)
	assert.Equal(t, "front a", got.Front)
}

func TestAddRejectsDuplicateAndInvalid(t *testing.T) {
	ctx := context.Background()
	d, err := Open(ctx, store.NewMemKV())
	require.NoError(t, err)

	require.NoError(t, d.Add(ctx, testCard("a", "math")))
	assert.ErrorIs(t, d.Add(ctx, testCard("a", "math")), ErrDuplicate)

	blank := testCard("b", "math")
	blank.Front = ""
	assert.Error(t, d.Add(ctx, blank))
	assert.Equal(t, 1, d.Len())
}

func TestPutUpdatesExistingOnly(t *testing.T) {
	ctx := context.Background()
	d, err := Open(ctx, store.NewMemKV())
	require.NoError(t, err)
	require.NoError(t, d.Add(ctx, testCard("a", "math")))

	c, _ := d.Get("a")
	c.RepetitionCount = 3
	require.NoError(t, d.Put(ctx, c))

	got, _ := d.Get("a")
	assert.Equal(t, 3, got.RepetitionCount)

	assert.ErrorIs(t, d.Put(ctx, testCard("ghost", "math")), ErrNotFound)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	d, err := Open(ctx, store.NewMemKV())
	require.NoError(t, err)
	require.NoError(t, d.Add(ctx, testCard("a", "math")))

	require.NoError(t, d.Remove(ctx, "a"))
	assert.Equal(t, 0, d.Len())
	assert.ErrorIs(t, d.Remove(ctx, "a"), ErrNotFound)
}

func TestCardsOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	d, err := Open(ctx, store.NewMemKV())
	require.NoError(t, err)

	old := testCard("z", "math")
	old.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := testCard("a", "math")
	recent.CreatedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, d.Add(ctx, recent))
	require.NoError(t, d.Add(ctx, old))

	cards := d.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "z", cards[0].ID)
	assert.Equal(t, "a", cards[1].ID)
}

func TestSubjectFilter(t *testing.T) {
	ctx := context.Background()
	d, err := Open(ctx, store.NewMemKV())
	require.NoError(t, err)
	require.NoError(t, d.Add(ctx, testCard("a", "math")))
	require.NoError(t, d.Add(ctx, testCard("b", "history")))

	math := d.Subject("math")
	require.Len(t, math, 1)
	assert.Equal(t, "a", math[0].ID)
}
