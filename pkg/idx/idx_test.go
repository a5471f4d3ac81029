package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesDistinctSortedIDs(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	require.NotEqual(t, a, b)
	require.True(t, a.String() < b.String(), "ids must be monotonically ordered")
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		id := New()
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)

		_, err = Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestTimeExtraction(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, Zero.Time().IsZero())
}
