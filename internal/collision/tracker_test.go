package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.False(t, tracker.HasDuplicates())
	require.Empty(t, tracker.Duplicates())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.True(t, tracker.Track(35))
	require.True(t, tracker.Track(216))
	require.True(t, tracker.Track(217))
	require.False(t, tracker.HasDuplicates())

	require.False(t, tracker.Track(216))
	require.False(t, tracker.Track(217))
	require.False(t, tracker.Track(216))

	require.True(t, tracker.HasDuplicates())
	require.Equal(t, []int{216, 217}, tracker.Duplicates(), "each repeated tag listed once")
}

func TestHasDuplicates(t *testing.T) {
	require.False(t, HasDuplicates())
	require.False(t, HasDuplicates(1, 2, 3))
	require.True(t, HasDuplicates(1, 2, 1))
}

func TestDuplicates(t *testing.T) {
	require.Empty(t, Duplicates())
	require.Empty(t, Duplicates(1, 2, 3))
	require.Equal(t, []int{58, 1}, Duplicates(1, 58, 2, 58, 1, 58, 1))
}
