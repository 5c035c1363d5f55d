package logging

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingEvictsOldestAtCapacity(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		_, err := fmt.Fprintf(r, "line %d\n", i)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, r.Lines())
}

func TestRingSplitsMultiLineWrites(t *testing.T) {
	r := NewRing(10)
	_, err := r.Write([]byte("first\nsecond\n\nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, r.Lines())
}

func TestRingLinesReturnsCopy(t *testing.T) {
	r := NewRing(10)
	_, _ = r.Write([]byte("original\n"))
	lines := r.Lines()
	lines[0] = "mutated"
	assert.Equal(t, []string{"original"}, r.Lines())
}

func TestRingZeroCapacityUsesDefault(t *testing.T) {
	r := NewRing(0)
	for i := 0; i < DefaultRingCapacity+10; i++ {
		_, _ = fmt.Fprintf(r, "line %d\n", i)
	}
	assert.Equal(t, DefaultRingCapacity, r.Len())
}

func TestNewLoggerWritesToSink(t *testing.T) {
	r := NewRing(10)
	log := NewLogger(r, zerolog.InfoLevel)

	log.Info().Str("archive", "Bananas_20260314-092653.zip").Msg("backup created")
	log.Debug().Msg("below the level, never lands")

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "backup created")
	assert.Contains(t, lines[0], "Bananas_20260314-092653.zip")
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, LevelFromString("debug"))
	assert.Equal(t, zerolog.WarnLevel, LevelFromString("WARN"))
	assert.Equal(t, zerolog.InfoLevel, LevelFromString(""))
	assert.Equal(t, zerolog.InfoLevel, LevelFromString("chatty"))
}
