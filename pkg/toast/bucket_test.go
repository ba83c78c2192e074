package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ts []Toast) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestBucket_Insert(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()
		b := newBucket(TopRight, 5)
		for _, id := range []string{"a", "b", "c"} {
			assert.Empty(t, b.insert(Toast{ID: id}))
		}
		assert.Equal(t, []string{"a", "b", "c"}, ids(b.snapshot()))
	})

	t.Run("evicts oldest over capacity", func(t *testing.T) {
		t.Parallel()
		b := newBucket(TopRight, 3)
		var evicted []Toast
		for _, id := range []string{"a", "b", "c", "d"} {
			evicted = append(evicted, b.insert(Toast{ID: id})...)
		}
		assert.Equal(t, []string{"a"}, ids(evicted))
		assert.Equal(t, []string{"b", "c", "d"}, ids(b.snapshot()))
		assert.Equal(t, 3, b.len())
	})

	t.Run("zero capacity is unbounded", func(t *testing.T) {
		t.Parallel()
		b := newBucket(TopRight, 0)
		for _, id := range []string{"a", "b", "c", "d"} {
			assert.Empty(t, b.insert(Toast{ID: id}))
		}
		assert.Equal(t, 4, b.len())
	})
}

func TestBucket_Remove(t *testing.T) {
	t.Parallel()

	b := newBucket(TopLeft, 5)
	b.insert(Toast{ID: "a"})
	b.insert(Toast{ID: "b"})
	b.insert(Toast{ID: "c"})

	got, ok := b.remove("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, []string{"a", "c"}, ids(b.snapshot()))

	_, ok = b.remove("b")
	assert.False(t, ok, "second remove is a no-op")

	oldest, ok := b.oldest()
	require.True(t, ok)
	assert.Equal(t, "a", oldest.ID)
}

func TestBucket_Clear(t *testing.T) {
	t.Parallel()

	b := newBucket(BottomLeft, 5)
	b.insert(Toast{ID: "a"})
	b.insert(Toast{ID: "b"})

	assert.Equal(t, []string{"a", "b"}, ids(b.clear()))
	assert.Equal(t, 0, b.len())
	assert.Empty(t, b.clear())

	_, ok := b.oldest()
	assert.False(t, ok)
}

func TestBucket_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	b := newBucket(TopRight, 5)
	b.insert(Toast{ID: "a", Message: "original"})

	snap := b.snapshot()
	snap[0].Message = "changed"

	assert.Equal(t, "original", b.snapshot()[0].Message)
	assert.Equal(t, 1, b.len())
}
