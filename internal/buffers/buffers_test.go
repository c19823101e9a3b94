package buffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ReadFallsBack(t *testing.T) {
	s := New()

	assert.Equal(t, "original", s.Read("a", "original"))
	assert.False(t, s.Has("a"))
}

func TestStore_WriteOverwrites(t *testing.T) {
	s := New()

	s.Write("a", "one")
	s.Write("a", "two")

	assert.Equal(t, "two", s.Read("a", "original"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_EmptyTextIsABuffer(t *testing.T) {
	s := New()

	s.Write("a", "")

	assert.True(t, s.Has("a"))
	assert.Equal(t, "", s.Read("a", "original"))
}

func TestStore_IDsSorted(t *testing.T) {
	s := New()
	s.Write("c", "")
	s.Write("a", "")
	s.Write("b", "")

	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
}

func TestStore_CloneIsIndependent(t *testing.T) {
	s := New()
	s.Write("a", "one")

	c := s.Clone()
	c.Write("a", "changed")
	c.Write("b", "new")

	assert.Equal(t, "one", s.Read("a", ""))
	assert.False(t, s.Has("b"))
	assert.Equal(t, "changed", c.Read("a", ""))
}
