package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	assert.True(t, r.Contains(Pos(2, 3)))
	assert.True(t, r.Contains(Pos(5, 4)))
	assert.False(t, r.Contains(Pos(6, 3)))
	assert.False(t, r.Contains(Pos(2, 5)))
	assert.False(t, r.Contains(Pos(1, 3)))
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersection(b))

	c := NewRect(20, 20, 2, 2)
	assert.True(t, a.Intersection(c).IsEmpty())
}

func TestRectInner(t *testing.T) {
	r := NewRect(0, 0, 10, 6)
	assert.Equal(t, NewRect(1, 1, 8, 4), r.Inner(1))
	assert.True(t, NewRect(0, 0, 2, 2).Inner(1).IsEmpty())
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24)
	c := r.Centered(40, 10)
	assert.Equal(t, NewRect(20, 7, 40, 10), c)

	clamped := r.Centered(200, 100)
	assert.Equal(t, r, clamped)
}
