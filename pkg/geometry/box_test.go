package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name    string
		a       Box
		b       Box
		want    Box
		overlap bool
	}{
		{
			name:    "partial overlap",
			a:       NewBox(0, 0, 10, 10),
			b:       NewBox(5, 5, 10, 10),
			want:    NewBox(5, 5, 5, 5),
			overlap: true,
		},
		{
			name:    "contained",
			a:       NewBox(0, 0, 10, 10),
			b:       NewBox(2, 2, 4, 4),
			want:    NewBox(2, 2, 4, 4),
			overlap: true,
		},
		{
			name:    "disjoint",
			a:       NewBox(0, 0, 2, 2),
			b:       NewBox(5, 5, 2, 2),
			overlap: false,
		},
		{
			name:    "edge touching is not overlap",
			a:       NewBox(0, 0, 5, 5),
			b:       NewBox(5, 0, 5, 5),
			overlap: false,
		},
		{
			name:    "corner touching is not overlap",
			a:       NewBox(0, 0, 5, 5),
			b:       NewBox(5, 5, 5, 5),
			overlap: false,
		},
		{
			name:    "empty operand",
			a:       NewBox(0, 0, 0, 10),
			b:       NewBox(0, 0, 10, 10),
			overlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			assert.Equal(t, tt.overlap, ok)
			if tt.overlap {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIntersectCommutative(t *testing.T) {
	a := NewBox(1, 2, 8, 6)
	b := NewBox(4, 3, 10, 10)

	ab, okAB := Intersect(a, b)
	ba, okBA := Intersect(b, a)

	assert.Equal(t, okAB, okBA)
	assert.Equal(t, ab, ba)
}

func TestIntersectAssociative(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(2, 2, 10, 10)
	c := NewBox(4, 4, 10, 10)

	ab, _ := Intersect(a, b)
	left, okLeft := Intersect(ab, c)

	bc, _ := Intersect(b, c)
	right, okRight := Intersect(a, bc)

	assert.True(t, okLeft)
	assert.True(t, okRight)
	assert.Equal(t, left, right)
}

func TestIntersectIdempotent(t *testing.T) {
	a := NewBox(3, 4, 5, 6)

	got, ok := Intersect(a, a)
	assert.True(t, ok)
	assert.Equal(t, a, got)
}

func TestEmpty(t *testing.T) {
	assert.True(t, Box{W: 0, H: 5}.Empty())
	assert.True(t, Box{W: 5, H: 0}.Empty())
	assert.False(t, NewBox(0, 0, 1, 1).Empty())
}
