package window

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	a, b, c, d, x, y := testItem{id: "a"}, testItem{id: "b"}, testItem{id: "c"}, testItem{id: "d"}, testItem{id: "x"}, testItem{id: "y"}

	tests := []struct {
		name      string
		old       []Item
		new       []Item
		additions []Change
		deletions []Change
	}{
		{
			name: "identical",
			old:  []Item{a, b, c},
			new:  []Item{a, b, c},
		},
		{
			name:      "insert in the middle and at the end",
			old:       []Item{a, b, c},
			new:       []Item{a, x, b, c, y},
			additions: []Change{{Index: 1, Item: x}, {Index: 4, Item: y}},
		},
		{
			name:      "delete",
			old:       []Item{a, b, c, d},
			new:       []Item{b, d},
			deletions: []Change{{Index: 0, Item: a}, {Index: 2, Item: c}},
		},
		{
			name:      "mixed",
			old:       []Item{a, b, c},
			new:       []Item{x, a, c},
			additions: []Change{{Index: 0, Item: x}},
			deletions: []Change{{Index: 1, Item: b}},
		},
		{
			name:      "from empty",
			new:       []Item{a, b},
			additions: []Change{{Index: 0, Item: a}, {Index: 1, Item: b}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Diff(tt.old, tt.new)
			require.NoError(t, err)
			require.Equal(t, tt.additions, got.Additions)
			require.Equal(t, tt.deletions, got.Deletions)
			require.Equal(t, len(tt.additions)+len(tt.deletions) == 0, got.Empty())
		})
	}
}

func TestDiffComparesIdentityNotContent(t *testing.T) {
	t.Parallel()

	first := testItem{id: "1", name: "Item", height: 40}
	twin := testItem{id: "2", name: "Item", height: 40}

	got, err := Diff([]Item{first}, []Item{first, twin})
	require.NoError(t, err)
	require.Equal(t, []Change{{Index: 1, Item: twin}}, got.Additions)
	require.Empty(t, got.Deletions)
}

func TestDiffIdentityCollision(t *testing.T) {
	t.Parallel()

	a := testItem{id: "a"}
	_, err := Diff([]Item{a}, []Item{a, testItem{id: "a", name: "other"}})
	var collision *IdentityCollisionError
	require.True(t, errors.As(err, &collision))
	require.Equal(t, "a", collision.ID)
}

func TestCheckOrder(t *testing.T) {
	t.Parallel()

	a, b, c, x := testItem{id: "a"}, testItem{id: "b"}, testItem{id: "c"}, testItem{id: "x"}

	tests := []struct {
		name string
		old  []Item
		new  []Item
		err  error
	}{
		{name: "unchanged", old: []Item{a, b, c}, new: []Item{a, b, c}},
		{name: "insertions between survivors", old: []Item{a, b, c}, new: []Item{x, a, b, c}},
		{name: "deletion keeps order", old: []Item{a, b, c}, new: []Item{a, c}},
		{name: "swap", old: []Item{a, b, c}, new: []Item{b, a, c}, err: ErrReordered},
		{name: "deletion with reorder", old: []Item{a, b, c}, new: []Item{c, b}, err: ErrReordered},
		{name: "insertion with reorder", old: []Item{a, b}, new: []Item{b, x, a}, err: ErrReordered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			changes, err := Diff(tt.old, tt.new)
			require.NoError(t, err)
			err = CheckOrder(tt.old, tt.new, changes)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}
