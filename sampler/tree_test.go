package sampler

import (
	"errors"
	"testing"
)

func TestDepth(t *testing.T) {
	cases := []struct {
		index int
		want  int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{7, 2},
		{8, 3},
		{1 << 20, 20},
		{0, -1},
		{-5, -1},
	}
	for _, c := range cases {
		if got := Depth(c.index); got != c.want {
			t.Errorf("Depth(%d): got %d, want %d", c.index, got, c.want)
		}
	}
}

func TestLevelBounds(t *testing.T) {
	// GIVEN the subtree rooted at index 2
	// THEN depth 0 is just the root, depth 2 spans indices 8..11
	if left, right := LevelBounds(2, 0); left != 2 || right != 2 {
		t.Errorf("LevelBounds(2, 0): got (%d, %d), want (2, 2)", left, right)
	}
	if left, right := LevelBounds(2, 2); left != 8 || right != 11 {
		t.Errorf("LevelBounds(2, 2): got (%d, %d), want (8, 11)", left, right)
	}
	if left, right := LevelBounds(0, 1); left != -1 || right != -1 {
		t.Errorf("LevelBounds(0, 1): got (%d, %d), want (-1, -1)", left, right)
	}
}

func TestInSubtree(t *testing.T) {
	cases := []struct {
		root, leaf int
		want       bool
	}{
		{1, 7, true},   // everything is under the root
		{2, 4, true},   // left child's left child
		{2, 5, true},   // left child's right child
		{2, 6, false},  // right subtree
		{3, 6, true},
		{3, 4, false},
		{4, 2, false},  // leaf shallower than root
		{0, 3, false},  // invalid root
		{2, -1, false}, // invalid leaf
	}
	for _, c := range cases {
		if got := InSubtree(c.root, c.leaf); got != c.want {
			t.Errorf("InSubtree(%d, %d): got %v, want %v", c.root, c.leaf, got, c.want)
		}
	}
}

func TestPow2(t *testing.T) {
	if got, err := pow2(10); err != nil || got != 1024 {
		t.Errorf("pow2(10): got (%d, %v), want (1024, nil)", got, err)
	}
	if got, err := pow2(-1); err != nil || got != 0 {
		t.Errorf("pow2(-1): got (%d, %v), want (0, nil)", got, err)
	}
	if _, err := pow2(63); !errors.Is(err, ErrOverflow) {
		t.Errorf("pow2(63): got err %v, want ErrOverflow", err)
	}
}
