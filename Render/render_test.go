package Render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrs(vs ...int) []*int {
	out := make([]*int, len(vs))
	for i := range vs {
		if vs[i] >= 0 {
			out[i] = &vs[i]
		}
	}
	return out
}

// rows of the tree 10(5(3,7),20(12,_)); -1 is a missing node.
func sample() [][]*int {
	return [][]*int{ptrs(10), ptrs(5, 20), ptrs(3, 7, 12, -1)}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Levels(&buf, sample(), Options{Width: 24, NoColor: true}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Tree:", lines[0])
	assert.Equal(t, strings.Repeat(" ", 11)+"10", lines[1])
	assert.Equal(t, "     5           20", lines[2])
	assert.Equal(t, "  3     7     12", lines[3])
}

func TestLevelsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Levels[int](&buf, nil, Options{NoColor: true}))
	assert.Equal(t, "Tree:\n[empty]\n", buf.String())
}

func TestLevelsNarrow(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]*int{ptrs(100), ptrs(50, 200)}
	require.NoError(t, Levels(&buf, rows, Options{Width: 2, NoColor: true}))
	// cells fall back to the widest key plus one column.
	assert.Equal(t, "Tree:\n100\n 50 200\n", buf.String())
}

func TestHierarchy(t *testing.T) {
	out := Hierarchy(sample())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "10", lines[0])
	for _, k := range []string{"5", "20", "3", "7", "12"} {
		assert.Contains(t, out, k)
	}
	assert.Equal(t, "[empty]\n", Hierarchy[int](nil))
}

func TestPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Path(&buf, "Min path", []int{20, 30, 40}, Options{NoColor: true}))
	assert.Equal(t, "Min path (length 2): 20 30 40\n", buf.String())
}

func TestTermWidth(t *testing.T) {
	// test binaries rarely run on a terminal; either way the width is usable.
	assert.Positive(t, TermWidth(nil))
}
