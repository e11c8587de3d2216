package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLines(t *testing.T) {
	lines, err := Lines(writeFile(t, "COM)B\nB)C\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"COM)B", "B)C"}, lines)
}

func TestInts(t *testing.T) {
	t.Run("newline separated", func(t *testing.T) {
		nums, err := Ints(writeFile(t, "12\n14\n1969\n"), "\n")
		require.NoError(t, err)
		assert.Equal(t, []int{12, 14, 1969}, nums)
	})

	t.Run("comma separated", func(t *testing.T) {
		nums, err := Ints(writeFile(t, "1,9,10,3\n"), ",")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 9, 10, 3}, nums)
	})

	t.Run("negative values", func(t *testing.T) {
		nums, err := Ints(writeFile(t, "-7,0,3"), ",")
		require.NoError(t, err)
		assert.Equal(t, []int{-7, 0, 3}, nums)
	})

	t.Run("bad token is fatal", func(t *testing.T) {
		_, err := Ints(writeFile(t, "1,x,3"), ",")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Ints(filepath.Join(t.TempDir(), "nope.txt"), ",")
		assert.Error(t, err)
	})
}

func TestDigits(t *testing.T) {
	digits, err := Digits(writeFile(t, "123456789012\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2}, digits)

	_, err = Digits(writeFile(t, "12a4"))
	assert.Error(t, err)
}
