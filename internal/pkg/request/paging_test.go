package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, ValidateWindow(0, 10))
	assert.NoError(t, ValidateWindow(5, 1))

	assert.ErrorIs(t, ValidateWindow(-1, 10), ErrBadWindow)
	assert.ErrorIs(t, ValidateWindow(0, -1), ErrBadWindow)
	assert.ErrorIs(t, ValidateWindow(0, 0), ErrBadWindow)
}

func TestWindowSnapsToPage(t *testing.T) {
	cases := []struct {
		from, size    int
		limit, offset uint64
	}{
		{0, 10, 10, 0},
		{5, 10, 10, 0},   // mid-page from snaps back to page 0
		{10, 10, 10, 10},
		{15, 10, 10, 10}, // mid-page from snaps back to page 1
		{7, 3, 3, 6},
		{1, 1, 1, 1},
	}
	for _, c := range cases {
		limit, offset := Window(c.from, c.size)
		assert.Equal(t, c.limit, limit, "from=%d size=%d", c.from, c.size)
		assert.Equal(t, c.offset, offset, "from=%d size=%d", c.from, c.size)
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 0))
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, -3, ParseInt("-3", 0))
}
