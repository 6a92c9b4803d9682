package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForTheme(t *testing.T) {
	assert.Equal(t, Day, ForTheme("day", true))
	assert.Equal(t, Night, ForTheme("night", false))
	assert.Equal(t, Night, ForTheme("auto", true))
	assert.Equal(t, Day, ForTheme("auto", false))
}

func TestApply_SwapsPalette(t *testing.T) {
	t.Cleanup(func() { Apply(Night) })

	Apply(Day)
	assert.Equal(t, "day", Current.Name)
	assert.Equal(t, Day.Accent, AccentStyle.GetForeground())

	Apply(Night)
	assert.Equal(t, Night.Accent, AccentStyle.GetForeground())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "he...", Truncate("hello world", 5))
	assert.Equal(t, "hel", Truncate("hello", 3))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abc", Pad("abcdef", 3))
	assert.Equal(t, "", Pad("abc", 0))
}
