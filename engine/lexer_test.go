package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountActive(t *testing.T) {
	t.Run("plain delimiters, escape-aware", func(t *testing.T) {
		assert.Equal(t, 2, countActive([]byte("a;b;c"), ';', false))
	})

	t.Run("delimiter inside double quotes is inactive", func(t *testing.T) {
		assert.Equal(t, 0, countActive([]byte(`"a;b"`), ';', false))
	})

	t.Run("delimiter inside single quotes is inactive", func(t *testing.T) {
		assert.Equal(t, 0, countActive([]byte(`'a;b'`), ';', false))
	})

	t.Run("backslash escapes only the delimiter, not the quote toggle", func(t *testing.T) {
		// a\;b;c: the first ';' is escaped (inactive), the second is not.
		assert.Equal(t, 1, countActive([]byte(`a\;b;c`), ';', false))
		// \"a;b": the backslash does not stop '"' from opening a quoted
		// run, so the ';' inside it stays inactive.
		assert.Equal(t, 0, countActive([]byte(`\"a;b"`), ';', false))
	})

	t.Run("ignoreEscapes=true counts every occurrence, quotes notwithstanding", func(t *testing.T) {
		assert.Equal(t, 1, countActive([]byte(`"a;b"`), ';', true))
	})
}

func TestSubstringField(t *testing.T) {
	t.Run("middle field, with rest", func(t *testing.T) {
		field, rest := substringField([]byte("a;b;c"), ';', 1, false, true)
		assert.Equal(t, "b", field)
		assert.Equal(t, "c", rest)
	})

	t.Run("out of range falls back to the tail", func(t *testing.T) {
		field, _ := substringField([]byte("a;b;c"), ';', 5, false, true)
		assert.Equal(t, "c", field)
	})

	t.Run("no delimiter at all returns the whole string", func(t *testing.T) {
		field, _ := substringField([]byte("abc"), ';', 0, false, true)
		assert.Equal(t, "abc", field)
	})
}

func TestSplitIgnoreEscapes(t *testing.T) {
	t.Run("splits on every occurrence, unconditionally", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2", "3"}, splitIgnoreEscapes("1,2,3", ','))
	})

	t.Run("B2: a single ';' produces two empty parts", func(t *testing.T) {
		assert.Equal(t, []string{"", ""}, splitIgnoreEscapes(";", ';'))
	})
}

func TestSplitEscapeAware(t *testing.T) {
	t.Run("B3: a delimiter inside a quoted run is not a separator", func(t *testing.T) {
		assert.Equal(t, []string{`set "a;b"`, `set c`}, splitEscapeAware(`set "a;b";set c`, ';'))
	})
}
