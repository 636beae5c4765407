package htmltable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satlist/satlist"
	"github.com/satlist/satlist/htmltable"
)

func TestTokenizer_Feed(t *testing.T) {
	t.Parallel()

	t.Run("turns table markup into rows of cell text", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<table>
			<tr><th>Name</th><th>Position</th></tr>
			<tr><td>Astra 1KR</td><td>19.2E</td></tr>
		</table>`)

		require.Len(t, tok.Rows(), 2)
		assert.Equal(t, satlist.Row{"Name", "Position"}, tok.Rows()[0])
		assert.Equal(t, satlist.Row{"Astra 1KR", "19.2E"}, tok.Rows()[1])
	})

	t.Run("joins text nodes within a cell and trims the result", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<tr><td> 10730 <b>H</b> <i>DVB-S2/8PSK</i> </td></tr>`)

		require.Len(t, tok.Rows(), 1)
		assert.Equal(t, satlist.Row{"10730 H DVB-S2/8PSK"}, tok.Rows()[0])
	})

	t.Run("honors a custom separator", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New(htmltable.WithSeparator("|"))
		tok.Feed(`<tr><td><span>a</span><span>b</span></td></tr>`)

		require.Len(t, tok.Rows(), 1)
		assert.Equal(t, satlist.Row{"a|b"}, tok.Rows()[0])
	})

	t.Run("captures hrefs as pseudo-cells where the anchor opens", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<tr>
			<td><a href="astra-1kr.html">Astra 1KR</a></td>
			<td>19.2E</td>
		</tr>`)

		require.Len(t, tok.Rows(), 1)
		// The href lands before the cell text: pseudo-cells append at
		// anchor-open, cells at cell-close.
		assert.Equal(t, satlist.Row{"astra-1kr.html", "Astra 1KR", "19.2E"}, tok.Rows()[0])
	})

	t.Run("ignores anchors outside rows", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<a href="nav.html">nav</a><table><tr><td>x</td></tr></table>`)

		require.Len(t, tok.Rows(), 1)
		assert.Equal(t, satlist.Row{"x"}, tok.Rows()[0])
	})

	t.Run("ignores text outside cells and unknown tags", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<p>preamble</p><table><tr>between<td><blink>cell</blink></td></tr></table>`)

		require.Len(t, tok.Rows(), 1)
		assert.Equal(t, satlist.Row{"cell"}, tok.Rows()[0])
	})

	t.Run("survives malformed and unclosed markup", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<table><tr><td>first<td>second<tr><td>third`)

		require.Len(t, tok.Rows(), 2)
		assert.Equal(t, satlist.Row{"first", "second"}, tok.Rows()[0])
		assert.Equal(t, satlist.Row{"third"}, tok.Rows()[1])
	})

	t.Run("keeps empty rows so the sequence reflects every tr", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<table><tr></tr><tr><td>x</td></tr></table>`)

		require.Len(t, tok.Rows(), 2)
		assert.Empty(t, tok.Rows()[0])
	})

	t.Run("accumulates rows across documents until reset", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<tr><td>asia</td></tr>`)
		tok.Feed(`<tr><td>europe</td></tr>`)

		require.Len(t, tok.Rows(), 2)
		assert.Equal(t, satlist.Row{"asia"}, tok.Rows()[0])
		assert.Equal(t, satlist.Row{"europe"}, tok.Rows()[1])

		tok.Reset()
		assert.Empty(t, tok.Rows())

		tok.Feed(`<tr><td>atlantic</td></tr>`)
		require.Len(t, tok.Rows(), 1)
		assert.Equal(t, satlist.Row{"atlantic"}, tok.Rows()[0])
	})

	t.Run("decodes HTML entities in cell text", func(t *testing.T) {
		t.Parallel()

		tok := htmltable.New()
		tok.Feed(`<tr><td>13.0&#176;E</td></tr>`)

		require.Len(t, tok.Rows(), 1)
		assert.Equal(t, satlist.Row{"13.0°E"}, tok.Rows()[0])
	})
}
