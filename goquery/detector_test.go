package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satlist/satlist"
	satlistgoquery "github.com/satlist/satlist/goquery"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	detector := satlistgoquery.NewDetector()

	t.Run("recognizes providers from the page title", func(t *testing.T) {
		t.Parallel()

		src, ok := detector.Detect(`<html><head><title>LyngSat - Satellites in Asia</title></head></html>`)
		require.True(t, ok)
		assert.Equal(t, satlist.LyngSat, src)

		src, ok = detector.Detect(`<html><head><title>FlySat Satellite List</title></head></html>`)
		require.True(t, ok)
		assert.Equal(t, satlist.FlySat, src)
	})

	t.Run("falls back to dominant link domain", func(t *testing.T) {
		t.Parallel()

		src, ok := detector.Detect(`<html><body>
			<a href="https://www.flysat.com/sat.php?sat=a">a</a>
			<a href="https://www.flysat.com/sat.php?sat=b">b</a>
			<a href="https://www.lyngsat.com/c.html">c</a>
		</body></html>`)
		require.True(t, ok)
		assert.Equal(t, satlist.FlySat, src)
	})

	t.Run("reports unknown pages", func(t *testing.T) {
		t.Parallel()

		_, ok := detector.Detect(`<html><head><title>Weather</title></head><body><a href="/x">x</a></body></html>`)
		assert.False(t, ok)
	})
}
