package satlist

import "context"

// Source identifies a supported satellite-tracking website.
type Source string

// Supported sources.
const (
	FlySat  Source = "flysat"
	LyngSat Source = "lyngsat"
)

// ParseSource converts a configuration or CLI value into a Source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case FlySat:
		return FlySat, nil
	case LyngSat:
		return LyngSat, nil
	}
	return "", Errorf(EINVALID, "unknown source %q", s)
}

// PageURLs returns the list pages that feed one satellite-list
// retrieval. LyngSat splits its list across regional pages; their rows
// accumulate into a single row set before the adapter runs.
func (s Source) PageURLs() []string {
	switch s {
	case FlySat:
		return []string{"https://www.flysat.com/satlist.php"}
	case LyngSat:
		return []string{
			"https://www.lyngsat.com/asia.html",
			"https://www.lyngsat.com/europe.html",
			"https://www.lyngsat.com/atlantic.html",
			"https://www.lyngsat.com/america.html",
		}
	}
	return nil
}

// Row is one table row: cell texts in document order, with each
// hyperlink href interleaved as an extra pseudo-cell at the position
// where its anchor opened. Rows are produced by the tokenizer and
// consumed by extractors; they are not retained across retrievals.
type Row []string

// Fetcher retrieves a page body over the network.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any transport resources.
	Close() error
}

// TableExtractor reshapes tokenized table rows into domain records.
// One implementation exists per provider so each provider's quirks
// stay isolated and independently testable.
type TableExtractor interface {
	// Satellites converts list-page rows into satellite references
	// with absolute detail-page URLs. Rows that match no expected
	// shape are skipped.
	Satellites(rows []Row) ([]SatelliteRef, error)

	// Transponders converts one detail page's rows into validated
	// transponders. Rows that match no expected shape are skipped and
	// transponders failing validation are dropped; neither is an
	// error. The result is sorted by ascending frequency.
	Transponders(rows []Row) ([]Transponder, error)
}

// SourceDetector identifies which provider produced a page.
type SourceDetector interface {
	// Detect reports the provider of the page. The second return is
	// false when no provider marker matches.
	Detect(html string) (Source, bool)
}
