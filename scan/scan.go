// Package scan orchestrates satellite-list and transponder retrieval.
// It sequences page fetches per source, feeds each page through the
// table tokenizer, and drives the provider-specific extractor over the
// resulting rows.
//
// The data sources are uncontrolled third parties whose markup changes
// without notice, so there is no fatal error path here: transport
// failures, refused pages and extraction problems are logged and
// degrade to empty results, never surfaced to the caller.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/satlist/satlist"
	"github.com/satlist/satlist/htmltable"
)

// DefaultConcurrency bounds ScanAll's detail-page worker pool.
const DefaultConcurrency = 4

// Scanner drives retrieval for one provider. Fetcher and Extractor
// must be populated; the zero values of the remaining fields select
// sensible defaults.
type Scanner struct {
	Source      satlist.Source
	Fetcher     satlist.Fetcher
	Extractor   satlist.TableExtractor
	Separator   string // cell text separator, default single space
	Concurrency int    // ScanAll worker bound, default DefaultConcurrency
	Logger      *slog.Logger
}

// Progress reports completion of one detail page during ScanAll.
// Callbacks may arrive concurrently from worker goroutines.
type Progress struct {
	Ref       satlist.SatelliteRef
	Completed int
	Total     int
}

// ProgressFunc is a callback for reporting ScanAll progress.
type ProgressFunc func(Progress)

// Satellites retrieves the provider's satellite list. Rows from all of
// the source's list pages accumulate into one row set before the
// adapter runs, which is how LyngSat's regional pages merge into one
// list. A transport failure on any page degrades to an empty list; a
// refused page is skipped. Neither is an error.
func (s *Scanner) Satellites(ctx context.Context) []satlist.SatelliteRef {
	tok := s.newTokenizer()
	for _, url := range s.Source.PageURLs() {
		html, err := s.Fetcher.Fetch(ctx, url)
		if err != nil {
			if satlist.ErrorCode(err) == satlist.EPROTOCOL {
				s.logger().Warn("list page refused", "url", url, "err", err)
				continue
			}
			s.logger().Error("list fetch failed", "url", url, "err", err)
			return nil
		}
		tok.Feed(html)
	}

	sats, err := s.Extractor.Satellites(tok.Rows())
	if err != nil {
		s.logger().Error("satellite extraction failed", "source", s.Source, "err", err)
		return nil
	}
	return sats
}

// Satellite fetches one satellite's detail page and extracts its
// frequency-sorted transponders. A failed fetch or extraction logs and
// yields the satellite with zero transponders.
func (s *Scanner) Satellite(ctx context.Context, ref satlist.SatelliteRef) *satlist.Satellite {
	sat := &satlist.Satellite{
		Name:     fmt.Sprintf("%s %s", ref.Position, ref.Name),
		Position: satlist.SignedPosition(strings.ReplaceAll(ref.Position, ".", "")),
	}

	html, err := s.Fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		s.logger().Warn("detail fetch failed", "url", ref.URL, "err", err)
		return sat
	}

	tok := s.newTokenizer()
	tok.Feed(html)
	trs, err := s.Extractor.Transponders(tok.Rows())
	if err != nil {
		s.logger().Warn("transponder extraction failed", "url", ref.URL, "err", err)
		return sat
	}

	satlist.SortTransponders(trs)
	sat.Transponders = trs
	return sat
}

// ScanAll fetches detail pages for all refs with a bounded worker
// pool. Detail pages are independent, so fetch order doesn't matter;
// results are returned in ref order regardless of completion order,
// and each satellite's transponder list is frequency-sorted as usual.
func (s *Scanner) ScanAll(ctx context.Context, refs []satlist.SatelliteRef, progress ProgressFunc) []*satlist.Satellite {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	sats := make([]*satlist.Satellite, len(refs))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			sats[i] = s.Satellite(gctx, ref)
			if progress != nil {
				progress(Progress{
					Ref:       ref,
					Completed: int(completed.Add(1)),
					Total:     len(refs),
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	return sats
}

// newTokenizer builds a fresh tokenizer. Tokenizer state is scoped to
// one retrieval and never shared between the list fetch and the
// per-satellite detail fetches.
func (s *Scanner) newTokenizer() *htmltable.Tokenizer {
	if s.Separator != "" {
		return htmltable.New(htmltable.WithSeparator(s.Separator))
	}
	return htmltable.New()
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
