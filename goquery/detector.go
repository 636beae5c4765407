// Package goquery provides HTML-document inspection built on
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/satlist/satlist"
)

// Ensure Detector implements satlist.SourceDetector at compile time.
var _ satlist.SourceDetector = (*Detector)(nil)

// Detector identifies which provider served a page from site markers
// in its markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and reports the provider that produced it.
// The page title is checked first; failing that, the provider whose
// domain dominates the page's links wins. Returns false when neither
// marker is present.
func (d *Detector) Detect(html string) (satlist.Source, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	title := strings.ToLower(doc.Find("title").First().Text())
	if strings.Contains(title, "lyngsat") {
		return satlist.LyngSat, true
	}
	if strings.Contains(title, "flysat") {
		return satlist.FlySat, true
	}

	counts := make(map[satlist.Source]int)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.ToLower(href)
		switch {
		case strings.Contains(href, "lyngsat.com"):
			counts[satlist.LyngSat]++
		case strings.Contains(href, "flysat.com"):
			counts[satlist.FlySat]++
		}
	})

	ly, fs := counts[satlist.LyngSat], counts[satlist.FlySat]
	switch {
	case ly == 0 && fs == 0:
		return "", false
	case ly >= fs:
		return satlist.LyngSat, true
	default:
		return satlist.FlySat, true
	}
}
