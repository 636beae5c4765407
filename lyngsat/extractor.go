// Package lyngsat extracts satellite and transponder records from
// lyngsat.com regional list pages and per-satellite detail pages.
package lyngsat

import (
	"regexp"
	"sort"
	"strings"

	"github.com/satlist/satlist"
)

const baseURL = "https://www.lyngsat.com/"

// Ensure Extractor implements satlist.TableExtractor at compile time.
var _ satlist.TableExtractor = (*Extractor)(nil)

// Extractor implements satlist.TableExtractor for lyngsat.com.
type Extractor struct{}

// New creates a LyngSat Extractor.
func New() *Extractor {
	return &Extractor{}
}

var (
	detailPattern  = regexp.MustCompile(`^https://www\.lyngsat\.com/[\w-]+\.html`)
	freqPolPattern = regexp.MustCompile(`^(\d{4,5})\s+([RLHV])`)
	srFecPattern   = regexp.MustCompile(`^(\d{4,5})-(\d/\d)(.+PSK)?(.*)$`)
	systemPattern  = regexp.MustCompile(`(?i)^(DVB-S2?) ?(PLS (Root|Gold|Combo) (\d+))? ?(multistream stream (\d+))?`)
)

// Satellites folds over list rows carrying the most recently seen
// orbital position, because LyngSat prints the position only once per
// co-located cluster. Row width selects the layout:
//
//	7 cells: cluster header; emits the combined group plus the named
//	         secondary satellite, both at the just-parsed position.
//	8 cells: rare "extra" layout; emits one satellite per distinct
//	         detail URL found in the cells, with the band marker
//	         (C/Ku/CKu) as category.
//	5 cells: plain satellite reusing the carried position.
func (e *Extractor) Satellites(rows []satlist.Row) ([]satlist.SatelliteRef, error) {
	var sats []satlist.SatelliteRef
	currentPos := "0"
	for _, r := range rows {
		switch len(r) {
		case 7:
			currentPos = satlist.ParsePosition(r[2])
			sats = append(sats,
				satlist.SatelliteRef{
					Name:     nameFromPath(r[1]),
					Position: currentPos,
					Category: r[5],
					URL:      baseURL + r[1],
				},
				satlist.SatelliteRef{
					Name:     r[4],
					Position: currentPos,
					Category: r[5],
					URL:      baseURL + r[3],
				},
			)
		case 8:
			var data []string
			for _, c := range r {
				if c != "" {
					data = append(data, c)
				}
			}
			if len(data) < 2 {
				continue
			}
			currentPos = satlist.ParsePosition(data[1])
			urls := make(map[string]struct{})
			var band string
			for _, c := range data {
				if m := detailPattern.FindString(c); m != "" {
					urls[m] = struct{}{}
				}
				switch c {
				case "C", "Ku", "CKu":
					band = c
				}
			}
			for _, u := range sortedKeys(urls) {
				sats = append(sats, satlist.SatelliteRef{
					Name:     nameFromPath(u),
					Position: currentPos,
					Category: band,
					URL:      u,
				})
			}
		case 5:
			sats = append(sats, satlist.SatelliteRef{
				Name:     r[2],
				Position: currentPos,
				Category: r[3],
				URL:      baseURL + r[1],
			})
		}
	}
	return sats, nil
}

// Transponders parses detail-page rows. Only rows wider than eight
// cells carry data; each yields at most one transponder. The stream id
// of a multistream carrier is read directly from the system cell here,
// unlike FlySat's separate marker rows.
func (e *Extractor) Transponders(rows []satlist.Row) ([]satlist.Transponder, error) {
	var trs []satlist.Transponder
	for _, r := range rows {
		if len(r) <= 8 {
			continue
		}

		var freq, pol string
		for _, c := range []string{r[1], r[2], r[3]} {
			if m := freqPolPattern.FindStringSubmatch(c); m != nil {
				freq, pol = m[1], m[2]
				break
			}
		}
		if freq == "" {
			continue
		}

		m := srFecPattern.FindStringSubmatch(r[len(r)-3])
		if m == nil {
			continue
		}
		sr, fec := m[1], m[2]
		mod := strings.TrimSpace(m[3])
		if mod == "" {
			mod = "Auto"
		}

		sm := systemPattern.FindStringSubmatch(r[len(r)-4])
		if sm == nil {
			continue
		}
		system := strings.ToUpper(sm[1])
		var plsMode string
		if sm[3] != "" {
			plsMode, _ = satlist.PLSModeCode(capitalize(sm[3]))
		}

		tr := satlist.Transponder{
			Frequency:    satlist.ScaleToKilo(freq),
			SymbolRate:   satlist.ScaleToKilo(sr),
			Polarization: pol,
			FEC:          fec,
			System:       system,
			Modulation:   mod,
			PLSMode:      plsMode,
			PLSCode:      sm[4],
			StreamID:     sm[6],
		}
		if tr.Validate() == nil {
			trs = append(trs, tr)
		}
	}
	satlist.SortTransponders(trs)
	return trs, nil
}

// nameFromPath derives a display name from a detail-page URL or path:
// the last path segment, without the .html suffix, hyphens as spaces.
func nameFromPath(p string) string {
	seg := p[strings.LastIndex(p, "/")+1:]
	seg = strings.TrimSuffix(seg, ".html")
	return strings.ReplaceAll(seg, "-", " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
