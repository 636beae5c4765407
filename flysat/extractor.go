// Package flysat extracts satellite and transponder records from
// flysat.com list and detail pages.
package flysat

import (
	"regexp"
	"strings"

	"github.com/satlist/satlist"
)

const baseURL = "https://www.flysat.com/"

// Ensure Extractor implements satlist.TableExtractor at compile time.
var _ satlist.TableExtractor = (*Extractor)(nil)

// Extractor implements satlist.TableExtractor for flysat.com.
type Extractor struct{}

// New creates a FlySat Extractor.
func New() *Extractor {
	return &Extractor{}
}

var (
	plsPattern    = regexp.MustCompile(`PLS: (Root|Gold|Combo) (\d+)`)
	streamPattern = regexp.MustCompile(`Stream (\d+)`)
)

// Satellites keeps only rows with exactly five non-empty cells: the
// detail href pseudo-cell followed by name, orbital position, category
// and band.
func (e *Extractor) Satellites(rows []satlist.Row) ([]satlist.SatelliteRef, error) {
	var sats []satlist.SatelliteRef
	for _, r := range rows {
		if len(r) != 5 || !allFilled(r) {
			continue
		}
		sats = append(sats, satlist.SatelliteRef{
			Name:     r[1],
			Position: satlist.ParsePosition(r[2]),
			Category: r[3],
			URL:      baseURL + r[0],
		})
	}
	return sats, nil
}

// Transponders walks a detail page row by row. A width-1 row buffers
// "Stream N" multistream markers for the carrier parsed from the data
// row before it; any other row either parses into one transponder or
// is skipped as noise.
func (e *Extractor) Transponders(rows []satlist.Row) ([]satlist.Transponder, error) {
	var trs []satlist.Transponder
	var clones []satlist.Transponder
	var streams []string
	for _, r := range rows {
		if len(r) == 1 {
			for _, m := range streamPattern.FindAllStringSubmatch(r[0], -1) {
				streams = append(streams, m[1])
			}
			continue
		}
		if len(r) < 3 {
			continue
		}

		parts := strings.Fields(r[2])
		if len(parts) != 2 {
			continue
		}
		sr, fec := parts[0], parts[1]

		head := strings.Fields(r[1])
		if len(head) < 3 {
			continue
		}
		freq, pol := head[0], head[1]
		sysMod := strings.Split(head[2], "/")
		if len(sysMod) != 2 {
			continue
		}
		system, mod := sysMod[0], sysMod[1]
		if system == "DVB-S" {
			mod = "QPSK"
		}

		var plsMode, plsCode string
		if m := plsPattern.FindStringSubmatch(r[1]); m != nil {
			plsMode, _ = satlist.PLSModeCode(m[1])
			plsCode = m[2]
		}

		if len(streams) > 0 {
			// The marker row named sub-channels of the carrier parsed
			// just before it: replace that carrier with one clone per
			// stream id. A marker with no preceding carrier means the
			// page layout changed; flag it instead of guessing.
			if len(trs) == 0 {
				return nil, satlist.Errorf(satlist.EINTERNAL,
					"stream ids %v with no preceding transponder", streams)
			}
			base := trs[len(trs)-1]
			trs = trs[:len(trs)-1]
			for _, id := range streams {
				clone := base
				clone.StreamID = id
				if clone.Validate() == nil {
					clones = append(clones, clone)
				}
			}
			streams = streams[:0]
			continue
		}

		tr := satlist.Transponder{
			Frequency:    satlist.ScaleToKilo(freq),
			SymbolRate:   satlist.ScaleToKilo(sr),
			Polarization: pol,
			FEC:          fec,
			System:       system,
			Modulation:   mod,
			PLSMode:      plsMode,
			PLSCode:      plsCode,
		}
		if tr.Validate() == nil {
			trs = append(trs, tr)
		}
	}

	trs = append(trs, clones...)
	satlist.SortTransponders(trs)
	return trs, nil
}

func allFilled(r satlist.Row) bool {
	for _, c := range r {
		if c == "" {
			return false
		}
	}
	return true
}
