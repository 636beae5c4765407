package satlist

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// SatelliteRef identifies one satellite row on a provider's list page.
// Position holds the cleaned positional text, e.g. "13.0E".
type SatelliteRef struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Category string `json:"category"`
	URL      string `json:"url"`
	Selected bool   `json:"selected"`
}

// Satellite is a fully retrieved satellite. Name is the synthesized
// display name ("<position> <name>"); Position is the orbital position
// in signed tenths of a degree ("130", "-10"), negative meaning West.
// Transponders are sorted by ascending frequency.
type Satellite struct {
	Name         string        `json:"name"`
	Position     string        `json:"position"`
	Transponders []Transponder `json:"transponders"`
}

// Transponder is one validated physical carrier, or one multistream
// sub-channel of a carrier when StreamID is set. Frequency is in kHz
// and SymbolRate in symbols/sec; both scale the 4-5 digit source
// fields by a thousand.
type Transponder struct {
	Frequency    int    `json:"frequency"`
	SymbolRate   int    `json:"symbolRate"`
	Polarization string `json:"polarization"`
	FEC          string `json:"fec"`
	System       string `json:"system"`
	Modulation   string `json:"modulation"`
	PLSMode      string `json:"plsMode,omitempty"`
	PLSCode      string `json:"plsCode,omitempty"`
	StreamID     string `json:"streamId,omitempty"`
}

// PLS mode codes as written into channel lists.
const (
	PLSRoot  = "0"
	PLSGold  = "1"
	PLSCombo = "2"
)

var plsModeCodes = map[string]string{
	"Root":  PLSRoot,
	"Gold":  PLSGold,
	"Combo": PLSCombo,
}

var plsModeNames = map[string]string{
	PLSRoot:  "Root",
	PLSGold:  "Gold",
	PLSCombo: "Combo",
}

// PLSModeCode maps a human-readable PLS mode name to its code.
func PLSModeCode(name string) (string, bool) {
	code, ok := plsModeCodes[name]
	return code, ok
}

// PLSModeName maps a PLS mode code back to its name.
func PLSModeName(code string) (string, bool) {
	name, ok := plsModeNames[code]
	return name, ok
}

// fecValues is the accepted set of DVB-S/S2 forward error correction
// ratios.
var fecValues = map[string]struct{}{
	"1/2": {}, "2/3": {}, "3/4": {}, "3/5": {}, "4/5": {},
	"5/6": {}, "6/7": {}, "7/8": {}, "8/9": {}, "9/10": {},
}

// Validate returns an EINVALID error if the transponder holds
// physically impossible or unrecognized values. Extractors drop
// invalid transponders silently; nothing downstream ever sees one.
func (t Transponder) Validate() error {
	if t.Frequency <= 0 {
		return Errorf(EINVALID, "transponder frequency must be positive, got %d", t.Frequency)
	}
	if t.SymbolRate <= 0 {
		return Errorf(EINVALID, "transponder symbol rate must be positive, got %d", t.SymbolRate)
	}
	switch t.Polarization {
	case "H", "V", "L", "R":
	default:
		return Errorf(EINVALID, "unknown polarization %q", t.Polarization)
	}
	if _, ok := fecValues[t.FEC]; !ok {
		return Errorf(EINVALID, "unknown FEC %q", t.FEC)
	}
	if t.System != "DVB-S" && t.System != "DVB-S2" {
		return Errorf(EINVALID, "unknown system %q", t.System)
	}
	return nil
}

// SortTransponders orders transponders by ascending frequency. The
// sort is stable so multistream sub-channels of one carrier keep their
// extraction order.
func SortTransponders(trs []Transponder) {
	sort.SliceStable(trs, func(i, j int) bool {
		return trs[i].Frequency < trs[j].Frequency
	})
}

// ScaleToKilo converts a 4-5 digit MHz-scale source field to kHz by
// scaling a thousandfold, the numeric equivalent of suffixing "000".
// Unparseable or non-positive input yields zero, which Validate
// rejects.
func ScaleToKilo(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0
	}
	return n * 1000
}

// ParsePosition strips an orbital-position cell down to digits,
// letters and the decimal point: "13.0°E" becomes "13.0E".
func ParsePosition(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) || unicode.IsLetter(r) || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SignedPosition converts an orientation-suffixed position into a
// signed decimal string: "13.0E" becomes "13.0" and "1.0W" "-1.0".
func SignedPosition(pos string) string {
	if pos == "" {
		return pos
	}
	value := pos[:len(pos)-1]
	if pos[len(pos)-1] == 'W' {
		return "-" + value
	}
	return value
}
