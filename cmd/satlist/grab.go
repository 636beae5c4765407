package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/satlist/satlist"
	"github.com/satlist/satlist/scan"
)

// Run executes the grab command.
func (c *GrabCmd) Run(deps *Dependencies) error {
	src, err := satlist.ParseSource(c.Source)
	if err != nil {
		return err
	}

	scanner := deps.NewScanner(src, c.Concurrency)
	refs := scanner.Satellites(deps.Ctx)
	if c.Filter != "" {
		refs = filterRefs(refs, c.Filter)
	}

	if len(refs) == 0 {
		fmt.Fprintln(deps.Stdout, "No satellites matched.")
		return nil
	}

	sats := scanner.ScanAll(deps.Ctx, refs, func(p scan.Progress) {
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.Ref.Name)
	})

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sats)
}

// filterRefs keeps satellites whose name contains the needle,
// case-insensitively.
func filterRefs(refs []satlist.SatelliteRef, needle string) []satlist.SatelliteRef {
	needle = strings.ToLower(needle)
	var out []satlist.SatelliteRef
	for _, r := range refs {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}
