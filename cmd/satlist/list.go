package main

import (
	"encoding/json"
	"fmt"

	"github.com/satlist/satlist"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	src, err := satlist.ParseSource(c.Source)
	if err != nil {
		return err
	}

	scanner := deps.NewScanner(src, 0)
	sats := scanner.Satellites(deps.Ctx)

	if len(sats) == 0 {
		fmt.Fprintln(deps.Stdout, "No satellites found.")
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sats)
	}

	for _, s := range sats {
		fmt.Fprintf(deps.Stdout, "%-8s %-40s %-6s %s\n", s.Position, s.Name, s.Category, s.URL)
	}
	fmt.Fprintf(deps.Stdout, "%d satellites\n", len(sats))

	return nil
}
