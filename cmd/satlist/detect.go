package main

import "fmt"

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	src, ok := deps.Detector.Detect(html)
	if !ok {
		fmt.Fprintln(deps.Stdout, "unknown provider")
		return nil
	}

	fmt.Fprintln(deps.Stdout, string(src))
	return nil
}
