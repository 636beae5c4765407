package mock

import "github.com/satlist/satlist"

var _ satlist.SourceDetector = (*SourceDetector)(nil)

// SourceDetector is a mock implementation of satlist.SourceDetector.
type SourceDetector struct {
	DetectFn func(html string) (satlist.Source, bool)
}

func (d *SourceDetector) Detect(html string) (satlist.Source, bool) {
	return d.DetectFn(html)
}
