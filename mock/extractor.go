package mock

import "github.com/satlist/satlist"

var _ satlist.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of satlist.TableExtractor.
type TableExtractor struct {
	SatellitesFn   func(rows []satlist.Row) ([]satlist.SatelliteRef, error)
	TranspondersFn func(rows []satlist.Row) ([]satlist.Transponder, error)
}

func (e *TableExtractor) Satellites(rows []satlist.Row) ([]satlist.SatelliteRef, error) {
	return e.SatellitesFn(rows)
}

func (e *TableExtractor) Transponders(rows []satlist.Row) ([]satlist.Transponder, error) {
	return e.TranspondersFn(rows)
}
