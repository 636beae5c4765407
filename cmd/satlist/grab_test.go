package main_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satlist/satlist"
	main "github.com/satlist/satlist/cmd/satlist"
	"github.com/satlist/satlist/mock"
)

func TestGrabCmd_Run(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}

	t.Run("fetches transponders for matching satellites only", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.TableExtractor{
			SatellitesFn: func(rows []satlist.Row) ([]satlist.SatelliteRef, error) {
				return []satlist.SatelliteRef{
					{Name: "Astra 1KR", Position: "19.2E", URL: "https://www.flysat.com/a"},
					{Name: "Hot Bird 13G", Position: "13.0E", URL: "https://www.flysat.com/b"},
				}, nil
			},
			TranspondersFn: func(rows []satlist.Row) ([]satlist.Transponder, error) {
				return []satlist.Transponder{{
					Frequency:    11258000,
					SymbolRate:   27500000,
					Polarization: "V",
					FEC:          "3/4",
					System:       "DVB-S2",
					Modulation:   "8PSK",
				}}, nil
			},
		}

		deps, stdout := testDeps(fetcher, extractor)
		cmd := &main.GrabCmd{Source: "flysat", Filter: "hot bird"}

		require.NoError(t, cmd.Run(deps))

		var sats []*satlist.Satellite
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &sats))
		require.Len(t, sats, 1)
		assert.Equal(t, "13.0E Hot Bird 13G", sats[0].Name)
		assert.Equal(t, "130", sats[0].Position)
		require.Len(t, sats[0].Transponders, 1)
		assert.Equal(t, 11258000, sats[0].Transponders[0].Frequency)
	})

	t.Run("reports when no satellite matches", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.TableExtractor{
			SatellitesFn: func(rows []satlist.Row) ([]satlist.SatelliteRef, error) {
				return []satlist.SatelliteRef{
					{Name: "Astra 1KR", Position: "19.2E", URL: "https://www.flysat.com/a"},
				}, nil
			},
		}

		deps, stdout := testDeps(fetcher, extractor)
		cmd := &main.GrabCmd{Source: "flysat", Filter: "nonexistent"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No satellites matched")
	})
}

func TestDetectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the detected provider", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		deps, stdout := testDeps(fetcher, nil)
		deps.Detector = &mock.SourceDetector{
			DetectFn: func(html string) (satlist.Source, bool) {
				return satlist.LyngSat, true
			},
		}

		cmd := &main.DetectCmd{URL: "https://www.lyngsat.com/asia.html"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "lyngsat")
	})

	t.Run("reports unknown providers", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		deps, stdout := testDeps(fetcher, nil)
		deps.Detector = &mock.SourceDetector{
			DetectFn: func(html string) (satlist.Source, bool) {
				return "", false
			},
		}

		cmd := &main.DetectCmd{URL: "https://example.com"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "unknown provider")
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", satlist.Errorf(satlist.EUNAVAILABLE, "fetch %s: refused", url)
			},
		}
		deps, _ := testDeps(fetcher, nil)

		cmd := &main.DetectCmd{URL: "https://example.com"}
		require.Error(t, cmd.Run(deps))
	})
}
