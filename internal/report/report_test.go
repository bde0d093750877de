package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
)

func solvedData(t *testing.T, s beam.Support) diagram.BeamDiagramData {
	t.Helper()
	b, err := beam.New(6)
	require.NoError(t, err)
	require.NoError(t, b.AddPointLoad(3, 12))
	require.NoError(t, b.AddDistributedLoad(0, 6, 2))
	require.NoError(t, b.AddMoment(4, -3))
	_, err = b.Solve(s)
	require.NoError(t, err)
	data, err := diagram.NewBeamDiagramData(b, 101, beam.KiloNewton)
	require.NoError(t, err)
	return data
}

func TestWrite(t *testing.T) {
	supports := map[string]beam.Support{
		"simple":     beam.SimplySupported(6),
		"cantilever": beam.Cantilever{End: beam.FixedRight},
	}
	for name, s := range supports {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, Input{
				Project: "Warehouse roof",
				Author:  "J. Cruz",
				Notes:   "Purlin B-2, service loads.",
				Date:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Data:    solvedData(t, s),
			})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
			assert.Greater(t, buf.Len(), 1000)
		})
	}
}

func TestWrite_RequiresDiagram(t *testing.T) {
	err := Write(&bytes.Buffer{}, Input{})
	assert.Error(t, err)
}
