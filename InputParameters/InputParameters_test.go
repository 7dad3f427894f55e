package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWakeParameters(t *testing.T) {
	// Defaults reproduce the reference linear wake setup.
	{
		wp := NewWakeParameters()
		assert.Equal(t, 0.01, wp.PeakDensityFraction)
		assert.Equal(t, 2.0, wp.BeamLength)
		assert.Equal(t, 1.0, wp.HeadOffset)
		assert.Equal(t, 1.41, wp.SigmaZ)
		assert.Equal(t, 0.0, wp.PlasmaWavenumber)
	}
	// Parsing overrides only the keys the file names.
	{
		doc := `
Title: "Long beam case"
PlasmaWavenumber: 2.e5
BeamLength: 4
`
		wp := NewWakeParameters()
		require.NoError(t, wp.Parse([]byte(doc)))
		assert.Equal(t, "Long beam case", wp.Title)
		assert.Equal(t, 2.e5, wp.PlasmaWavenumber)
		assert.Equal(t, 4.0, wp.BeamLength)
		assert.Equal(t, 0.01, wp.PeakDensityFraction)
		assert.Equal(t, 1.41, wp.SigmaZ)
	}
	// Malformed input fails.
	{
		wp := NewWakeParameters()
		assert.Error(t, wp.Parse([]byte("BeamLength: [not, a, number]")))
	}
}
