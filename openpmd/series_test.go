package openpmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureMesh builds a [nz,3,3] mesh whose transverse center column carries
// the given profile, everything else zero.
func fixtureMesh(profile []float64, z0, dz, unitSI float64) Mesh {
	nz := len(profile)
	data := make([]float64, nz*3*3)
	for i, v := range profile {
		data[i*9+4] = v // y=1, x=1 with strides 3 and 1
	}
	return Mesh{
		UnitSI:           unitSI,
		AxisLabels:       []string{"z", "y", "x"},
		GridSpacing:      []float64{dz, 1, 1},
		GridGlobalOffset: []float64{z0, -1, -1},
		Position:         []float64{0, 0, 0},
		Shape:            []int{nz, 3, 3},
		Data:             data,
	}
}

func TestSeries(t *testing.T) {
	dir := t.TempDir()
	profile := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	_, err := WriteIteration(dir, Iteration{
		Iteration: 10,
		Meshes:    map[string]Mesh{"rho": fixtureMesh(make([]float64, 8), -2, 0.5, 1)},
	})
	require.NoError(t, err)
	_, err = WriteIteration(dir, Iteration{
		Iteration: 80,
		Time:      2.5e-13,
		Meshes:    map[string]Mesh{"rho": fixtureMesh(profile, -2, 0.5, 1)},
	})
	require.NoError(t, err)

	ts, err := OpenSeries(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 80}, ts.Iterations())
	assert.Equal(t, 80, ts.LastIteration())

	// Field at the last iteration, sliced at the transverse center.
	got, meta, err := ts.GetField("rho", ts.LastIteration())
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.Equal(t, 8, meta.Nz)
	assert.Equal(t, 0.5, meta.Dz)
	assert.Equal(t, -2.0, meta.Z[0])
	assert.Equal(t, 1.5, meta.Zmax)
	assert.Len(t, meta.Z, 8)

	// Earlier iterations stay addressable.
	got, _, err = ts.GetField("rho", 10)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), got)

	// Unknown field names the available ones.
	_, _, err = ts.GetField("Ez", 80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: rho")

	// Unknown iteration.
	_, _, err = ts.GetField("rho", 42)
	require.Error(t, err)
}

func TestSeriesUnitSI(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteIteration(dir, Iteration{
		Iteration: 1,
		Meshes:    map[string]Mesh{"rho": fixtureMesh([]float64{1, 2, 4}, 0, 1, 2.5)},
	})
	require.NoError(t, err)

	ts, err := OpenSeries(dir)
	require.NoError(t, err)
	got, _, err := ts.GetField("rho", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5, 10}, got)
}

func TestSeriesAxisOrders(t *testing.T) {
	// z slowest, z fastest and plain 1-D all resolve to the same profile.
	profile := []float64{3, 1, 4, 1, 5}
	nz := len(profile)

	// z last: strides are [3*nz, nz, 1], the center column sits at 4*nz.
	zLast := make([]float64, 3*3*nz)
	copy(zLast[4*nz:], profile)
	meshes := map[string]Mesh{
		"zfirst": fixtureMesh(profile, 0, 0.1, 1),
		"zlast": {
			UnitSI:           1,
			AxisLabels:       []string{"x", "y", "z"},
			GridSpacing:      []float64{1, 1, 0.1},
			GridGlobalOffset: []float64{-1, -1, 0},
			Position:         []float64{0, 0, 0},
			Shape:            []int{3, 3, nz},
			Data:             zLast,
		},
		"oned": {
			UnitSI:           1,
			AxisLabels:       []string{"z"},
			GridSpacing:      []float64{0.1},
			GridGlobalOffset: []float64{0},
			Position:         []float64{0},
			Shape:            []int{nz},
			Data:             profile,
		},
	}

	dir := t.TempDir()
	_, err := WriteIteration(dir, Iteration{Iteration: 5, Meshes: meshes})
	require.NoError(t, err)
	ts, err := OpenSeries(dir)
	require.NoError(t, err)

	for _, name := range []string{"zfirst", "zlast", "oned"} {
		got, meta, err := ts.GetField(name, 5)
		require.NoError(t, err, name)
		assert.Equal(t, profile, got, name)
		assert.Equal(t, 0.1, meta.Dz, name)
	}
}

func TestSeriesErrors(t *testing.T) {
	// Missing directory.
	{
		_, err := OpenSeries("does/not/exist")
		require.Error(t, err)
	}
	// Directory without iteration files.
	{
		_, err := OpenSeries(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no iteration files")
	}
	// Mismatched data length is rejected.
	{
		dir := t.TempDir()
		m := fixtureMesh([]float64{1, 2}, 0, 1, 1)
		m.Data = m.Data[:5]
		_, err := WriteIteration(dir, Iteration{Iteration: 1, Meshes: map[string]Mesh{"rho": m}})
		require.NoError(t, err)
		ts, err := OpenSeries(dir)
		require.NoError(t, err)
		_, _, err = ts.GetField("rho", 1)
		require.Error(t, err)
	}
	// A mesh without a z axis is rejected.
	{
		dir := t.TempDir()
		m := Mesh{
			UnitSI:           1,
			AxisLabels:       []string{"x"},
			GridSpacing:      []float64{1},
			GridGlobalOffset: []float64{0},
			Shape:            []int{3},
			Data:             []float64{1, 2, 3},
		}
		_, err := WriteIteration(dir, Iteration{Iteration: 1, Meshes: map[string]Mesh{"rho": m}})
		require.NoError(t, err)
		ts, err := OpenSeries(dir)
		require.NoError(t, err)
		_, _, err = ts.GetField("rho", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no z axis")
	}
}
