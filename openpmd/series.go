// Package openpmd reads openPMD-flavored simulation output series written with
// the JSON backend: a directory holding one self-describing file per
// iteration, each carrying the mesh records of that dump (axis labels, grid
// spacing and offset, in-cell position, shape and the flattened row-major
// data).
//
// The validation pipeline only reads series; WriteIteration exists to produce
// reference fixtures in the same layout.
package openpmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Mesh is a single mesh record of an iteration. Data is row-major with the
// slowest-varying axis first, as labeled by AxisLabels.
type Mesh struct {
	UnitSI           float64   `json:"unitSI"`
	AxisLabels       []string  `json:"axisLabels"`
	GridSpacing      []float64 `json:"gridSpacing"`
	GridGlobalOffset []float64 `json:"gridGlobalOffset"`
	Position         []float64 `json:"position"`
	Shape            []int     `json:"shape"`
	Data             []float64 `json:"data"`
}

// Iteration is the on-disk layout of one series file.
type Iteration struct {
	Iteration int             `json:"iteration"`
	Time      float64         `json:"time"`
	Meshes    map[string]Mesh `json:"meshes"`
}

// FieldMeta is the uniform-grid metadata of a field profile along the
// propagation axis. Zmax is the position of the last sample.
type FieldMeta struct {
	Z    []float64
	Dz   float64
	Zmax float64
	Nz   int
}

// Series is an opened output directory. Iterations are discovered once at
// open time; field data is read on demand.
type Series struct {
	Dir     string
	Verbose bool

	files map[int]string
	iters []int
}

// OpenSeries scans dir for iteration files. A directory without a single
// readable iteration file is an error.
func OpenSeries(dir string) (*Series, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("opening series directory %s: %w", dir, err)
	}
	s := &Series{Dir: dir, files: make(map[int]string)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		it, err := readIterationFile(path)
		if err != nil {
			return nil, err
		}
		s.files[it.Iteration] = path
		s.iters = append(s.iters, it.Iteration)
	}
	if len(s.iters) == 0 {
		return nil, fmt.Errorf("no iteration files found in %s", dir)
	}
	sort.Ints(s.iters)
	return s, nil
}

// Iterations returns the available iteration numbers in ascending order.
func (s *Series) Iterations() []int {
	return s.iters
}

// LastIteration returns the highest available iteration number.
func (s *Series) LastIteration() int {
	return s.iters[len(s.iters)-1]
}

// GetField returns the named field at the given iteration, sliced across the
// two transverse axes at the center of the box (relative position (0,0)),
// as a 1-D profile along z plus its grid metadata. unitSI scaling is applied.
func (s *Series) GetField(name string, iteration int) ([]float64, FieldMeta, error) {
	path, ok := s.files[iteration]
	if !ok {
		return nil, FieldMeta{}, fmt.Errorf("iteration %d not present in %s", iteration, s.Dir)
	}
	it, err := readIterationFile(path)
	if err != nil {
		return nil, FieldMeta{}, err
	}
	mesh, ok := it.Meshes[name]
	if !ok {
		names := make([]string, 0, len(it.Meshes))
		for n := range it.Meshes {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, FieldMeta{}, fmt.Errorf("field %s not present at iteration %d, available: %s",
			name, iteration, strings.Join(names, ", "))
	}
	if err = mesh.validate(name); err != nil {
		return nil, FieldMeta{}, err
	}

	zAxis := -1
	for k, label := range mesh.AxisLabels {
		if label == "z" {
			zAxis = k
		}
	}
	if zAxis < 0 {
		return nil, FieldMeta{}, fmt.Errorf("field %s has no z axis, labels are %v", name, mesh.AxisLabels)
	}

	// Row-major strides, then freeze every transverse axis at its center
	// sample and walk the z stride.
	ndim := len(mesh.Shape)
	strides := make([]int, ndim)
	strides[ndim-1] = 1
	for k := ndim - 2; k >= 0; k-- {
		strides[k] = strides[k+1] * mesh.Shape[k+1]
	}
	base := 0
	for k := 0; k < ndim; k++ {
		if k != zAxis {
			base += (mesh.Shape[k] / 2) * strides[k]
		}
	}

	nz := mesh.Shape[zAxis]
	profile := make([]float64, nz)
	for i := 0; i < nz; i++ {
		profile[i] = mesh.Data[base+i*strides[zAxis]] * mesh.UnitSI
	}

	var (
		dz  = mesh.GridSpacing[zAxis]
		z0  = mesh.GridGlobalOffset[zAxis] + mesh.position(zAxis)*dz
		z   = make([]float64, nz)
	)
	if nz > 1 {
		floats.Span(z, z0, z0+dz*float64(nz-1))
	} else {
		z[0] = z0
	}
	meta := FieldMeta{Z: z, Dz: dz, Zmax: z[nz-1], Nz: nz}

	if s.Verbose {
		fmt.Printf("Read field %s at iteration %d: nz = %d, dz = %g, zmin/zmax = %g, %g\n",
			name, iteration, nz, dz, z[0], meta.Zmax)
	}
	return profile, meta, nil
}

func (m Mesh) position(axis int) float64 {
	if axis < len(m.Position) {
		return m.Position[axis]
	}
	return 0
}

func (m Mesh) validate(name string) error {
	ndim := len(m.Shape)
	if ndim == 0 {
		return fmt.Errorf("field %s has an empty shape", name)
	}
	if len(m.AxisLabels) != ndim || len(m.GridSpacing) != ndim || len(m.GridGlobalOffset) != ndim {
		return fmt.Errorf("field %s has inconsistent axis metadata: shape %v, labels %v, spacing %v, offset %v",
			name, m.Shape, m.AxisLabels, m.GridSpacing, m.GridGlobalOffset)
	}
	size := 1
	for _, n := range m.Shape {
		size *= n
	}
	if len(m.Data) != size {
		return fmt.Errorf("field %s has %d samples, shape %v requires %d", name, len(m.Data), m.Shape, size)
	}
	return nil
}

func readIterationFile(path string) (*Iteration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	it := &Iteration{}
	if err = json.Unmarshal(data, it); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return it, nil
}
