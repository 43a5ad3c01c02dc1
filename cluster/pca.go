package cluster

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Project2D reduces vectors to their first two principal components, giving
// each input a (x, y) coordinate for visualization. When the data supports
// fewer than two components the missing coordinate is zero.
func Project2D(vectors [][]float64) ([][2]float64, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	rows := len(vectors)
	cols := len(vectors[0])
	coords := make([][2]float64, rows)

	// A single point has no spread to project.
	if rows < 2 {
		return coords, nil
	}

	data := mat.NewDense(rows, cols, nil)
	for i, v := range vectors {
		if len(v) != cols {
			return nil, ErrDimensionMismatch
		}
		data.SetRow(i, v)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return nil, errors.New("principal component decomposition failed")
	}

	components := min(2, cols)
	var proj mat.Dense
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	proj.Mul(data, vecs.Slice(0, cols, 0, components))

	for i := range coords {
		coords[i][0] = proj.At(i, 0)
		if components > 1 {
			coords[i][1] = proj.At(i, 1)
		}
	}
	return coords, nil
}
