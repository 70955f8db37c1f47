package raytracer

import (
	"fmt"
	"strings"
)

// Matrix is an N×N grid of Real stored row-major in a flat slice.
// The size is fixed at construction; only Set mutates it.
type Matrix struct {
	n    int
	data []Real // len == n*n
}

// NewMatrix returns a zero-filled n×n matrix. n == 0 is allowed (empty matrix).
func NewMatrix(n int) (*Matrix, error) {
	if n < 0 {
		return nil, opErrorf("NewMatrix", ErrBadShape)
	}
	return &Matrix{n: n, data: make([]Real, n*n)}, nil
}

func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]Real, n*n)}
}

// Identity returns the n×n identity matrix; negative n yields an empty matrix.
func Identity(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// NewMatrixFromRows copies rows into a new matrix. Every row must have
// len(rows) values.
func NewMatrixFromRows(rows [][]Real) (*Matrix, error) {
	n := len(rows)
	m := newMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, opErrorf("NewMatrixFromRows", ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m, nil
}

// Size returns N.
func (m *Matrix) Size() int { return m.n }

func (m *Matrix) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, indexErrorf(op, row, col, ErrOutOfRange)
	}
	return row*m.n + col, nil
}

// At returns the value at (row, col).
func (m *Matrix) At(row, col int) (Real, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v Real) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// at is the unchecked accessor for loops whose bounds are already known.
func (m *Matrix) at(row, col int) Real { return m.data[row*m.n+col] }

func (m *Matrix) set(row, col int, v Real) { m.data[row*m.n+col] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.n)
	copy(c.data, m.data)
	return c
}

// Equal reports whether both matrices have the same size and every cell
// differs by less than Epsilon.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if !FloatEqual(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Mul returns m × o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.n != o.n {
		return nil, opErrorf("Mul", ErrDimensionMismatch)
	}
	n := m.n
	r := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m.at(i, k) * o.at(k, j)
			}
			r.data[i*n+j] = sum
		}
	}
	return r, nil
}

// MulTuple returns m × t. Only 4×4 matrices can multiply a tuple.
func (m *Matrix) MulTuple(t Tuple) (Tuple, error) {
	if m.n != TransformSize {
		return Tuple{}, opErrorf("MulTuple", ErrUnsupportedSize)
	}
	row := func(i int) Real {
		return m.at(i, 0)*t.X + m.at(i, 1)*t.Y + m.at(i, 2)*t.Z + m.at(i, 3)*t.W
	}
	return NewTuple(row(0), row(1), row(2), row(3)), nil
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	r := newMatrix(m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			r.data[i*m.n+j] = m.at(j, i)
		}
	}
	return r
}

// Determinant is defined for sizes 1..MaxDetSize. Sizes 3 and 4 expand
// cofactors along row 0.
func (m *Matrix) Determinant() (Real, error) {
	switch m.n {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	case 3, 4:
		det := 0.0
		for j := 0; j < m.n; j++ {
			c, err := m.Cofactor(0, j)
			if err != nil {
				return 0, err
			}
			det += m.at(0, j) * c
		}
		return det, nil
	default:
		return 0, opErrorf(fmt.Sprintf("Determinant(%dx%d)", m.n, m.n), ErrUnsupportedSize)
	}
}

// Submatrix returns the (N-1)×(N-1) matrix with row and col removed.
func (m *Matrix) Submatrix(row, col int) (*Matrix, error) {
	if _, err := m.indexOf("Submatrix", row, col); err != nil {
		return nil, err
	}
	n := m.n - 1
	r := newMatrix(n)
	dst := 0
	for i := 0; i < m.n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.n; j++ {
			if j == col {
				continue
			}
			r.data[dst] = m.at(i, j)
			dst++
		}
	}
	return r, nil
}

// Minor is the determinant of Submatrix(row, col).
func (m *Matrix) Minor(row, col int) (Real, error) {
	sub, err := m.Submatrix(row, col)
	if err != nil {
		return 0, err
	}
	return sub.Determinant()
}

// Cofactor is the minor negated when row+col is odd.
func (m *Matrix) Cofactor(row, col int) (Real, error) {
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}
	return minor, nil
}

// Inverse returns the adjugate divided by the determinant.
// The cofactor of (i, j) lands at (j, i): that write is the transpose.
func (m *Matrix) Inverse() (*Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, opErrorf("Inverse", err)
	}
	if det == 0 {
		return nil, opErrorf("Inverse", ErrSingular)
	}
	r := newMatrix(m.n)
	if m.n == 1 {
		// a 1x1 matrix has no cofactors
		r.data[0] = 1 / det
		return r, nil
	}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			c, err := m.Cofactor(i, j)
			if err != nil {
				return nil, opErrorf("Inverse", err)
			}
			r.data[j*m.n+i] = c / det
		}
	}
	return r, nil
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.at(i, j))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
