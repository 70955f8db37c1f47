package raytracer

type builderMode uint8

const (
	modeEmpty builderMode = iota
	modeRows
	modePreset
)

// MatrixBuilder assembles a square matrix row by row, or from one of the
// transform presets. Errors are sticky: the first one is returned by Build.
//
//	m, err := NewMatrixBuilder().
//		WithRow(1, 2).
//		WithRow(3, 4).
//		Build()
type MatrixBuilder struct {
	rows   [][]Real
	width  int
	mode   builderMode
	preset *Matrix
	err    error
}

func NewMatrixBuilder() *MatrixBuilder {
	return &MatrixBuilder{}
}

// WithRow appends one row. All rows must share the width of the first.
func (b *MatrixBuilder) WithRow(values ...Real) *MatrixBuilder {
	if b.err != nil {
		return b
	}
	if b.mode == modePreset {
		b.err = opErrorf("WithRow", ErrBuilderMode)
		return b
	}
	if b.mode == modeRows && len(values) != b.width {
		b.err = opErrorf("WithRow", ErrRaggedRows)
		return b
	}
	b.mode = modeRows
	b.width = len(values)
	row := make([]Real, len(values))
	copy(row, values)
	b.rows = append(b.rows, row)
	return b
}

func (b *MatrixBuilder) usePreset(op string, m *Matrix) *MatrixBuilder {
	if b.err != nil {
		return b
	}
	if b.mode != modeEmpty {
		b.err = opErrorf(op, ErrBuilderMode)
		return b
	}
	b.mode = modePreset
	b.preset = m
	return b
}

func (b *MatrixBuilder) AsIdentity(n int) *MatrixBuilder {
	return b.usePreset("AsIdentity", Identity(n))
}

func (b *MatrixBuilder) AsTranslation(x, y, z Real) *MatrixBuilder {
	return b.usePreset("AsTranslation", Translation(x, y, z))
}

func (b *MatrixBuilder) AsScaling(x, y, z Real) *MatrixBuilder {
	return b.usePreset("AsScaling", Scaling(x, y, z))
}

// Build returns the matrix. An untouched builder yields a size-0 matrix.
func (b *MatrixBuilder) Build() (*Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	switch b.mode {
	case modePreset:
		return b.preset.Clone(), nil
	case modeRows:
		if len(b.rows) != b.width {
			return nil, opErrorf("Build", ErrNonSquare)
		}
		return NewMatrixFromRows(b.rows)
	default:
		return newMatrix(0), nil
	}
}

// Reset clears rows, presets and any recorded error.
func (b *MatrixBuilder) Reset() {
	*b = MatrixBuilder{}
}
