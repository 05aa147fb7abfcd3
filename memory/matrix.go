package memory

import "sync"

// Matrix is an ordered bundle of vectors sharing one orientation.
//
// The slice header is guarded by a small mutex so loads replace the
// whole bundle atomically; element-level safety is delegated entirely
// to the member vectors' own locks. Orientation is always derived from
// a member vector, never stored separately, so it cannot skew when the
// matrix is reloaded concurrently.
type Matrix struct {
	mu   sync.RWMutex // guards the vecs slice header only
	vecs []*Vector    // member vectors, all sharing one orientation
}

// NewMatrix creates an empty matrix. An empty matrix reads as a
// zero-row row-major matrix.
func NewMatrix() *Matrix {
	return &Matrix{vecs: []*Vector{}}
}

// validateRect rejects nil input, nil rows and ragged rows.
func validateRect(rows [][]float64) error {
	if rows == nil {
		return ErrNilData
	}
	if len(rows) == 0 {
		return nil
	}
	if rows[0] == nil {
		return ErrNilData
	}
	width := len(rows[0])
	for _, r := range rows[1:] {
		if r == nil {
			return ErrNilData
		}
		if len(r) != width {
			return ErrRaggedRows
		}
	}
	return nil
}

// LoadRowMajor replaces the contents with one row-oriented vector per
// input row. The input is deep-copied; no aliasing to caller storage.
// Returns ErrNilData or ErrRaggedRows.
func (m *Matrix) LoadRowMajor(rows [][]float64) error {
	if err := validateRect(rows); err != nil {
		return err
	}
	vecs := make([]*Vector, len(rows))
	for i, r := range rows {
		v, err := NewVector(r, Row)
		if err != nil {
			return err
		}
		vecs[i] = v
	}

	m.mu.Lock()
	m.vecs = vecs
	m.mu.Unlock()
	return nil
}

// LoadColumnMajor replaces the contents with one column-oriented vector
// per input column. The input is still the caller's row-major 2-D
// array; the data is transposed on load. Returns ErrNilData or
// ErrRaggedRows.
func (m *Matrix) LoadColumnMajor(rows [][]float64) error {
	if err := validateRect(rows); err != nil {
		return err
	}
	numRows := len(rows)
	numCols := 0
	if numRows > 0 {
		numCols = len(rows[0])
	}

	vecs := make([]*Vector, numCols)
	colData := make([]float64, numRows)
	for c := 0; c < numCols; c++ {
		for r := 0; r < numRows; r++ {
			colData[r] = rows[r][c]
		}
		v, err := NewVector(colData, Column)
		if err != nil {
			return err
		}
		vecs[c] = v
	}

	m.mu.Lock()
	m.vecs = vecs
	m.mu.Unlock()
	return nil
}

// snapshot returns the current vector slice under the header lock.
// The slice itself is immutable once published.
func (m *Matrix) snapshot() []*Vector {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vecs
}

// ReadRowMajor returns a freshly allocated row-major copy of the
// matrix, transposing on read when the storage is column-major.
//
// It snapshots the vector slice, then holds the read lock of every
// member vector for the duration of the copy so the caller observes a
// consistent matrix. Member vectors were created in ascending id order,
// so locking them in slice order obeys the global ordering invariant.
func (m *Matrix) ReadRowMajor() [][]float64 {
	vecs := m.snapshot()
	for _, v := range vecs {
		v.mu.RLock()
	}
	defer func() {
		for i := len(vecs) - 1; i >= 0; i-- {
			vecs[i].mu.RUnlock()
		}
	}()

	if len(vecs) == 0 {
		return [][]float64{}
	}

	if vecs[0].orient == Row {
		out := make([][]float64, len(vecs))
		for i, v := range vecs {
			out[i] = make([]float64, len(v.data))
			copy(out[i], v.data)
		}
		return out
	}

	// Column storage: transpose on read.
	numCols := len(vecs)
	numRows := len(vecs[0].data)
	out := make([][]float64, numRows)
	for r := 0; r < numRows; r++ {
		out[r] = make([]float64, numCols)
		for c := 0; c < numCols; c++ {
			out[r][c] = vecs[c].data[r]
		}
	}
	return out
}

// Get returns the i-th member vector (the i-th row for row-major
// storage, the i-th column for column-major). Returns
// ErrIndexOutOfBounds for i outside [0, Len).
func (m *Matrix) Get(i int) (*Vector, error) {
	vecs := m.snapshot()
	if i < 0 || i >= len(vecs) {
		return nil, ErrIndexOutOfBounds
	}
	return vecs[i], nil
}

// Len returns the number of member vectors: rows for row-major
// storage, columns for column-major.
func (m *Matrix) Len() int {
	return len(m.snapshot())
}

// Orientation returns the orientation derived from a member vector;
// an empty matrix reads as Row.
func (m *Matrix) Orientation() Orientation {
	vecs := m.snapshot()
	if len(vecs) == 0 {
		return Row
	}
	return vecs[0].Orientation()
}
