package sbm

// BoolMatrix is an n×n boolean matrix stored as nonzero-only row sets: no
// entry is stored false (§3's SBM invariant). Rows absent from the map are
// entirely false.
type BoolMatrix struct {
	n    int
	rows map[int]map[int]struct{}
}

// NewBoolMatrix returns the n×n all-false matrix.
func NewBoolMatrix(n int) *BoolMatrix {
	return &BoolMatrix{n: n, rows: make(map[int]map[int]struct{})}
}

// Dim returns the matrix dimension n.
func (m *BoolMatrix) Dim() int {
	return m.n
}

// Set marks M[i,j] = true.
func (m *BoolMatrix) Set(i, j int) {
	row, ok := m.rows[i]
	if !ok {
		row = make(map[int]struct{})
		m.rows[i] = row
	}
	row[j] = struct{}{}
}

// Get reports M[i,j].
func (m *BoolMatrix) Get(i, j int) bool {
	row, ok := m.rows[i]
	if !ok {
		return false
	}
	_, ok = row[j]
	return ok
}

// NNZ returns the number of true entries.
func (m *BoolMatrix) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}
	return n
}

// Row returns the column indices set in row i, in no particular order.
func (m *BoolMatrix) Row(i int) []int {
	row := m.rows[i]
	out := make([]int, 0, len(row))
	for j := range row {
		out = append(out, j)
	}
	return out
}

// Or returns the elementwise boolean OR of m and other. Returns
// ErrTypeMismatch if dimensions differ.
func (m *BoolMatrix) Or(other *BoolMatrix) (*BoolMatrix, error) {
	if m.n != other.n {
		return nil, ErrTypeMismatch
	}
	out := NewBoolMatrix(m.n)
	for i, row := range m.rows {
		for j := range row {
			out.Set(i, j)
		}
	}
	for i, row := range other.rows {
		for j := range row {
			out.Set(i, j)
		}
	}
	return out, nil
}

// Mul returns the boolean matrix product m·other: (m·other)[i,k] is true
// iff some j has m[i,j] and other[j,k]. Returns ErrTypeMismatch if
// dimensions differ.
// Complexity: O(nnz(m) · avg-row-width(other)) in the worst case.
func (m *BoolMatrix) Mul(other *BoolMatrix) (*BoolMatrix, error) {
	if m.n != other.n {
		return nil, ErrTypeMismatch
	}
	out := NewBoolMatrix(m.n)
	for i, row := range m.rows {
		for j := range row {
			for k := range other.rows[j] {
				out.Set(i, k)
			}
		}
	}
	return out, nil
}

// Kron returns the Kronecker product of m (n1×n1) and other (n2×n2): an
// (n1·n2)×(n1·n2) matrix where (i,j) rows/cols map to i·n2+j per §4.1's
// Intersection rule.
func (m *BoolMatrix) Kron(other *BoolMatrix) *BoolMatrix {
	n2 := other.n
	out := NewBoolMatrix(m.n * n2)
	for i1, row1 := range m.rows {
		for j1 := range row1 {
			for i2, row2 := range other.rows {
				for j2 := range row2 {
					out.Set(i1*n2+i2, j1*n2+j2)
				}
			}
		}
	}
	return out
}

// Equal reports whether m and other have the same dimension and the same
// set of true entries.
func (m *BoolMatrix) Equal(other *BoolMatrix) bool {
	if m.n != other.n || m.NNZ() != other.NNZ() {
		return false
	}
	for i, row := range m.rows {
		for j := range row {
			if !other.Get(i, j) {
				return false
			}
		}
	}
	return true
}
