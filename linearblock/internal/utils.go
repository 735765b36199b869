package internal

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//XORRows replaces row dst of M with row dst + row src (addition over GF(2)).
func XORRows(M mat.SparseMat, dst, src int) {
	rows, _ := M.Dims()
	if dst < 0 || dst >= rows || src < 0 || src >= rows {
		panic("row index out of range")
	}
	if dst == src {
		panic("a row can not be added to itself")
	}

	row := M.Row(dst)
	row.Add(row, M.Row(src))
	M.SetRow(dst, row)
}

//ParityCheckFromSystematic builds H=[P^T, I] from a generator in the systematic form G=[I, P].
func ParityCheckFromSystematic(G mat.SparseMat) (H mat.SparseMat) {
	k, n := G.Dims()
	if k >= n {
		panic("G matrix shape == (rows, cols) where rows < cols required")
	}
	r := n - k

	P := G.Slice(0, k, k, r)
	PT := P.T()

	H = mat.DOKMat(r, n)
	H.SetMatrix(PT, 0, 0)
	H.SetMatrix(mat.CSRIdentity(r), 0, k)

	logrus.Debugf("Parity check matrix complete")
	return mat.CSRMatCopy(H)
}

//HasIdentity reports if M contains the size x size identity starting at column col.
func HasIdentity(M mat.SparseMat, col, size int) bool {
	rows, cols := M.Dims()
	if rows < size || cols < col+size {
		return false
	}
	return M.Slice(0, col, size, size).Equals(mat.CSRIdentity(size))
}

//ColumnValue reads column c of M as an integer where row i contributes 2^i.
func ColumnValue(M mat.SparseMat, c int) int {
	return VectorValue(M.Column(c))
}

//VectorValue reads v as an integer where index i contributes 2^i.
func VectorValue(v mat.SparseVector) int {
	value := 0
	for _, i := range v.NonzeroArray() {
		value |= 1 << i
	}
	return value
}

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, gcols := G.Dims()
	checks, hcols := H.Dims()
	if gcols != hcols {
		return false
	}

	cache := make([]mat.SparseVector, checks)
	for i := 0; i < checks; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < checks; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j])%2 > 0 {
				return false
			}
		}
	}

	return true
}
