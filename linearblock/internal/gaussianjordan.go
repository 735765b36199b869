package internal

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// findPivotRow returns the first row >= fromRow with a one in column col, or -1.
func findPivotRow(M mat.SparseMat, col, fromRow int) int {
	for _, r := range M.Column(col).NonzeroArray() {
		if r >= fromRow {
			return r
		}
	}
	return -1
}

// eliminateOtherRows clears column col in every row except pivotRow (in GF2 subtract is add).
func eliminateOtherRows(M mat.SparseMat, col, pivotRow int) {
	prow := M.Row(pivotRow)
	for _, r := range M.Column(col).NonzeroArray() {
		if r == pivotRow {
			continue
		}
		row := M.Row(r)
		row.Add(row, prow)
		M.SetRow(r, row)
	}
}

// ReducedRowEchelonGF2 returns the reduced row echelon form of M over GF(2)
// together with the pivot column of each non-zero row. M is left untouched.
// Only rows are combined or swapped; columns keep their order.
func ReducedRowEchelonGF2(M mat.SparseMat) (mat.SparseMat, []int) {
	rows, cols := M.Dims()
	result := mat.CSRMatCopy(M)
	pivots := make([]int, 0, rows)

	r := 0
	for c := 0; c < cols && r < rows; c++ {
		p := findPivotRow(result, c, r)
		if p == -1 {
			continue
		}
		if p != r {
			result.SwapRows(r, p)
		}
		eliminateOtherRows(result, c, r)
		pivots = append(pivots, c)
		r++
	}

	logrus.Debugf("Gaussian-Jordan elimination complete: rank %v", len(pivots))
	return result, pivots
}

// RankGF2 returns the rank of M over GF(2).
func RankGF2(M mat.SparseMat) int {
	if M == nil {
		return -1
	}
	_, pivots := ReducedRowEchelonGF2(M)
	return len(pivots)
}
