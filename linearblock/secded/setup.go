package secded

import (
	"fmt"

	"github.com/nathanhack/secded/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

const (
	MessageLength  = 6                           // k, data bits per word
	BlockLength    = 10                          // n, bits produced by G
	ParitySymbols  = BlockLength - MessageLength // r, rows of H
	CodewordLength = BlockLength + 1             // G's output plus the overall parity bit
)

// rowXOR adds row Src into row Dst.
type rowXOR struct {
	Dst, Src int
}

// systematicProgram turns the embedded non-systematic generator into [I, P].
// It only holds for that exact matrix: a new generator needs a new program.
// Steps run in order since later steps read rows changed by earlier ones.
var systematicProgram = [][]rowXOR{
	{{2, 0}, {4, 0}, {5, 0}},
	{{0, 1}, {2, 1}, {5, 1}},
	{{0, 2}, {4, 2}, {5, 2}},
	{{0, 3}, {2, 3}},
	{{1, 4}, {2, 4}},
	{{0, 5}, {1, 5}, {4, 5}},
}

//NonSystematicGenerator returns a copy of the 6x10 generator the code is defined by.
func NonSystematicGenerator() mat.SparseMat {
	return mat.CSRMat(MessageLength, BlockLength,
		1, 1, 1, 0, 0, 0, 0, 1, 0, 0,
		0, 1, 0, 0, 1, 0, 0, 1, 0, 0,
		1, 0, 0, 1, 0, 1, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
		1, 1, 0, 1, 0, 0, 0, 1, 1, 0,
		1, 0, 0, 1, 0, 0, 0, 1, 0, 1,
	)
}

//ConvertToSystematic applies the fixed row XOR program to gns and returns G=[I, P].
// gns is not modified.
func ConvertToSystematic(gns mat.SparseMat) (G mat.SparseMat) {
	rows, cols := gns.Dims()
	if rows != MessageLength || cols != BlockLength {
		panic(fmt.Sprintf("generator shape == (%v,%v) required but found (%v,%v)", MessageLength, BlockLength, rows, cols))
	}

	G = mat.CSRMatCopy(gns)
	for s, step := range systematicProgram {
		for _, op := range step {
			internal.XORRows(G, op.Dst, op.Src)
		}
		logrus.Debugf("Systematic step %v complete", s+1)
	}

	if !internal.HasIdentity(G, 0, MessageLength) {
		logrus.Errorf("failed to transform the generator into [I,P]")
	}
	return G
}

//DeriveParityCheck builds H=[P^T, I] from G=[I, P].
func DeriveParityCheck(G mat.SparseMat) (H mat.SparseMat) {
	rows, cols := G.Dims()
	if rows != MessageLength || cols != BlockLength {
		panic(fmt.Sprintf("generator shape == (%v,%v) required but found (%v,%v)", MessageLength, BlockLength, rows, cols))
	}
	return internal.ParityCheckFromSystematic(G)
}

// syndromePositions maps every syndrome value to the bit position whose
// column in H has that value, -1 when no column does.
func syndromePositions(H mat.SparseMat) [1 << ParitySymbols]int {
	var positions [1 << ParitySymbols]int
	for i := range positions {
		positions[i] = -1
	}

	_, cols := H.Dims()
	for c := 0; c < cols; c++ {
		value := internal.ColumnValue(H, c)
		if value == 0 || positions[value] != -1 {
			panic(fmt.Sprintf("column %v of H does not have a unique non-zero syndrome", c))
		}
		positions[value] = c
	}
	return positions
}
