package linearblock

import (
	"fmt"
	"strings"

	"github.com/nathanhack/secded/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

//LinearBlock contains the systematic generator G=[I, P] and the parity check matrix H=[P^T, I] of a binary code.
type LinearBlock struct {
	H mat.SparseMat //the parity check matrix
	G mat.SparseMat //the systematic generator matrix
}

//Encode take in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	rows, cols := l.G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.CSRVec(cols)
	codeword.MulMat(message, l.G)
	return codeword
}

//Message returns the systematic part of the codeword.
func (l *LinearBlock) Message(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	return mat.CSRVecCopy(codeword.Slice(0, l.MessageLength()))
}

//Syndrome calculates H*codeword
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H,
// and that both matrices carry their identity blocks.
func (l *LinearBlock) Validate() bool {
	k, n := l.G.Dims()
	r, hn := l.H.Dims()
	if n != hn || k+r != n {
		return false
	}

	return internal.HasIdentity(l.G, 0, k) &&
		internal.HasIdentity(l.H, k, r) &&
		internal.ValidateHGMatrices(l.G, l.H)
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
