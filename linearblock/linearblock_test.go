package linearblock

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func hamming74() *LinearBlock {
	return &LinearBlock{
		G: mat.CSRMat(4, 7,
			1, 0, 0, 0, 1, 1, 0,
			0, 1, 0, 0, 1, 0, 1,
			0, 0, 1, 0, 0, 1, 1,
			0, 0, 0, 1, 1, 1, 1,
		),
		H: mat.CSRMat(3, 7,
			1, 1, 0, 1, 1, 0, 0,
			1, 0, 1, 1, 0, 1, 0,
			0, 1, 1, 1, 0, 0, 1,
		),
	}
}

func TestLinearBlock_Encode(t *testing.T) {
	block := hamming74()
	tests := []struct {
		message  mat.SparseVector
		expected mat.SparseVector
	}{
		{mat.CSRVec(4), mat.CSRVec(7)},
		{mat.CSRVec(4, 1, 0, 0, 0), mat.CSRVec(7, 1, 0, 0, 0, 1, 1, 0)},
		{mat.CSRVec(4, 1, 0, 1, 1), mat.CSRVec(7, 1, 0, 1, 1, 0, 1, 0)},
		{mat.CSRVec(4, 1, 1, 1, 1), mat.CSRVec(7, 1, 1, 1, 1, 1, 1, 1)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := block.Encode(test.message)
			if !actual.Equals(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}

			if !block.Syndrome(actual).IsZero() {
				t.Fatalf("expected zero syndrome for %v", actual)
			}

			message := block.Message(actual)
			if !message.Equals(test.message) {
				t.Fatalf("expected %v but found %v", test.message, message)
			}
		})
	}
}

func TestLinearBlock_EncodePanicsOnLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	hamming74().Encode(mat.CSRVec(5))
}

func TestLinearBlock_Syndrome(t *testing.T) {
	block := hamming74()
	codeword := block.Encode(mat.CSRVec(4, 0, 1, 1, 0))

	for i := 0; i < codeword.Len(); i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			errored := mat.CSRVecCopy(codeword)
			errored.Set(i, errored.At(i)+1)

			actual := block.Syndrome(errored)
			expected := block.H.Column(i)
			if !actual.Equals(expected) {
				t.Fatalf("expected %v but found %v", expected, actual)
			}
		})
	}
}

func TestLinearBlock_Validate(t *testing.T) {
	block := hamming74()
	if !block.Validate() {
		t.Fatalf("expected valid linearblock code")
	}
	if block.MessageLength() != 4 || block.ParitySymbols() != 3 || block.CodewordLength() != 7 {
		t.Fatalf("expected (7,4) but found (%v,%v)", block.CodewordLength(), block.MessageLength())
	}

	block.H = mat.CSRMat(3, 7,
		1, 1, 0, 1, 1, 0, 0,
		1, 0, 1, 1, 0, 1, 0,
		1, 1, 1, 1, 0, 0, 1,
	)
	if block.Validate() {
		t.Fatalf("expected invalid linearblock code")
	}
}
