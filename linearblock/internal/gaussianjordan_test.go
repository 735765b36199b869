package internal

import (
	"reflect"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestReducedRowEchelonGF2(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected mat.SparseMat
		pivots   []int
	}{
		{ //Hamming 7 already reduced
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			[]int{0, 1, 2},
		},
		{ //needs a row swap and back substitution
			mat.CSRMat(3, 4, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 0, 0),
			mat.CSRMat(3, 4, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1),
			[]int{0, 1, 2},
		},
		{ //one linearly dependent row
			mat.CSRMat(3, 4, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0),
			mat.CSRMat(3, 4, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0),
			[]int{0, 1},
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			input := mat.CSRMatCopy(test.input)

			actual, pivots := ReducedRowEchelonGF2(test.input)

			if !test.expected.Equals(actual) {
				t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, actual)
			}
			if !reflect.DeepEqual(test.pivots, pivots) {
				t.Fatalf("expected pivots %v but found %v", test.pivots, pivots)
			}
			if !input.Equals(test.input) {
				t.Fatalf("expected input to be left untouched")
			}
		})
	}
}

func TestRankGF2(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{mat.CSRIdentity(4), 4},
		{mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1), 3},
		{mat.CSRMat(2, 3), 0},
		{nil, -1},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := RankGF2(test.input)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
