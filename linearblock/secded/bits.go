package secded

import (
	"errors"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

//ErrInvalidBit is returned when a bit is anything but 0 or 1.
var ErrInvalidBit = errors.New("invalid bit")

//FromBits converts a slice of 0s and 1s into a vector.
func FromBits(bits []int) (mat.SparseVector, error) {
	vec := mat.CSRVec(len(bits))
	for i, b := range bits {
		switch b {
		case 0:
		case 1:
			vec.Set(i, 1)
		default:
			return nil, fmt.Errorf("%w: %v at index %v", ErrInvalidBit, b, i)
		}
	}
	return vec, nil
}

//ParseBits reads bits from text such as "011011", "0 1 1 0 1 1" or "(0,1,1,0,1,1)".
func ParseBits(text string) (mat.SparseVector, error) {
	bits := make([]int, 0, len(text))
	for i, r := range text {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		case ' ', ',', '(', ')', '[', ']', '\t':
		default:
			return nil, fmt.Errorf("%w: %q at offset %v", ErrInvalidBit, r, i)
		}
	}
	return FromBits(bits)
}

//Bits returns the vector as a slice of 0s and 1s.
func Bits(v mat.SparseVector) []int {
	if v == nil {
		return nil
	}
	bits := make([]int, v.Len())
	for _, i := range v.NonzeroArray() {
		bits[i] = 1
	}
	return bits
}

//FormatBits writes the vector as a string of 0s and 1s.
func FormatBits(v mat.SparseVector) string {
	if v == nil {
		return "None"
	}
	buf := strings.Builder{}
	for _, b := range Bits(v) {
		buf.WriteByte(byte('0' + b))
	}
	return buf.String()
}
