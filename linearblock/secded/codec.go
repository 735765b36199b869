// Package secded implements a (10,6) linear block code extended with an
// overall parity bit: single bit errors are corrected and double bit errors
// are detected.
//
// The generator is embedded and turned into systematic form once by New.
// A Codec never changes after construction so it may be shared by any
// number of goroutines.
package secded

import (
	"errors"
	"fmt"

	"github.com/nathanhack/secded/linearblock"
	"github.com/nathanhack/secded/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//ErrInvalidLength is returned when a message or codeword has the wrong number of bits.
var ErrInvalidLength = errors.New("invalid length")

//Codec encodes and decodes words of the SEC-DED code. It is immutable after New.
type Codec struct {
	block     *linearblock.LinearBlock
	positions [1 << ParitySymbols]int
}

//New derives G and H from the embedded generator and returns a ready to use Codec.
func New() *Codec {
	G := ConvertToSystematic(NonSystematicGenerator())
	H := DeriveParityCheck(G)

	c := &Codec{
		block: &linearblock.LinearBlock{
			H: H,
			G: G,
		},
		positions: syndromePositions(H),
	}
	logrus.Debugf("SEC-DED (%v,%v)+1 codec ready", BlockLength, MessageLength)
	return c
}

//Block returns the underlying linear block. It must not be modified.
func (c *Codec) Block() *linearblock.LinearBlock {
	return c.block
}

//Position returns the bit position a syndrome value points at, -1 if none.
func (c *Codec) Position(syndrome int) int {
	if syndrome < 0 || syndrome >= len(c.positions) {
		return -1
	}
	return c.positions[syndrome]
}

//Encode returns the 11 bit codeword for a 6 bit message: message*G followed by the overall parity bit.
func (c *Codec) Encode(message mat.SparseVector) (codeword mat.SparseVector, err error) {
	if message == nil || message.Len() != MessageLength {
		return nil, fmt.Errorf("%w: message length == %v required but found %v", ErrInvalidLength, MessageLength, length(message))
	}

	block := c.block.Encode(message)

	codeword = mat.CSRVec(CodewordLength)
	for _, i := range block.NonzeroArray() {
		codeword.Set(i, 1)
	}
	codeword.Set(BlockLength, block.HammingWeight()%2)
	return codeword, nil
}

//Syndrome returns H times the first 10 bits of the received codeword.
func (c *Codec) Syndrome(received mat.SparseVector) (syndrome mat.SparseVector, err error) {
	if received == nil || received.Len() != CodewordLength {
		return nil, fmt.Errorf("%w: codeword length == %v required but found %v", ErrInvalidLength, CodewordLength, length(received))
	}
	return c.block.Syndrome(received.Slice(0, BlockLength)), nil
}

//Decode recovers the message from a received 11 bit codeword.
// A corrupted codeword is not an error: the Result tells if the message was
// taken as is, corrected, or could not be recovered. In the last case message is nil.
func (c *Codec) Decode(received mat.SparseVector) (message mat.SparseVector, result Result, err error) {
	if received == nil || received.Len() != CodewordLength {
		return nil, Uncorrectable, fmt.Errorf("%w: codeword length == %v required but found %v", ErrInvalidLength, CodewordLength, length(received))
	}

	block := mat.CSRVecCopy(received.Slice(0, BlockLength))
	syndrome := internal.VectorValue(c.block.Syndrome(block))
	totalParity := (block.HammingWeight() + received.At(BlockLength)) % 2

	switch {
	case totalParity == 0 && syndrome == 0:
		return c.block.Message(block), Valid, nil
	case totalParity == 1 && syndrome != 0:
		position := c.Position(syndrome)
		if position < 0 || position >= BlockLength {
			// odd number of errors, at least three
			return nil, Uncorrectable, nil
		}
		block.Set(position, block.At(position)+1)
		return c.block.Message(block), Corrected, nil
	case totalParity == 1 && syndrome == 0:
		// only the overall parity bit flipped
		return c.block.Message(block), Corrected, nil
	default:
		return nil, Uncorrectable, nil
	}
}

//Validate checks G*H.T=0, the identity blocks of G and H, that G is the reduced
// row echelon form of the embedded generator, and that H's columns are distinct.
func (c *Codec) Validate() bool {
	if !c.block.Validate() {
		logrus.Debugf("G and H do not form a systematic code")
		return false
	}

	rref, pivots := internal.ReducedRowEchelonGF2(NonSystematicGenerator())
	if len(pivots) != MessageLength || !rref.Equals(c.block.G) {
		logrus.Debugf("G does not span the same code as the embedded generator")
		return false
	}

	seen := make(map[int]bool)
	for col := 0; col < BlockLength; col++ {
		value := internal.ColumnValue(c.block.H, col)
		if value == 0 || seen[value] || c.positions[value] != col {
			logrus.Debugf("column %v of H can not locate an error", col)
			return false
		}
		seen[value] = true
	}
	return true
}

func length(v mat.SparseVector) int {
	if v == nil {
		return 0
	}
	return v.Len()
}
