package codec

import (
	"bytes"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/nathanhack/secded/linearblock/secded"
)

func ExampleDemo() {
	Demo(os.Stdout, secded.New())
	//Output:
	// ==================================================
	// ENCODING EXAMPLES
	// ==================================================
	// Input: 011011  ->  Encoded: 01101111110
	// Input: 000000  ->  Encoded: 00000000000
	// Input: 101101  ->  Encoded: 10110111101
	// Input: 111110  ->  Encoded: 11111011111
	//
	// ==================================================
	// DECODING RECEIVED CODEWORDS
	// ==================================================
	// Codeword: 00101111110  ->  Decoded: 011011, Result: FIXED
	// Codeword: 00000000001  ->  Decoded: 000000, Result: FIXED
	// Codeword: 10110111101  ->  Decoded: 101101, Result: OK
	// Codeword: 11111010111  ->  Decoded: 111110, Result: FIXED
	//
	// ==================================================
	// SINGLE-BIT ERROR CORRECTION
	// ==================================================
	// Corrupted: 01111111110  ->  Decoded: 011011, Result: FIXED
	//
	// ==================================================
	// UNCORRECTABLE ERROR (DOUBLE-BIT ERROR)
	// ==================================================
	// Corrupted: 10110011111  ->  Decoded: None, Result: ERROR
}

func TestEncodeDecode(t *testing.T) {
	c := secded.New()
	tests := []struct {
		encode   bool
		input    string
		expected string
		err      error
	}{
		{true, "011011", "01101111110\n", nil},
		{true, "0 1 1 0 1 1", "01101111110\n", nil},
		{true, "01101", "", secded.ErrInvalidLength},
		{true, "01a011", "", secded.ErrInvalidBit},
		{false, "01101111110", "011011 OK\n", nil},
		{false, "01101111111", "011011 FIXED\n", nil},
		{false, "01100111111", "None ERROR\n", nil},
		{false, "011011111101", "", secded.ErrInvalidLength},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			buf := bytes.Buffer{}
			var err error
			if test.encode {
				err = Encode(&buf, c, test.input)
			} else {
				err = Decode(&buf, c, test.input)
			}

			if !errors.Is(err, test.err) {
				t.Fatalf("expected error %v but found %v", test.err, err)
			}
			if buf.String() != test.expected {
				t.Fatalf("expected %q but found %q", test.expected, buf.String())
			}
		})
	}
}

func TestErrorPatterns(t *testing.T) {
	c := secded.New()
	for _, word := range []string{"000000", "011011", "111110"} {
		t.Run(word, func(t *testing.T) {
			outcomes, err := ErrorPatterns(c, word, true)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if len(outcomes) != 11+55 {
				t.Fatalf("expected 66 outcomes but found %v", len(outcomes))
			}

			encoded := bytes.Buffer{}
			if err := Encode(&encoded, c, word); err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			codeword := strings.TrimSpace(encoded.String())

			for _, o := range outcomes {
				diff := 0
				for i := range codeword {
					if codeword[i] != o.Received[i] {
						diff++
					}
				}
				if diff != len(o.Flips) {
					t.Fatalf("flips %v: expected %v to differ from %v in %v bits", o.Flips, o.Received, codeword, len(o.Flips))
				}

				expected := secded.Uncorrectable
				decoded := "None"
				if len(o.Flips) == 1 {
					expected = secded.Corrected
					decoded = word
				}
				if o.Result != expected || o.Decoded != decoded {
					t.Fatalf("flips %v: expected (%v, %v) but found (%v, %v)", o.Flips, decoded, expected, o.Decoded, o.Result)
				}
			}

			buf := bytes.Buffer{}
			WriteTable(&buf, outcomes)
			if !bytes.Contains(buf.Bytes(), []byte("ERROR: 55\n")) || !bytes.Contains(buf.Bytes(), []byte("FIXED: 11\n")) {
				t.Fatalf("unexpected table\n%v", buf.String())
			}
		})
	}

	if _, err := ErrorPatterns(c, "0110", true); !errors.Is(err, secded.ErrInvalidLength) {
		t.Fatalf("expected %v but found %v", secded.ErrInvalidLength, err)
	}
}

func TestNewMatrices(t *testing.T) {
	m := NewMatrices(secded.New())

	if len(m.G) != secded.MessageLength || len(m.H) != secded.ParitySymbols || len(m.NonSystematic) != secded.MessageLength {
		t.Fatalf("unexpected shapes %v %v %v", len(m.NonSystematic), len(m.G), len(m.H))
	}
	if len(m.Positions) != secded.BlockLength {
		t.Fatalf("expected %v positions but found %v", secded.BlockLength, len(m.Positions))
	}
	for s, p := range m.Positions {
		value := 0
		for r, row := range m.H {
			value |= row[p] << r
		}
		if value != s {
			t.Fatalf("expected column %v of H to be %v but found %v", p, s, value)
		}
	}
}
