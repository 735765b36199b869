package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/nathanhack/secded/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

var DemoRun = func(cmd *cobra.Command, args []string) {
	if err := Demo(cmd.OutOrStdout(), secded.New()); err != nil {
		fmt.Println(err)
	}
}

var (
	demoWords     = []string{"011011", "000000", "101101", "111110"}
	demoCodewords = []string{"00101111110", "00000000001", "10110111101", "11111010111"}
)

func section(w io.Writer, title string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%v\n%v\n%v\n", line, title, line)
}

func flipped(c *secded.Codec, word string, bits ...int) (mat.SparseVector, error) {
	message, err := secded.ParseBits(word)
	if err != nil {
		return nil, err
	}
	codeword, err := c.Encode(message)
	if err != nil {
		return nil, err
	}
	for _, b := range bits {
		codeword.Set(b, codeword.At(b)+1)
	}
	return codeword, nil
}

//Demo walks through encoding, decoding, single bit correction and double bit detection.
func Demo(w io.Writer, c *secded.Codec) error {
	section(w, "ENCODING EXAMPLES")
	for _, word := range demoWords {
		codeword, err := flipped(c, word)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Input: %v  ->  Encoded: %v\n", word, secded.FormatBits(codeword))
	}

	section(w, "DECODING RECEIVED CODEWORDS")
	for _, text := range demoCodewords {
		received, err := secded.ParseBits(text)
		if err != nil {
			return err
		}
		message, result, err := c.Decode(received)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Codeword: %v  ->  Decoded: %v, Result: %v\n", text, secded.FormatBits(message), result)
	}

	examples := []struct {
		title string
		word  string
		bits  []int
	}{
		{"SINGLE-BIT ERROR CORRECTION", "011011", []int{3}},
		{"UNCORRECTABLE ERROR (DOUBLE-BIT ERROR)", "111110", []int{1, 4}},
	}
	for _, e := range examples {
		section(w, e.title)
		corrupted, err := flipped(c, e.word, e.bits...)
		if err != nil {
			return err
		}
		message, result, err := c.Decode(corrupted)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Corrupted: %v  ->  Decoded: %v, Result: %v\n", secded.FormatBits(corrupted), secded.FormatBits(message), result)
	}
	return nil
}
