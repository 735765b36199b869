package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/secded/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	TableOutputFile string
	TableDoubleOnly bool
)

//PatternOutcome is what the decoder made of one error pattern.
type PatternOutcome struct {
	Flips    []int
	Received string
	Decoded  string
	Result   secded.Result
}

var TableRun = func(cmd *cobra.Command, args []string) {
	word := "000000"
	if len(args) > 0 {
		word = args[0]
	}

	outcomes, err := ErrorPatterns(secded.New(), word, !TableDoubleOnly)
	if err != nil {
		fmt.Println(err)
		return
	}

	WriteTable(cmd.OutOrStdout(), outcomes)

	if TableOutputFile == "" {
		return
	}
	bs, err := json.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		fmt.Println("Unable to serialize the outcomes: ", err)
		return
	}
	err = os.WriteFile(TableOutputFile, bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}

//ErrorPatterns decodes the codeword of word under every double bit error pattern,
// and every single bit error pattern when singles is set.
func ErrorPatterns(c *secded.Codec, word string, singles bool) ([]PatternOutcome, error) {
	message, err := secded.ParseBits(word)
	if err != nil {
		return nil, err
	}
	codeword, err := c.Encode(message)
	if err != nil {
		return nil, err
	}

	patterns := make([][]int, 0, secded.CodewordLength*(secded.CodewordLength+1)/2)
	if singles {
		for i := 0; i < secded.CodewordLength; i++ {
			patterns = append(patterns, []int{i})
		}
	}
	for i := 0; i < secded.CodewordLength; i++ {
		for j := i + 1; j < secded.CodewordLength; j++ {
			patterns = append(patterns, []int{i, j})
		}
	}

	outcomes := make([]PatternOutcome, 0, len(patterns))
	for _, p := range patterns {
		received := mat.CSRVecCopy(codeword)
		for _, b := range p {
			received.Set(b, received.At(b)+1)
		}
		decoded, result, err := c.Decode(received)
		if err != nil {
			return nil, err
		}
		if len(p) == 2 && result != secded.Uncorrectable {
			logrus.Warnf("double error %v decoded as %v", p, result)
		}
		if decoded != nil && !decoded.Equals(message) {
			logrus.Warnf("error pattern %v decoded to the wrong message %v", p, secded.FormatBits(decoded))
		}

		outcomes = append(outcomes, PatternOutcome{
			Flips:    p,
			Received: secded.FormatBits(received),
			Decoded:  secded.FormatBits(decoded),
			Result:   result,
		})
	}
	return outcomes, nil
}

//WriteTable prints one line per outcome followed by a count per result.
func WriteTable(w io.Writer, outcomes []PatternOutcome) {
	counts := make(map[secded.Result]int)
	fmt.Fprintf(w, "%-8v %-12v %-8v %v\n", "Flips", "Received", "Decoded", "Result")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%-8v %-12v %-8v %v\n", fmt.Sprint(o.Flips), o.Received, o.Decoded, o.Result)
		counts[o.Result]++
	}
	for _, r := range secded.Results() {
		fmt.Fprintf(w, "%v: %v\n", r, counts[r])
	}
}
