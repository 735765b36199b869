package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/secded/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

//Matrices holds every matrix of the code as rows of bits.
type Matrices struct {
	NonSystematic [][]int
	G             [][]int
	H             [][]int
	Positions     map[int]int // syndrome value -> bit position
}

var MatricesRun = func(cmd *cobra.Command, args []string) {
	m := NewMatrices(secded.New())
	WriteMatrices(cmd.OutOrStdout(), m)

	if len(args) == 0 {
		return
	}

	bs, err := json.Marshal(m)
	if err != nil {
		fmt.Println("Unable to serialize the matrices: ", err)
		return
	}

	err = os.WriteFile(args[0], bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}

func rows(M mat.SparseMat) [][]int {
	r, _ := M.Dims()
	result := make([][]int, r)
	for i := 0; i < r; i++ {
		result[i] = secded.Bits(M.Row(i))
	}
	return result
}

func NewMatrices(c *secded.Codec) Matrices {
	positions := make(map[int]int)
	for s := 1; s < 1<<secded.ParitySymbols; s++ {
		if p := c.Position(s); p >= 0 {
			positions[s] = p
		}
	}

	return Matrices{
		NonSystematic: rows(secded.NonSystematicGenerator()),
		G:             rows(c.Block().G),
		H:             rows(c.Block().H),
		Positions:     positions,
	}
}

func WriteMatrices(w io.Writer, m Matrices) {
	named := []struct {
		name string
		rows [][]int
	}{
		{"Non-systematic generator", m.NonSystematic},
		{"G", m.G},
		{"H", m.H},
	}
	for _, n := range named {
		fmt.Fprintf(w, "%v:\n", n.name)
		for _, r := range n.rows {
			fmt.Fprintln(w, r)
		}
	}

	fmt.Fprintln(w, "Syndrome -> position:")
	for s := 1; s < 1<<secded.ParitySymbols; s++ {
		p, has := m.Positions[s]
		if !has {
			fmt.Fprintf(w, "%2v -> none\n", s)
			continue
		}
		fmt.Fprintf(w, "%2v -> %v\n", s, p)
	}
}
