package cmd

import (
	"github.com/nathanhack/secded/cmd/internal/codec"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode DATA_BITS",
	Aliases: []string{"e", "enc"},
	Short:   "Encodes a 6 bit data word",
	Long:    `Encodes a 6 bit data word (for example 011011 or "0 1 1 0 1 1") into its 11 bit codeword.`,
	Args:    cobra.MinimumNArgs(1),
	Run:     codec.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode RECEIVED_BITS",
	Aliases: []string{"d", "dec"},
	Short:   "Decodes an 11 bit received word",
	Long:    `Decodes an 11 bit received word and prints the recovered data word with OK, FIXED or ERROR.`,
	Args:    cobra.MinimumNArgs(1),
	Run:     codec.DecodeRun,
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Runs the encode and decode walkthrough",
	Long:  `Encodes a few data words, decodes received words and shows one single bit correction and one double bit detection.`,
	Args:  cobra.NoArgs,
	Run:   codec.DemoRun,
}

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table [DATA_BITS]",
	Short: "Decodes every single and double error pattern",
	Long:  `Decodes every single and double bit error pattern of one codeword (default 000000) and prints the outcome of each.`,
	Args:  cobra.MaximumNArgs(1),
	Run:   codec.TableRun,
}

// matricesCmd represents the matrices command
var matricesCmd = &cobra.Command{
	Use:     "matrices [OUTPUT_JSON]",
	Aliases: []string{"m"},
	Short:   "Prints the generator and parity check matrices",
	Long:    `Prints the non-systematic generator, the systematic generator, the parity check matrix and the syndrome table.`,
	Args:    cobra.MaximumNArgs(1),
	Run:     codec.MatricesRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(demoCmd)

	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVarP(&codec.TableOutputFile, "output", "o", "", "also save the outcomes as json to this file")
	tableCmd.Flags().BoolVarP(&codec.TableDoubleOnly, "double", "d", false, "only the double error patterns")

	rootCmd.AddCommand(matricesCmd)
}
