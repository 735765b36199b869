package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/nathanhack/secded/linearblock/secded"
	"github.com/spf13/cobra"
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	err := Encode(cmd.OutOrStdout(), secded.New(), strings.Join(args, ""))
	if err != nil {
		fmt.Println(err)
	}
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	err := Decode(cmd.OutOrStdout(), secded.New(), strings.Join(args, ""))
	if err != nil {
		fmt.Println(err)
	}
}

//Encode parses a data word and writes its codeword.
func Encode(w io.Writer, c *secded.Codec, text string) error {
	message, err := secded.ParseBits(text)
	if err != nil {
		return err
	}

	codeword, err := c.Encode(message)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, secded.FormatBits(codeword))
	return err
}

//Decode parses a received codeword and writes the decoded data word with the result label.
func Decode(w io.Writer, c *secded.Codec, text string) error {
	received, err := secded.ParseBits(text)
	if err != nil {
		return err
	}

	message, result, err := c.Decode(received)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%v %v\n", secded.FormatBits(message), result)
	return err
}
