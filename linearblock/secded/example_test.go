package secded

import (
	"fmt"
)

func ExampleCodec_Decode() {
	c := New()

	message, _ := ParseBits("011011")
	codeword, _ := c.Encode(message)
	fmt.Println("Encoded:", FormatBits(codeword))

	codeword.Set(2, codeword.At(2)+1)
	decoded, result, _ := c.Decode(codeword)
	fmt.Println("Decoded:", FormatBits(decoded), result)

	codeword.Set(5, codeword.At(5)+1)
	decoded, result, _ = c.Decode(codeword)
	fmt.Println("Decoded:", FormatBits(decoded), result)
	//Output:
	// Encoded: 01101111110
	// Decoded: 011011 FIXED
	// Decoded: None ERROR
}
