package secded

import "fmt"

//Result is the outcome of decoding a received codeword.
type Result int

const (
	Valid         Result = iota // no error detected
	Corrected                   // a single bit error was fixed
	Uncorrectable               // a double bit error (or worse) was detected
)

var resultLabels = map[Result]string{
	Valid:         "OK",
	Corrected:     "FIXED",
	Uncorrectable: "ERROR",
}

//Results lists every Result in order.
func Results() []Result {
	return []Result{Valid, Corrected, Uncorrectable}
}

//String returns the external label of the result: OK, FIXED or ERROR.
func (r Result) String() string {
	label, has := resultLabels[r]
	if !has {
		return fmt.Sprintf("Result(%d)", int(r))
	}
	return label
}

func (r Result) MarshalText() ([]byte, error) {
	if _, has := resultLabels[r]; !has {
		return nil, fmt.Errorf("unknown result %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(text []byte) error {
	for result, label := range resultLabels {
		if label == string(text) {
			*r = result
			return nil
		}
	}
	return fmt.Errorf("unknown result label %q", string(text))
}
