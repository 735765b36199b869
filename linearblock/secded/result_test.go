package secded

import (
	"encoding/json"
	"testing"
)

func TestResult_String(t *testing.T) {
	tests := map[Result]string{
		Valid:         "OK",
		Corrected:     "FIXED",
		Uncorrectable: "ERROR",
		Result(7):     "Result(7)",
	}
	for r, expected := range tests {
		if r.String() != expected {
			t.Fatalf("expected %v but found %v", expected, r.String())
		}
	}
}

func TestResult_JSONMapKeys(t *testing.T) {
	counts := map[Result]int{Valid: 3, Corrected: 2, Uncorrectable: 1}

	bs, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if string(bs) != `{"ERROR":1,"FIXED":2,"OK":3}` {
		t.Fatalf("unexpected json %s", bs)
	}

	var actual map[Result]int
	if err := json.Unmarshal(bs, &actual); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	for r, c := range counts {
		if actual[r] != c {
			t.Fatalf("expected %v for %v but found %v", c, r, actual[r])
		}
	}

	var r Result
	if err := r.UnmarshalText([]byte("MAYBE")); err == nil {
		t.Fatalf("expected an error")
	}
	if _, err := Result(9).MarshalText(); err == nil {
		t.Fatalf("expected an error")
	}
}
