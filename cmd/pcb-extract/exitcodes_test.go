package main

import (
	"errors"
	"testing"

	"github.com/meawoppl/pastebom.com/pkg/extract"
)

func TestExitCodeForMapsKnownCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{&extract.Error{Code: extract.CodeUnsupportedFormat}, 3},
		{&extract.Error{Code: extract.CodeIO}, 5},
		{&extract.Error{Code: extract.CodeMalformed}, 4},
		{&extract.Error{Code: extract.CodeSchemaViolation}, 4},
		{errors.New("bad flag"), 2},
	}
	for _, c := range cases {
		if got := exitCodeFor(c.err); got != c.want {
			t.Errorf("exitCodeFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestExitCodeForUnwrapsWrappedExtractError(t *testing.T) {
	wrapped := errWrap{&extract.Error{Code: extract.CodeTruncated}}
	if got := exitCodeFor(wrapped); got != 4 {
		t.Errorf("exitCodeFor(wrapped truncated) = %d, want 4", got)
	}
}

type errWrap struct{ err error }

func (e errWrap) Error() string { return "wrapped: " + e.err.Error() }
func (e errWrap) Unwrap() error { return e.err }
