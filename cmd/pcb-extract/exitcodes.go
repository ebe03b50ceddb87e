package main

import (
	"errors"

	"github.com/meawoppl/pastebom.com/pkg/extract"
)

// exitCodeFor maps a failure onto spec §6's exit code table. Anything that
// isn't a recognized *extract.Error (cobra argument errors, flag parsing
// errors) falls back to 2, CLI usage error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var extractErr *extract.Error
	if errors.As(err, &extractErr) {
		switch extractErr.Code {
		case extract.CodeUnsupportedFormat:
			return 3
		case extract.CodeIO:
			return 5
		default:
			return 4
		}
	}
	return 2
}
