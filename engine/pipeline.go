package engine

import (
	"fmt"
)

// ValidatePipeline checks an ordered system list against its declared access sets
// Every Fresh resource must be written by an earlier system and must also be declared in Reads
func ValidatePipeline(systems []System) error {
	if len(systems) == 0 {
		return ErrEmptyPipeline
	}

	seen := make(map[string]struct{}, len(systems))
	var written ResourceMask
	for _, s := range systems {
		if _, dup := seen[s.Name()]; dup {
			return fmt.Errorf("%w: %q registered twice", ErrPipelineOrder, s.Name())
		}
		seen[s.Name()] = struct{}{}

		acc := s.Access()
		if !acc.Reads.Has(acc.Fresh) {
			return fmt.Errorf("%w: %s marks %s fresh without reading it",
				ErrPipelineOrder, s.Name(), acc.Fresh&^acc.Reads)
		}
		if missing := acc.Fresh &^ written; missing != 0 {
			return fmt.Errorf("%w: %s reads %s before any system writes it this tick",
				ErrPipelineOrder, s.Name(), missing)
		}
		written |= acc.Writes
	}
	return nil
}
