package experiment

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff reports the differences between two experiments in the unified
// format of the go-cmp package, or the empty string when the
// experiments are equivalent. Experiment names are ignored so that
// identically configured experiments compare equal across files.
func Diff(a, b *Experiment) string {
	return cmp.Diff(a, b, diffOptions()...)
}

// Equal returns whether two experiments are configured identically,
// ignoring their names
func Equal(a, b *Experiment) bool {
	return cmp.Equal(a, b, diffOptions()...)
}

func diffOptions() []cmp.Option {
	return []cmp.Option{
		cmpopts.IgnoreFields(Experiment{}, "Name"),
		cmpopts.EquateEmpty(),
	}
}
