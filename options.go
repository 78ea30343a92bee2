package jsonflat

// Options decide which lines are printed.  They have no effect on parsing.
type Options struct {
	// LeafOnly only prints scalar values.
	LeafOnly bool

	// Prune does not print empty strings.
	Prune bool

	// NoHead does not print the line for the root of the document.
	NoHead bool

	// NormalizeSolidus replaces "\/" with "/" in scalar values.
	NormalizeSolidus bool
}

// BriefOptions returns the options printing only non-empty leaves.
func BriefOptions() Options {
	return Options{LeafOnly: true, Prune: true}
}

// Brief is true when both LeafOnly and Prune are set.
func (o Options) Brief() bool {
	return o.LeafOnly && o.Prune
}

// shouldPrint applies the policy to a node that has a non-empty value.
//
// Note that isEmpty is only set for the scalar "", whose value is always
// empty, so Prune has no visible effect on its own.
func (o Options) shouldPrint(isLeaf, isEmpty bool) bool {
	switch {
	case o.LeafOnly && o.Prune:
		return isLeaf && !isEmpty
	case o.LeafOnly:
		return isLeaf
	case o.Prune:
		return !isEmpty
	default:
		return true
	}
}
