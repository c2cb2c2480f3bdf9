package contractkit

// Classification is the static compatibility verdict for a Diff.
type Classification string

const (
	Additive Classification = "ADDITIVE"
	Breaking Classification = "BREAKING"
)

// Classify applies, in order: removed properties, type changes, newly
// required fields. Any of them makes the change BREAKING. Added optional
// properties and identity relabels are ADDITIVE.
func Classify(d Diff) Classification {
	switch {
	case len(d.Removed) > 0:
		return Breaking
	case len(d.TypeChanged) > 0:
		return Breaking
	case len(d.NewRequired) > 0:
		return Breaking
	}
	return Additive
}
