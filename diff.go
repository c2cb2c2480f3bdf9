package contractkit

// TypeChange records a property whose descriptor differs between versions.
type TypeChange struct {
	Property string
	From     string
	To       string
}

// Diff is the structural delta between two versions of a schema. It looks at
// top-level properties only.
type Diff struct {
	Added       []string // in the new schema's property order
	Removed     []string // in the old schema's property order
	TypeChanged []TypeChange
	NewRequired []string

	// Identity is set when the identity field's const differs only because
	// each side carries its own name.version. It never affects Classify.
	Identity *TypeChange
}

// Empty reports whether none of the four facts are present.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.TypeChanged) == 0 && len(d.NewRequired) == 0
}

// DiffSchemas compares old and next. It never fails; a nil schema or one
// without properties contributes an empty property set.
func DiffSchemas(old, next *Schema) Diff {
	var d Diff
	oldNames, newNames := old.PropertyNames(), next.PropertyNames()
	oldSet, newSet := toSet(oldNames), toSet(newNames)

	for _, p := range newNames {
		if _, ok := oldSet[p]; !ok {
			d.Added = append(d.Added, p)
		}
	}
	for _, p := range oldNames {
		if _, ok := newSet[p]; !ok {
			d.Removed = append(d.Removed, p)
			continue
		}
		oldNode, _ := old.Property(p)
		newNode, _ := next.Property(p)
		from, to := Describe(oldNode), Describe(newNode)
		if from.Equal(to) {
			continue
		}
		tc := TypeChange{Property: p, From: from.String(), To: to.String()}
		if isRelabel(old, next, p, from, to) {
			d.Identity = &tc
			continue
		}
		d.TypeChanged = append(d.TypeChanged, tc)
	}

	oldReq := toSet(old.Required())
	newReq := toSet(next.Required())
	seen := map[string]struct{}{}
	add := func(r string) {
		if _, ok := oldReq[r]; ok {
			return
		}
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		d.NewRequired = append(d.NewRequired, r)
	}
	for _, p := range newNames {
		if _, ok := newReq[p]; ok {
			add(p)
		}
	}
	for _, r := range next.Required() {
		if _, ok := newSet[r]; !ok {
			add(r)
		}
	}
	return d
}

func isRelabel(old, next *Schema, prop string, from, to Descriptor) bool {
	if prop != old.IdentityField || prop != next.IdentityField {
		return false
	}
	if from.Kind != KindConst || to.Kind != KindConst {
		return false
	}
	oc, ok1 := from.Value.(string)
	nc, ok2 := to.Value.(string)
	return ok1 && ok2 && oc != "" && nc != "" &&
		oc == old.Identity.String() && nc == next.Identity.String()
}

func toSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}
