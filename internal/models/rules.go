package models

// Rules is the classifier configuration: which group a category belongs to
// and how groups are labelled for display. It is data, not behavior — the
// classifier receives it, it does not own it. Loadable from a YAML file via
// the store package.
type Rules struct {
	// CategoryToGroup maps a category label (case-sensitive, exact) to its
	// budget group. Categories not listed fall back to GroupOther.
	CategoryToGroup map[string]Group `yaml:"categories"`

	// GroupLabels maps a group to its human-readable display label.
	GroupLabels map[Group]string `yaml:"group_labels"`
}

// DefaultRules returns the built-in classification table used when no rules
// file is present.
func DefaultRules() Rules {
	return Rules{
		CategoryToGroup: map[string]Group{
			// fixed costs
			"Miete":        GroupFix,
			"Krankenkasse": GroupFix,
			"ÖV":           GroupFix,
			"Handy":        GroupFix,
			"Internet":     GroupFix,
			"Strom":        GroupFix,
			"Abo":          GroupFix,
			// discretionary
			"Restaurant": GroupWant,
			"Kino":       GroupWant,
			"Games":      GroupWant,
			"Kleidung":   GroupWant,
			"Hobby":      GroupWant,
			// savings
			"Sparen":      GroupSave,
			"Investieren": GroupSave,
		},
		GroupLabels: map[Group]string{
			GroupFix:   "Fixkosten",
			GroupWant:  "Persönliche Wünsche",
			GroupSave:  "Sparen",
			GroupOther: "Andere",
		},
	}
}

// Label returns the display label for a group, falling back to the raw
// group name when no label is configured.
func (r Rules) Label(g Group) string {
	if label, ok := r.GroupLabels[g]; ok {
		return label
	}
	return string(g)
}
