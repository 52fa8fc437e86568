package normalize

import (
	"strings"

	"fjacquet/budget-csv/internal/models"
)

var groupSynonyms = map[string]models.Group{
	"fix":       models.GroupFix,
	"fixkosten": models.GroupFix,
	"want":      models.GroupWant,
	"wunsch":    models.GroupWant,
	"wünsche":   models.GroupWant,
	"wuensche":  models.GroupWant,
	"save":      models.GroupSave,
	"sparen":    models.GroupSave,
}

// Group maps a raw group value to a budget group. Unlike Kind this never
// fails: values outside the synonym set land in GroupOther, because an
// unclassified expense is still a valid expense.
func Group(raw string) models.Group {
	value := strings.ToLower(strings.TrimSpace(raw))
	if group, ok := groupSynonyms[value]; ok {
		return group
	}
	return models.GroupOther
}
