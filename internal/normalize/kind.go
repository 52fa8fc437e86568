package normalize

import (
	"strings"

	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/parsererror"
)

// The synonym sets accept both English and German spellings, since the
// input files this tool sees are written in either.
var kindSynonyms = map[string]models.Kind{
	"income":    models.KindIncome,
	"ein":       models.KindIncome,
	"einnahme":  models.KindIncome,
	"einnahmen": models.KindIncome,
	"expense":   models.KindExpense,
	"aus":       models.KindExpense,
	"ausgabe":   models.KindExpense,
	"ausgaben":  models.KindExpense,
}

// Kind maps a raw kind value to income or expense. Matching is
// case-insensitive and whitespace-tolerant; anything outside the closed
// synonym set is an error.
func Kind(raw string) (models.Kind, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if kind, ok := kindSynonyms[value]; ok {
		return kind, nil
	}
	return "", &parsererror.InvalidKindError{Value: strings.TrimSpace(raw)}
}
