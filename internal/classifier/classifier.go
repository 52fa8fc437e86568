// Package classifier assigns budget groups to transactions. An explicit
// per-row override wins; otherwise the category is looked up in the
// configured rules table.
package classifier

import (
	"strings"

	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/normalize"
)

// Classifier resolves a category label to a budget group. It holds the rules
// it was constructed with and never mutates them, so a single instance is
// safe for concurrent use.
type Classifier struct {
	rules  models.Rules
	logger logging.Logger
}

// New creates a Classifier over the given rules.
func New(rules models.Rules, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{
		rules:  rules,
		logger: logger,
	}
}

// Classify determines the group for a transaction. If override (the raw
// content of the optional group column) is non-empty after trimming it is
// normalized through the synonym set and wins unconditionally. Otherwise the
// category is looked up exactly (case-sensitive) in the rules table, with
// GroupOther as the default for unknown categories.
func (c *Classifier) Classify(category, override string) models.Group {
	if strings.TrimSpace(override) != "" {
		group := normalize.Group(override)
		c.logger.Debug("group resolved from override",
			logging.Field{Key: logging.FieldCategory, Value: category},
			logging.Field{Key: logging.FieldGroup, Value: group},
		)
		return group
	}

	if group, ok := c.rules.CategoryToGroup[category]; ok {
		return group
	}

	c.logger.Debug("category not in rules table, using other",
		logging.Field{Key: logging.FieldCategory, Value: category},
	)
	return models.GroupOther
}

// Rules returns the rules this classifier was built with. The report layer
// uses them for group display labels.
func (c *Classifier) Rules() models.Rules {
	return c.rules
}
