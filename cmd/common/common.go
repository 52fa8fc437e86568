// Package common holds helpers shared by the subcommands.
package common

import (
	"os"

	"fjacquet/budget-csv/internal/budgetparser"
	"fjacquet/budget-csv/internal/classifier"
	"fjacquet/budget-csv/internal/config"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/report"
	"fjacquet/budget-csv/internal/store"

	"github.com/sirupsen/logrus"
)

// Pipeline bundles the components every command needs.
type Pipeline struct {
	Rules     models.Rules
	Parser    *budgetparser.Parser
	Generator *report.Generator
}

// BuildPipeline loads the classification rules and assembles the parser and
// report generator from the resolved configuration.
func BuildPipeline(cfg *config.Config, log *logrus.Logger) (*Pipeline, error) {
	adapter := logging.NewLogrusAdapterFromLogger(log)

	rulesStore := store.NewRulesStore(cfg.Rules.File)
	rules, err := rulesStore.LoadRules()
	if err != nil {
		return nil, err
	}

	parser := budgetparser.New(classifier.New(rules, adapter), adapter)
	if cfg.CSV.Delimiter != "" {
		parser.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
	}
	parser.SetMaxRows(cfg.CSV.MaxRows)

	return &Pipeline{
		Rules:     rules,
		Parser:    parser,
		Generator: report.NewGenerator(rules, adapter),
	}, nil
}

// OpenOutput returns the destination for command output: the named file, or
// stdout when path is empty. The caller owns the returned closer; closing
// stdout is a no-op.
func OpenOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
