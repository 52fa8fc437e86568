package summary_test

import (
	"testing"

	"fjacquet/budget-csv/cmd/summary"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.Contains(t, summary.Cmd.Short, "Summarize")
	assert.NotNil(t, summary.Cmd.Run)
}

func TestSummaryCommand_Flags(t *testing.T) {
	showIncomeFlag := summary.Cmd.Flags().Lookup("show-income")
	if assert.NotNil(t, showIncomeFlag) {
		assert.Equal(t, "true", showIncomeFlag.DefValue)
	}
}
