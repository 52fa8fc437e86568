package export_test

import (
	"testing"

	"fjacquet/budget-csv/cmd/export"

	"github.com/stretchr/testify/assert"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	assert.Contains(t, export.Cmd.Short, "normalized")
	assert.NotNil(t, export.Cmd.Run)
}
