package project_test

import (
	"testing"

	"fjacquet/budget-csv/cmd/project"

	"github.com/stretchr/testify/assert"
)

func TestProjectCommand_Metadata(t *testing.T) {
	assert.Equal(t, "project", project.Cmd.Use)
	assert.Contains(t, project.Cmd.Short, "Project long-term savings")
	assert.NotNil(t, project.Cmd.Run)
}

func TestProjectCommand_Flags(t *testing.T) {
	assert.NotNil(t, project.Cmd.Flags().Lookup("monthly"))

	yearsFlag := project.Cmd.Flags().Lookup("years")
	if assert.NotNil(t, yearsFlag) {
		assert.Equal(t, "0", yearsFlag.DefValue)
	}
}
