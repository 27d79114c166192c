package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jiractl/internal/domain"
)

var testBoards = []domain.Board{
	{ID: 42, Name: "Team A", ProjectKey: "PROJ", ProjectName: "Project", Type: domain.BoardScrum},
	{ID: 43, Name: "Ops", ProjectKey: "OPS", ProjectName: "Operations", Type: domain.BoardKanban},
}

func TestWriteBoards_Table(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeBoards(&out, testBoards, "table"))

	expected := "ID  NAME    TYPE    PROJECT  SPRINTS\n" +
		"42  Team A  scrum   PROJ     yes\n" +
		"43  Ops     kanban  OPS      no\n"
	assert.Equal(t, expected, out.String())
}

func TestWriteBoards_TableEmpty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeBoards(&out, nil, "table"))

	assert.Equal(t, "No board found.\n", out.String())
}

func TestWriteBoards_JSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeBoards(&out, testBoards, "json"))

	var boards []boardOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &boards))
	require.Len(t, boards, 2)
	assert.Equal(t, boardOutput{
		ID:              42,
		Name:            "Team A",
		ProjectKey:      "PROJ",
		ProjectName:     "Project",
		SupportsSprints: true,
		Type:            domain.BoardScrum,
	}, boards[0])
	assert.False(t, boards[1].SupportsSprints)
}

func TestWriteBoards_JSONEmpty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeBoards(&out, nil, "json"))

	assert.Equal(t, "[]\n", out.String())
}
