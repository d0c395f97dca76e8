// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/submission-engine/pkg/types"
)

var testStudent = types.Student{Name: "Ada Lovelace", SUNet: "alove"}

func TestRender(t *testing.T) {
	t.Run("golden document", func(t *testing.T) {
		answers := []types.Answer{
			{Number: "1a", Text: "SELECT *\nFROM t;"},
			{Number: "1b", Text: ""},
		}

		got, err := Render(testStudent, answers)
		require.NoError(t, err)

		want := `<?xml version="1.0"?>
<pset>
    <student>
        <name>
            Ada Lovelace
        </name>
        <sunet>
            alove
        </sunet>
    </student>

    <answer number="1a">
        <![CDATA[
SELECT *
FROM t;
        ]]>
    </answer>
    <answer number="1b">
        <![CDATA[

        ]]>
    </answer>
</pset>
`
		assert.Equal(t, want, got)
	})

	t.Run("no answers still renders a valid document", func(t *testing.T) {
		got, err := Render(testStudent, nil)
		require.NoError(t, err)
		assert.Contains(t, got, "<pset>")
		assert.Contains(t, got, "</pset>\n")
		assert.NotContains(t, got, "<answer")
	})

	t.Run("cdata terminator in an answer fails validation", func(t *testing.T) {
		answers := []types.Answer{
			{Number: "1a", Text: "edge case: ]]> inside the answer"},
		}
		_, err := Render(testStudent, answers)
		require.ErrorIs(t, err, ErrInvalidXML)
	})

	t.Run("bare ampersand in a name fails validation", func(t *testing.T) {
		student := types.Student{Name: "Ada & Bob", SUNet: "alove"}
		_, err := Render(student, nil)
		require.ErrorIs(t, err, ErrInvalidXML)
	})

	t.Run("markup in a sunet fails validation", func(t *testing.T) {
		student := types.Student{Name: "Ada", SUNet: "<alove>"}
		_, err := Render(student, nil)
		require.ErrorIs(t, err, ErrInvalidXML)
	})
}

func TestWrite(t *testing.T) {
	t.Run("writes the rendered document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)
		answers := []types.Answer{{Number: "2", Text: "x = 1"}}

		require.NoError(t, Write(path, testStudent, answers))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		want, err := Render(testStudent, answers)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	})

	t.Run("writes nothing when validation fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)
		answers := []types.Answer{{Number: "1", Text: "]]>"}}

		err := Write(path, testStudent, answers)
		require.ErrorIs(t, err, ErrInvalidXML)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
