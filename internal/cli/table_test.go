package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTableCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "✓ Derived 35 character(s)")
	assert.Contains(t, out, `'a'    coercion  "NaN"[1]`)
	assert.Contains(t, out, "(13).toString(14)")
	assert.NotContains(t, out, "(+{}+[])[+!![]]", "expressions are only shown in verbose mode")
}

func TestTableVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTableCommand(&RootOptions{Format: "text", Verbose: true})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "(+{}+[])[+!![]]")
}

func TestTableJSONWithCheck(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTableCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--check"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   TableResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Checked)
	require.Len(t, resp.Data.Entries, 35)

	first := resp.Data.Entries[0]
	assert.Equal(t, "N", first.Char)
	assert.Equal(t, "(+{}+[])[+[]]", first.Expr)
	assert.Equal(t, len(first.Expr), first.Bytes)

	last := resp.Data.Entries[len(resp.Data.Entries)-1]
	assert.Equal(t, "C", last.Char)
	assert.Equal(t, "escape", string(last.Strategy))
}

func TestTableCheckText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTableCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--check"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ All entries evaluate to their character")
}
