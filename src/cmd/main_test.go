package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/log"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	render(&buf, []boggle.Result{{Word: "sword", Score: 2}, {Word: "cat", Score: 1}}, false)
	assert.Equal(t, "Found 2 solutions\n"+
		"Sort results by: score\n"+
		"Word                 Score\n"+
		"------------------------------\n"+
		"sword                2\n"+
		"cat                  1\n", buf.String())

	buf.Reset()
	render(&buf, []boggle.Result{{Word: "cat", Score: 1}}, true)
	assert.Contains(t, buf.String(), "cat                  "+red+"1"+reset)
}

func TestRun(t *testing.T) {
	log.SetLogger(zap.NewNop())
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\nact\ntac\ncats\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, "CATTCAATC", path, false))
	assert.Contains(t, buf.String(), "Found 3 solutions")

	assert.ErrorIs(t, run(context.Background(), &buf, "ca7t", path, false), boggle.ErrInvalidCharacter)
	assert.ErrorIs(t, run(context.Background(), &buf, "cattc", path, false), boggle.ErrInvalidBoardShape)

	var le *boggle.DictionaryLoadError
	assert.ErrorAs(t, run(context.Background(), &buf, "catt", filepath.Join(t.TempDir(), "none"), false), &le)
}
