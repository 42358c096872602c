package wordlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/log"
)

func init() {
	log.SetLogger(zap.NewNop())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("Cat\nact\nat\n"), 0o600))

	d, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, d.IsWord("cat"))
	assert.True(t, d.IsWord("act"))
	assert.False(t, d.IsWord("at"))
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Load(context.Background(), path)

	var le *boggle.DictionaryLoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Source)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/words.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, "boggle\nsword\n")
	}))
	defer srv.Close()

	d, err := Load(context.Background(), srv.URL+"/words.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	_, err = Load(context.Background(), srv.URL+"/missing.txt")
	var le *boggle.DictionaryLoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, err.Error(), "404")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/words.txt"))
	assert.True(t, IsURL("http://localhost/words.txt"))
	assert.False(t, IsURL("/usr/share/dict/words"))
	assert.False(t, IsURL("dictionary.txt"))
}
