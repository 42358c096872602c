package boggleapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
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

func fakeServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestSolveClient(t *testing.T) {
	addr := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/solve", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		in := SolveRequest{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"a", "b", "c", "d"}, in.Board)

		_ = json.NewEncoder(w).Encode(NewWordList([]boggle.Result{{Word: "abcd", Score: 1}}))
	})

	got, err := Solve([]string{"a", "b", "c", "d"}, addr)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, 1, got.TotalScore)
	assert.Equal(t, "abcd", got.Words[0].Word)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "error body", status: http.StatusBadRequest, body: `{"error":"invalid board shape: 3 cells"}`, want: "400: invalid board shape: 3 cells"},
		{name: "no body", status: http.StatusServiceUnavailable, want: "bad error code: 503"},
		{name: "unexpected", status: http.StatusTeapot, want: "bad error code: 418"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := Check([]string{"a"}, "a", addr)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestRollBoardClient(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	addr := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		mu.Lock()
		seen = append(seen, r.URL.RequestURI())
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(&BoardResponse{ID: "x", Size: 1, Board: []string{"a"}})
	})

	_, err := RollBoard(0, "", addr)
	require.NoError(t, err)
	got, err := RollBoard(5, "abc", addr)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Board)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/api/board", "/api/board/abc?size=5"}, seen)
}

func TestStatisticsClients(t *testing.T) {
	addr := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/statistics":
		case r.Method == http.MethodPut && r.URL.Path == "/api/dictionary":
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(&Statistics{Ready: true, Words: 3, Source: "words.txt"})
	})

	stats, err := GetStatistics(addr)
	require.NoError(t, err)
	assert.Equal(t, &Statistics{Ready: true, Words: 3, Source: "words.txt"}, stats)

	stats, err = ReloadDictionary(addr)
	require.NoError(t, err)
	assert.True(t, stats.Ready)
}

func TestMissedClient(t *testing.T) {
	addr := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		in := MissedRequest{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"cat"}, in.Found)
		_ = json.NewEncoder(w).Encode(NewWordList([]boggle.Result{}))
	})

	got, err := Missed([]string{"c"}, []string{"cat"}, addr)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.Words)
}
