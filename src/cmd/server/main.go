package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/akamensky/argparse"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/boggleapi"
	"gitlab.com/pnathan/boggle/src/lib/config"
	"gitlab.com/pnathan/boggle/src/lib/live"
	"gitlab.com/pnathan/boggle/src/lib/log"
	"gitlab.com/pnathan/boggle/src/lib/wordlist"
)

var GLOBAL_DICTIONARY *live.InternalDictionary

var CONFIG = config.Default()

// Rolled boards above this edge are refused.
const MAX_BOARD_SIZE = 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	bytes, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bytes)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &boggleapi.ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("couldn't decode: %w", err)
	}
	return nil
}

func solveBoard(w http.ResponseWriter, r *http.Request) {
	input := boggleapi.SolveRequest{}
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	board, err := boggle.NewBoard(input.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := GLOBAL_DICTIONARY.Solver().SolveContext(r.Context(), board)
	if err != nil {
		log.Warn("solve abandoned", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, boggleapi.NewWordList(results))
}

func checkWord(w http.ResponseWriter, r *http.Request) {
	input := boggleapi.CheckRequest{}
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	word := strings.ToLower(strings.TrimSpace(input.Word))
	if word == "" {
		writeError(w, http.StatusBadRequest, errors.New("word required"))
		return
	}
	board, err := boggle.NewBoard(input.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out := &boggleapi.CheckResponse{Word: word}
	if path, ok := GLOBAL_DICTIONARY.Solver().Find(board, word); ok {
		out.Valid = true
		out.Score = boggle.ScoreOf(word)
		out.Path = path
	}
	writeJSON(w, http.StatusOK, out)
}

func missedWords(w http.ResponseWriter, r *http.Request) {
	input := boggleapi.MissedRequest{}
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	board, err := boggle.NewBoard(input.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := GLOBAL_DICTIONARY.Solver().SolveContext(r.Context(), board)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, boggleapi.NewWordList(boggle.Missed(results, input.Found)))
}

// rollBoard deals a new board, or replays the one named in the path.
func rollBoard(w http.ResponseWriter, r *http.Request) {
	size := CONFIG.DefaultSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MAX_BOARD_SIZE {
			writeError(w, http.StatusBadRequest, fmt.Errorf("size must be between 1 and %d", MAX_BOARD_SIZE))
			return
		}
		size = n
	}

	id := uuid.New()
	if raw, ok := mux.Vars(r)["id"]; ok {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad board id: %w", err))
			return
		}
		id = parsed
	}

	board, err := boggle.RollFor(id, size)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, &boggleapi.BoardResponse{
		ID:    id.String(),
		Size:  board.Size(),
		Board: board.Cells(),
	})
}

func currentStatistics() *boggleapi.Statistics {
	return &boggleapi.Statistics{
		Ready:  GLOBAL_DICTIONARY.Ready(),
		Words:  GLOBAL_DICTIONARY.Len(),
		Source: GLOBAL_DICTIONARY.Source(),
	}
}

func statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentStatistics())
}

func reloadDictionary(w http.ResponseWriter, r *http.Request) {
	if err := GLOBAL_DICTIONARY.Reload(r.Context()); err != nil {
		log.Error("dictionary reload failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, currentStatistics())
}

func Default(w http.ResponseWriter, r *http.Request) {

	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "ok")
}

func Index(w http.ResponseWriter, r *http.Request) {
	index := `<html>
   <head>
      <script type = "text/javascript">
			function showWords(data) {
				let pp = data["words"].map(r => r.word + " " + r.score).join("\n");
				document.getElementById("words").innerHTML = data["count"] + " words, " + data["total_score"] + " points\n" + pp;
			}
			function solve() {
				let cells = document.getElementById("grid").value.toLowerCase().replace(/\s+/g, "").split("");
				fetch('/api/solve', {method: 'POST', body: JSON.stringify({board: cells})})
				.then(response => response.json())
				.then(showWords);
			}
      </script>
   </head>

   <body>
<h1> boggle</h1>
      <input type = "text" id="grid" placeholder="abcdefghijklmnop" />
      <input type = "button" onclick = "solve()" value = "Solve" />
		<pre><div  id="words"></div></pre>

<hr>

   </body>
</html>`
	fmt.Fprint(w, index)
}

func Wut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "your content is in another url")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggerHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}

func recoverHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log.Error("handler panic", zap.Any("panic", p), zap.String("path", r.URL.Path))
				writeError(w, http.StatusInternalServerError, errors.New("internal error"))
			}
		}()
		h.ServeHTTP(w, r)
	})
}

func newRouter() http.Handler {
	r := mux.NewRouter()
	errorChain := alice.New(loggerHandler, recoverHandler)
	r.HandleFunc("/", Index)
	r.HandleFunc("/healthz", Default)
	r.HandleFunc("/api/solve", solveBoard).Methods("POST")
	r.HandleFunc("/api/check", checkWord).Methods("POST")
	r.HandleFunc("/api/missed", missedWords).Methods("POST")

	r.HandleFunc("/api/board", rollBoard).Methods("GET")
	r.HandleFunc("/api/board/{id}", rollBoard).Methods("GET")

	r.HandleFunc("/api/statistics", statistics).Methods("GET")
	r.HandleFunc("/api/dictionary", reloadDictionary).Methods("PUT")

	r.NotFoundHandler = http.HandlerFunc(Wut)
	return errorChain.Then(r)
}

//////////////////////////////////////////////////////////////
func main() {
	parser := argparse.NewParser("boggle-server", "serves the boggle solver over http")

	configFile := parser.String("c", "config", &argparse.Options{Required: false, Help: "yaml config file"})
	host := parser.String("i", "ip", &argparse.Options{Required: false, Help: "ip to bind to (default 0.0.0.0)"})
	port := parser.String("p", "port", &argparse.Options{Required: false, Help: "port to bind to (default 1337)"})
	dictionary := parser.String("d", "dictionary", &argparse.Options{Required: false, Help: "word list path or url (default dictionary.txt)"})
	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}
	defer log.Sync()

	if *configFile != "" {
		CONFIG, err = config.Load(*configFile)
		if err != nil {
			log.Fatal("unable to read config", zap.String("filename", *configFile), zap.Error(err))
		}
	}
	if *host != "" {
		CONFIG.Host = *host
	}
	if *port != "" {
		CONFIG.Port = *port
	}
	if *dictionary != "" {
		CONFIG.Dictionary = *dictionary
	}
	if err := CONFIG.Validate(); err != nil {
		log.Fatal("bad configuration", zap.Error(err))
	}

	GLOBAL_DICTIONARY = live.NewDictionary(CONFIG.Dictionary, wordlist.Load)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = GLOBAL_DICTIONARY.Reload(ctx)
	cancel()
	if err != nil {
		// keep serving; solves come back empty until a reload works
		log.Error("starting without a dictionary", zap.Error(err))
	}

	log.Printf("Good morning. I am listening on %s", CONFIG.Addr())

	srv := &http.Server{
		Handler:      newRouter(),
		Addr:         CONFIG.Addr(),
		WriteTimeout: CONFIG.WriteTimeout,
		ReadTimeout:  CONFIG.ReadTimeout,
	}

	log.Fatal("server failure", zap.Error(srv.ListenAndServe()))
}
