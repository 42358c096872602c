package boggleapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/log"
)

type SolveRequest struct {
	Board []string `json:"board"`
}

// WordList is a scored, ordered list of words.
type WordList struct {
	Words      []boggle.Result `json:"words"`
	Count      int             `json:"count"`
	TotalScore int             `json:"total_score"`
}

func NewWordList(results []boggle.Result) WordList {
	return WordList{
		Words:      results,
		Count:      len(results),
		TotalScore: boggle.TotalScore(results),
	}
}

type CheckRequest struct {
	Board []string `json:"board"`
	Word  string   `json:"word"`
}

type CheckResponse struct {
	Word  string        `json:"word"`
	Valid bool          `json:"valid"`
	Score int           `json:"score"`
	Path  []boggle.Cell `json:"path,omitempty"`
}

// MissedRequest carries the words a player found on Board.
type MissedRequest struct {
	Board []string `json:"board"`
	Found []string `json:"found"`
}

type BoardResponse struct {
	ID    string   `json:"id"`
	Size  int      `json:"size"`
	Board []string `json:"board"`
}

type Statistics struct {
	Ready  bool   `json:"ready"`
	Words  int    `json:"words"`
	Source string `json:"source"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	http_put  = "PUT"
	http_post = "POST"
	http_get  = "GET"
)

func httpMethod(method, addr string, text []byte) (*http.Response, error) {
	log.Debug("calling solver", zap.String("method", method), zap.String("endpoint", addr))
	buf := bytes.NewBuffer(text)
	client := &http.Client{}
	req, err := http.NewRequest(method, addr, buf)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}
	if len(text) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}

	return resp, nil
}

// call sends in (when not nil) as JSON and decodes a 200 reply into out.
func call(method, addr string, in, out any) error {
	var text []byte
	if in != nil {
		var err error
		text, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}
	resp, err := httpMethod(method, addr, text)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusServiceUnavailable, http.StatusInternalServerError:
		e := &ErrorResponse{}
		if err := decoder.Decode(e); err != nil || e.Error == "" {
			return fmt.Errorf("bad error code: %d", resp.StatusCode)
		}
		return fmt.Errorf("%d: %s", resp.StatusCode, e.Error)
	default:
		return fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := decoder.Decode(out); err != nil {
		log.Warn("decoding error", zap.Error(err), zap.String("address", addr))
		return err
	}
	return nil
}

func Solve(board []string, addr string) (*WordList, error) {
	out := &WordList{}
	if err := call(http_post, fmt.Sprintf("%v/api/solve", addr), &SolveRequest{Board: board}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func Check(board []string, word, addr string) (*CheckResponse, error) {
	out := &CheckResponse{}
	if err := call(http_post, fmt.Sprintf("%v/api/check", addr), &CheckRequest{Board: board, Word: word}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func Missed(board, found []string, addr string) (*WordList, error) {
	out := &WordList{}
	if err := call(http_post, fmt.Sprintf("%v/api/missed", addr), &MissedRequest{Board: board, Found: found}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RollBoard asks for a fresh board, or replays id when it is not empty.
// A size below 1 leaves the choice to the server.
func RollBoard(size int, id, addr string) (*BoardResponse, error) {
	formulatedAddress := fmt.Sprintf("%v/api/board", addr)
	if id != "" {
		formulatedAddress += "/" + url.PathEscape(id)
	}
	if size > 0 {
		formulatedAddress += "?size=" + strconv.Itoa(size)
	}
	out := &BoardResponse{}
	if err := call(http_get, formulatedAddress, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func GetStatistics(addr string) (*Statistics, error) {
	out := &Statistics{}
	if err := call(http_get, fmt.Sprintf("%v/api/statistics", addr), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReloadDictionary makes the server re-read its word list.
func ReloadDictionary(addr string) (*Statistics, error) {
	out := &Statistics{}
	if err := call(http_put, fmt.Sprintf("%v/api/dictionary", addr), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
