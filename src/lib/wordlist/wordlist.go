// Package wordlist fetches dictionary text from wherever the embedding
// program keeps it and hands it to the boggle index.
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/log"
)

// IsURL reports whether location names an http(s) resource rather than a file.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns the raw word list at location, a file path or an http(s) URL.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !IsURL(location) {
		return os.Open(location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Load opens location and builds a ready dictionary from it. Any failure
// comes back as a *boggle.DictionaryLoadError naming the source.
func Load(ctx context.Context, location string) (*boggle.Dictionary, error) {
	start := time.Now()
	r, err := Open(ctx, location)
	if err != nil {
		log.Error("unable to open dictionary", zap.String("source", location), zap.Error(err))
		return nil, &boggle.DictionaryLoadError{Source: location, Err: err}
	}
	defer r.Close()

	d, err := boggle.LoadDictionary(r)
	if err != nil {
		log.Error("unable to read dictionary", zap.String("source", location), zap.Error(err))
		var le *boggle.DictionaryLoadError
		if errors.As(err, &le) {
			le.Source = location
		}
		return nil, err
	}
	log.Info("dictionary loaded",
		zap.String("source", location),
		zap.Int("words", d.Len()),
		zap.Duration("took", time.Since(start)))
	return d, nil
}
