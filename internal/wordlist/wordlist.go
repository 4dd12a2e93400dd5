// Package wordlist loads curated vocabulary lists.
package wordlist

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Required CSV columns.
const (
	ColWord          = "WORD"
	ColPronunciation = "US PRONUNCIATION"
	ColTranslation   = "TRANSLATE"
)

// EmbeddedName labels the built-in list in errors and logs.
const EmbeddedName = "embedded:ielts_words.csv"

//go:embed data/ielts_words.csv
var embeddedWords []byte

// ErrMissingColumn is wrapped by LoadError when the header lacks a column.
var ErrMissingColumn = errors.New("missing column")

// ErrEmpty is wrapped by LoadError when no usable rows were found.
var ErrEmpty = errors.New("word list is empty")

// LoadError reports a vocabulary file that could not be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load vocabulary %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Word is one curated entry.
type Word struct {
	Word          string
	Pronunciation string
	Translation   string
}

// LoadCurated reads a curated CSV list from path.
func LoadCurated(path string) ([]Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return parse(path, file)
}

// LoadEmbedded parses the list bundled with the binary.
func LoadEmbedded() ([]Word, error) {
	return parse(EmbeddedName, bytes.NewReader(embeddedWords))
}

func parse(path string, r io.Reader) ([]Word, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: path, Err: ErrEmpty}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	cols := make([]int, 0, 3)
	for _, name := range []string{ColWord, ColPronunciation, ColTranslation} {
		i, ok := index[name]
		if !ok {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w %q", ErrMissingColumn, name)}
		}
		cols = append(cols, i)
	}

	keep := FilterTypeable()
	var words []Word
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		for _, i := range cols {
			if i >= len(record) {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: expected %d columns, got %d", line, len(header), len(record))}
			}
		}
		w := Word{
			Word:          record[cols[0]],
			Pronunciation: record[cols[1]],
			Translation:   record[cols[2]],
		}
		if !keep(w.Word) {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmpty}
	}
	return words, nil
}
