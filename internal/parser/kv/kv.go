package kv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNotFlat is returned when the input contains tables, arrays or any
// value that is not a plain string.
var ErrNotFlat = errors.New("input is not a flat list of string pairs")

// Entry is one label/secret pair.
type Entry struct {
	Label  string
	Secret string
}

// List is an ordered sequence of entries. Order is significant and labels
// are not required to be unique.
type List []Entry

// Parser reads ordered key/value text (TOML documents holding only
// top-level string keys).
type Parser struct{}

// NewParser creates a new key/value parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses entries from a string
func (p *Parser) ParseString(content string) (List, error) {
	return p.Parse(strings.NewReader(content))
}

// ParseBytes parses entries from a byte slice
func (p *Parser) ParseBytes(content []byte) (List, error) {
	return p.Parse(bytes.NewReader(content))
}

// Parse parses entries from an io.Reader, keeping the order in which the
// keys appear in the document.
func (p *Parser) Parse(r io.Reader) (List, error) {
	var raw map[string]any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key/value text: %w", err)
	}

	keys := md.Keys()
	list := make(List, 0, len(keys))
	for _, key := range keys {
		if len(key) != 1 {
			return nil, fmt.Errorf("%w: nested key %s", ErrNotFlat, key)
		}
		value, ok := raw[key[0]].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q holds a %s", ErrNotFlat, key[0], md.Type(key...))
		}
		list = append(list, Entry{Label: key[0], Secret: value})
	}
	return list, nil
}

// Encode writes the list as key/value text, one `label = "secret"` line
// per entry, in list order.
func (l List) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	for _, e := range l {
		if err := enc.Encode(map[string]string{e.Label: e.Secret}); err != nil {
			return fmt.Errorf("failed to encode %q: %w", e.Label, err)
		}
	}
	return nil
}

// Marshal returns the Encode output as a string.
func (l List) Marshal() (string, error) {
	var b strings.Builder
	if err := l.Encode(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Labels returns the entry labels in order.
func (l List) Labels() []string {
	labels := make([]string, len(l))
	for i, e := range l {
		labels[i] = e.Label
	}
	return labels
}
