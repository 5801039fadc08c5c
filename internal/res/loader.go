package res

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the name that selects the loader's standard input
const Stdin = "-"

// Resource represents a loaded input document
type Resource struct {
	Name string
	Data []byte
}

// Loader reads input documents from files, standard input or data URLs
type Loader struct {
	// Stdin is read when the name is "-".
	Stdin io.Reader

	searchPaths []string
}

// NewLoader creates a new loader reading "-" from os.Stdin
func NewLoader() *Loader {
	return &Loader{
		Stdin:       os.Stdin,
		searchPaths: []string{},
	}
}

// AddSearchPath adds a directory to search for relative names that do not
// exist in the working directory
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load reads the named input
func (l *Loader) Load(name string) (*Resource, error) {
	switch {
	case name == Stdin:
		return l.loadStdin()
	case strings.HasPrefix(name, "data:"):
		return parseDataURL(name)
	}
	return l.loadLocal(name)
}

func (l *Loader) loadStdin() (*Resource, error) {
	if l.Stdin == nil {
		return nil, errors.New("no standard input configured")
	}
	data, err := io.ReadAll(l.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	return &Resource{Name: Stdin, Data: data}, nil
}

// parseDataURL parses a data URL (RFC 2397).
// Examples:
//
//	data:text/plain;base64,<base64>
//	data:,alice%20%3D%20%22s3cr3t%22
func parseDataURL(u string) (*Resource, error) {
	s := strings.TrimPrefix(u, "data:")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data URL")
	}
	meta := parts[0]
	dataPart := parts[1]

	isBase64 := false
	for _, c := range strings.Split(meta, ";") {
		if strings.EqualFold(strings.TrimSpace(c), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		d, err := base64.StdEncoding.DecodeString(dataPart)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = d
	} else {
		d, err := url.PathUnescape(dataPart)
		if err != nil {
			return nil, fmt.Errorf("invalid data URL: %w", err)
		}
		data = []byte(d)
	}

	return &Resource{Name: "data URL", Data: data}, nil
}

// loadLocal loads a resource from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !filepath.IsAbs(path) {
			return l.loadFromSearchPaths(path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &Resource{Name: path, Data: data}, nil
}

// loadFromSearchPaths tries to load a resource from the search paths
func (l *Loader) loadFromSearchPaths(name string) (*Resource, error) {
	for _, searchPath := range l.searchPaths {
		path := filepath.Join(searchPath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return &Resource{Name: path, Data: data}, nil
	}
	return nil, fmt.Errorf("failed to read %s: %w", name, os.ErrNotExist)
}

// GetReader returns a reader for a resource
func (r *Resource) GetReader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// GetString returns the resource data as a string
func (r *Resource) GetString() string {
	return string(r.Data)
}
