package refdata

import (
	"embed"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
)

//go:embed data/*.csv
var embeddedData embed.FS

// DataProvider abstracts access to reference table files. This allows
// layering an external directory over the embedded defaults.
type DataProvider interface {
	// ReadFile reads a table file by name (e.g. "labor_rates.csv").
	ReadFile(name string) ([]byte, error)

	// Source returns a description of where the named file comes from
	// (for logging and debugging).
	Source(name string) string
}

const (
	sourceEmbedded = "embedded"
	sourceExternal = "external"
)

// EmbeddedDataProvider serves the reference tables compiled into the binary.
type EmbeddedDataProvider struct {
	fs     embed.FS
	prefix string
}

// NewEmbeddedDataProvider returns the provider backed by the embedded tables.
func NewEmbeddedDataProvider() *EmbeddedDataProvider {
	return &EmbeddedDataProvider{
		fs:     embeddedData,
		prefix: "data",
	}
}

// ReadFile reads a table file from the embedded filesystem.
func (p *EmbeddedDataProvider) ReadFile(name string) ([]byte, error) {
	return p.fs.ReadFile(p.prefix + "/" + name)
}

// Source returns "embedded" for all files.
func (p *EmbeddedDataProvider) Source(name string) string {
	return sourceEmbedded
}

// LayeredDataProvider overlays an external directory on top of the embedded
// tables. A file present in the external directory completely replaces its
// embedded counterpart; all other files fall through to the embedded set.
type LayeredDataProvider struct {
	embedded    *EmbeddedDataProvider
	externalDir string
	external    map[string]bool
}

// NewLayeredDataProvider validates dir and returns a provider layering it
// over the embedded tables. Fails if dir does not exist, is not a directory,
// or contains path traversal.
func NewLayeredDataProvider(embedded *EmbeddedDataProvider, dir string) (*LayeredDataProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeNotFound,
			"external data directory not found: "+dir, err)
	}
	if !info.IsDir() {
		return nil, qerrors.New(qerrors.ErrCodeInvalidData,
			"external data path is not a directory: "+dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidData,
			"reading external data directory", err)
	}

	external := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.Contains(name, "..") {
			return nil, qerrors.New(qerrors.ErrCodeInvalidData,
				"path traversal detected: "+name)
		}
		if filepath.Ext(name) != ".csv" {
			continue
		}
		external[name] = true
		slog.Debug("discovered external table", "name", name, "dir", dir)
	}

	return &LayeredDataProvider{
		embedded:    embedded,
		externalDir: dir,
		external:    external,
	}, nil
}

// ReadFile reads a table from the external directory when present, else from
// the embedded set.
func (p *LayeredDataProvider) ReadFile(name string) ([]byte, error) {
	if p.external[name] {
		return os.ReadFile(filepath.Join(p.externalDir, name))
	}
	return p.embedded.ReadFile(name)
}

// Source reports whether the named file resolves externally or embedded.
func (p *LayeredDataProvider) Source(name string) string {
	if p.external[name] {
		return sourceExternal
	}
	return sourceEmbedded
}
