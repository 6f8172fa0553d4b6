// Package assets resolves logical sound names to playable files. A catalog
// scans one directory, probes every candidate with pure-Go decoders and
// keeps only the files the renderer will be able to open, so play requests
// can be rejected before any graph mutation.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Info describes a probed audio file.
type Info struct {
	Format     string // "wav", "mp3" or "ogg"
	SampleRate int
	Channels   int
	Duration   time.Duration
}

type entry struct {
	path string
	info Info
}

// Catalog maps logical sound names (file base names without extension,
// lower-cased) to probed audio files.
type Catalog struct {
	dir     string
	entries map[string]entry
}

// Scan builds a catalog from the audio files directly inside dir. Files
// that fail probing are skipped; probe errors are reported through onSkip
// when non-nil. An empty directory yields an empty, usable catalog.
func Scan(dir string, onSkip func(path string, err error)) (*Catalog, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan assets: %w", err)
	}

	c := &Catalog{dir: dir, entries: make(map[string]entry)}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if _, ok := probers[ext]; !ok {
			continue
		}

		path := filepath.Join(dir, de.Name())
		info, err := Probe(path)
		if err != nil {
			if onSkip != nil {
				onSkip(path, err)
			}
			continue
		}

		name := strings.ToLower(strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())))
		c.entries[name] = entry{path: path, info: info}
	}
	return c, nil
}

// Resolve returns the file path for a logical sound name. Unknown names
// wrap ErrAssetUnavailable.
func (c *Catalog) Resolve(name string) (string, error) {
	e, ok := c.entries[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q not in %s", ErrAssetUnavailable, name, c.dir)
	}
	return e.path, nil
}

// Lookup returns the probed info for a logical sound name.
func (c *Catalog) Lookup(name string) (Info, error) {
	e, ok := c.entries[strings.ToLower(name)]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q not in %s", ErrAssetUnavailable, name, c.dir)
	}
	return e.info, nil
}

// Names returns the catalog's sound names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of usable sounds in the catalog.
func (c *Catalog) Len() int { return len(c.entries) }

// Probe opens the file at path and validates it with the decoder matching
// its extension, returning basic stream parameters.
func Probe(path string) (Info, error) {
	prober, ok := probers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Info{}, fmt.Errorf("%w: unsupported extension %q", ErrAssetUnavailable, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	defer f.Close()

	info, err := prober(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrAssetUnavailable, path, err)
	}
	return info, nil
}
