package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Dataset keeps the records of each data file keyed by file stem
type Dataset struct {
	Names []string
	Files map[string][]*Item
}

// Get returns the records loaded from stem, or an empty slice
func (d *Dataset) Get(stem string) []*Item {
	if d == nil || d.Files[stem] == nil {
		return []*Item{}
	}
	return d.Files[stem]
}

// Len returns the number of loaded files
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Names)
}

// ListDataFiles returns the paths of all .json files in dir, sorted by name
func ListDataFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &DataDirError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &DataDirError{Path: dir, Err: fmt.Errorf("not a directory")}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &StorageError{Path: dir, Op: "list", Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// LoadFile parses one data file as an array of records
func LoadFile(path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	var items []*Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &ParseError{Source: "json", Key: path, Err: err}
	}

	// A literal null element decodes to nil
	kept := items[:0]
	for _, item := range items {
		if item != nil {
			kept = append(kept, item)
		}
	}

	LogDebug("Loaded %d record(s) from %s", len(kept), path)
	return kept, nil
}

// LoadItems loads every data file in dir into one collection, tagging each
// record with the stem of its file
func LoadItems(dir string) ([]*Item, error) {
	files, err := ListDataFiles(dir)
	if err != nil {
		return nil, err
	}

	all := make([]*Item, 0)
	for _, path := range files {
		items, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		stem := FileStem(path)
		for _, item := range items {
			item.Source = stem
		}
		all = append(all, items...)
	}

	return all, nil
}

// LoadDataset loads every data file in dir keyed by file stem. Records are
// left untouched.
func LoadDataset(dir string) (*Dataset, error) {
	files, err := ListDataFiles(dir)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Files: make(map[string][]*Item, len(files))}
	for _, path := range files {
		items, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		stem := FileStem(path)
		ds.Names = append(ds.Names, stem)
		ds.Files[stem] = items
	}

	return ds, nil
}

// FileStem returns the base name of path without its extension
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
