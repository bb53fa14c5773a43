package internal

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a data directory holds no JSON files
var ErrNoData = errors.New("no data files found")

// DataDirError represents a missing or unusable data directory
type DataDirError struct {
	Path string
	Err  error
}

func (e *DataDirError) Error() string {
	return fmt.Sprintf("data directory not found at %s: %v", e.Path, e.Err)
}

func (e *DataDirError) Unwrap() error {
	return e.Err
}

// StorageError represents errors accessing data files
type StorageError struct {
	Path string
	Op   string // "list", "read", "write"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing data
type ParseError struct {
	Source string // "json", "config"
	Key    string // file path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
