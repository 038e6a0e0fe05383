package features

import "fmt"

// NotFoundError indicates the features file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("features file not found: %s", e.Path)
}

// EmptyDataError indicates the features file contains no song rows.
type EmptyDataError struct {
	Path string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("features file is empty: %s", e.Path)
}

// SchemaError indicates a mandatory column is missing from the header.
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("features file %s is missing required column %q", e.Path, e.Column)
}
