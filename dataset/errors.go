package dataset

import "fmt"

// DataAccessError is returned when a city's backing file cannot be opened,
// read or parsed.
type DataAccessError struct {
	City City
	Path string
	Err  error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("load %s data from %s: %v", e.City, e.Path, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }
