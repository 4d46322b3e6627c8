package catalog

import "errors"

var ErrNotFound = errors.New("sightseeing not found")
