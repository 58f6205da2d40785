package sorter

import "errors"

// ErrUnknownSorter is returned by Lookup when asked for a Name with no
// registered Func.
var ErrUnknownSorter = errors.New("sorter: unknown sorter name")
