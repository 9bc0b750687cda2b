package ports

import (
	"rwescore/domain/tabular"
)

// DatasetReader loads an external file into the tabular dataset model.
// Loading lives outside the scoring core; readers are the only components
// in the repository that return errors for malformed input.
type DatasetReader interface {
	Read(path string) (tabular.Dataset, error)
}
