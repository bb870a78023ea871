package scope

import "os"

// NewStoreWithWriterForTest creates a Store that writes scope files through write.
func NewStoreWithWriterForTest(write func(name string, data []byte, perm os.FileMode) error) *Store {
	return &Store{writeFile: write}
}
