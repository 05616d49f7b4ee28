//go:build !unix

package native

import "os"

// Without anonymous mappings the chunks live on the Go heap. The arena keeps
// them referenced until Close, so their addresses stay valid.
func mapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmap([]byte) error {
	return nil
}

func pageSize() int {
	return os.Getpagesize()
}
