package storage

import (
	"io"
)

// FileStore abstracts where uploaded media (avatars, house photos,
// contract PDFs) live. The local implementation writes to a directory on
// disk; a cloud backend would satisfy the same interface.
type FileStore interface {
	// Save stores the content under an opaque generated name derived from
	// originalName's extension and returns (storedName, publicURL).
	Save(reader io.Reader, originalName string) (string, string, error)

	// Open returns the stored file for serving.
	Open(storedName string) (io.ReadCloser, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(storedName string) error
}
