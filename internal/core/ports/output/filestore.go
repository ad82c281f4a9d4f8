package ports

import "io"

// ArtifactFileStore keeps generated artifact files under a stable download
// root. Names are opaque labels: implementations reject or strip anything
// that would escape the root.
type ArtifactFileStore interface {
	// Write stores data under name and returns the relative download link.
	Write(name string, data []byte) (string, error)
	// Remove deletes the file behind a download link. A missing file is not
	// an error.
	Remove(link string) error
	// Open returns the file behind a download link for serving.
	Open(link string) (io.ReadCloser, error)
}
