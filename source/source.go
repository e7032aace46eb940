// Package source turns a command-line argument into an upload body.
//
// A path names a file that is streamed from disk. An empty argument or "-"
// reads standard input into memory and sniffs its content type. Redirect
// builds the small HTML page used by the link shortener.
package source

import (
	"io"
)

// Source identifies where an upload body came from.
type Source interface {
	isSource()
}

// FileSource is a regular file on the local filesystem.
type FileSource struct {
	Path string
	Size int64
}

// StdinSource is the complete contents of standard input.
type StdinSource struct {
	Data []byte
}

// RedirectSource is a generated HTML redirect to Target.
type RedirectSource struct {
	Target string
}

func (FileSource) isSource()     {}
func (StdinSource) isSource()    {}
func (RedirectSource) isSource() {}

// Resolved is a source ready to be written.
//
// Body yields exactly Length bytes. Extension has no leading dot and
// ContentType is a MIME type; either may be empty when unknown.
type Resolved struct {
	Source      Source
	Body        io.ReadSeeker
	Extension   string
	ContentType string
	Length      int64

	closer io.Closer
}

// Close releases the underlying file, if any.
func (r *Resolved) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
