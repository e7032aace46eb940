package source

import (
	"bytes"
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/w4/shorty/errors"
	"github.com/w4/shorty/fs"
)

// StdinArg is the argument that selects standard input explicitly.
const StdinArg = "-"

// Resolve opens the upload named by arg. An empty arg or StdinArg reads
// stdin to EOF; anything else is a path opened through fsys.
//
// The returned Resolved must be closed by the caller.
func Resolve(ctx context.Context, fsys fs.ReadFS, stdin io.Reader, arg string) (*Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if arg == "" || arg == StdinArg {
		return resolveStdin(stdin)
	}
	return resolveFile(fsys, arg)
}

func resolveFile(fsys fs.ReadFS, path string) (*Resolved, error) {
	errCtx := map[string]interface{}{"path": path}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to open upload source", errCtx)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to stat upload source", errCtx)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, errors.WrapWithContext(
			errors.New(errors.CodeIO, "is a directory"), errors.CodeIO, "invalid upload source", errCtx)
	}

	ext := filepath.Ext(path)
	var contentType string
	if ext != "" {
		contentType = mime.TypeByExtension(ext)
	}

	size := info.Size()
	return &Resolved{
		Source:      FileSource{Path: path, Size: size},
		Body:        io.NewSectionReader(f, 0, size),
		Extension:   strings.TrimPrefix(ext, "."),
		ContentType: contentType,
		Length:      size,
		closer:      f,
	}, nil
}

func resolveStdin(stdin io.Reader) (*Resolved, error) {
	if stdin == nil {
		return nil, errors.New(errors.CodeInvalidInput, "no stdin available")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "failed to read stdin")
	}

	ext, contentType := Sniff(data)
	return &Resolved{
		Source:      StdinSource{Data: data},
		Body:        bytes.NewReader(data),
		Extension:   ext,
		ContentType: contentType,
		Length:      int64(len(data)),
	}, nil
}

// Sniff detects the type of data from its leading bytes. Data that matches
// no known signature yields empty strings. That includes empty data and
// plain text, which is recognised only by the absence of binary bytes.
func Sniff(data []byte) (ext, contentType string) {
	if len(data) == 0 {
		return "", ""
	}

	m := mimetype.Detect(data)
	if m.Parent() == nil || m.Is("text/plain") {
		return "", ""
	}
	return strings.TrimPrefix(m.Extension(), "."), m.String()
}
