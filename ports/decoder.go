package ports

import (
	"io"

	"goroster/domain/table"
)

// TableDecoderPort decodes uploaded bytes into an untrusted raw table. The
// first row of the source becomes the declared header; repairing a displaced
// header is the normalizer's job, not the decoder's. Failures are
// DECODE_ERROR AppErrors, distinct from normalization failures.
type TableDecoderPort interface {
	// Decode reads a table from src; filename picks the format by extension.
	Decode(src io.Reader, filename string) (table.Raw, error)

	// DecodeFile reads a table from a path on disk.
	DecodeFile(path string) (table.Raw, error)
}
