package seal

import "errors"

var (
	// ErrNoMatch reports that every catalog entry was removed by a hard
	// filter. Recommend signals this through its ok result; the error exists
	// for callers that need to surface the condition as a failure.
	ErrNoMatch = errors.New("seal: no catalog entry satisfies the hard filters")

	// ErrInvalidInput wraps degenerate geometry and record invariant failures.
	ErrInvalidInput = errors.New("seal: invalid input")

	// ErrUnsupported is returned by Import when no Importer is configured.
	ErrUnsupported = errors.New("seal: catalog import not supported")

	// ErrDuplicatePartNumber is returned by AddSeal when the selector was
	// built with WithUniquePartNumbers and the part number already exists.
	ErrDuplicatePartNumber = errors.New("seal: duplicate part number")
)
