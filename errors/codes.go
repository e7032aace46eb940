// Package errors provides the error codes and structured errors shared by the shorty tools.
// It extends Go's standard error handling with a stable code per failure stage and a context
// map that names the file, path or object involved.
package errors

// ErrorCode represents a specific failure stage of an upload run.
// Error codes are string-based for debuggability and readable log output.
type ErrorCode string

const (
	// Configuration errors.

	// CodeInvalidConfig indicates the configuration could not be located, read or decoded,
	// or is missing a required field.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// TLS material errors.

	// CodeCertificateFormat indicates the client certificate/key pair could not be parsed
	// into a TLS identity.
	CodeCertificateFormat ErrorCode = "CERTIFICATE_FORMAT"

	// CodeTLSConfiguration indicates the TLS stack rejected the built client configuration.
	CodeTLSConfiguration ErrorCode = "TLS_CONFIGURATION"

	// I/O errors.

	// CodeIO indicates a file or standard input could not be opened or read.
	CodeIO ErrorCode = "IO_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Storage errors.

	// CodeStorage indicates the object store rejected or failed the write.
	CodeStorage ErrorCode = "STORAGE_ERROR"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
