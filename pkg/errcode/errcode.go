package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ClientLibDirError
	UnknownDriverError

	// Credential errors
	CredentialsReadError
	CredentialsEmptyError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBQueryError
	DBScanError

	// Manifest errors
	NoAccessionsError
	RowCountMismatchError

	// Output errors
	WriteTSVError
	WriteXLSXError
	WriteDescriptorError
)
