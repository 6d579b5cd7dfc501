package commands

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/temirov/snapshot/internal/types"
)

const (
	errorOpenFileFormat  = "opening %s: %w"
	errorStatFileFormat  = "inspecting %s: %w"
	errorReadFileFormat  = "reading %s: %w"
	errorCloseFileFormat = "closing %s: %w"
)

// CapturedFile is a FileRecord together with the size of the file on disk.
type CapturedFile struct {
	Record    types.FileRecord
	SizeBytes int64
}

// Capture reads the candidate as UTF-8 text. Invalid byte sequences are replaced with U+FFFD.
// The file handle is closed on every path; any failure, including a failed close, is returned
// so the caller can skip the file.
//
// #nosec G304
func Capture(candidate Candidate) (capturedFile CapturedFile, captureError error) {
	fileHandle, openError := os.Open(candidate.AbsolutePath)
	if openError != nil {
		return CapturedFile{}, fmt.Errorf(errorOpenFileFormat, candidate.RelativePath, openError)
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil && captureError == nil {
			capturedFile = CapturedFile{}
			captureError = fmt.Errorf(errorCloseFileFormat, candidate.RelativePath, closeError)
		}
	}()

	fileInfo, statError := fileHandle.Stat()
	if statError != nil {
		return CapturedFile{}, fmt.Errorf(errorStatFileFormat, candidate.RelativePath, statError)
	}

	decodedReader := transform.NewReader(fileHandle, unicode.UTF8.NewDecoder())
	content, readError := io.ReadAll(decodedReader)
	if readError != nil {
		return CapturedFile{}, fmt.Errorf(errorReadFileFormat, candidate.RelativePath, readError)
	}

	return CapturedFile{
		Record: types.FileRecord{
			Path:    candidate.RelativePath,
			Content: string(content),
		},
		SizeBytes: fileInfo.Size(),
	}, nil
}
