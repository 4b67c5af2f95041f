package content

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	codeFrontmatterDecode   = "FRONTMATTER_DECODE_FAILED"
	codeResourceLinkInvalid = "RESOURCE_LINK_INVALID"
	codeSourceReadFailed    = "SOURCE_READ_FAILED"
)

// ErrUnsupportedFileType indicates a source file whose extension is not handled.
var ErrUnsupportedFileType = errors.New("content: unsupported file type")

// ErrResourceLink indicates rendered HTML carrying a relative or invalid resource reference.
var ErrResourceLink = errors.New("content: relative or invalid resource link")

func unsupportedFileTypeError(path string) error {
	return goerrors.Wrap(ErrUnsupportedFileType, goerrors.CategoryValidation,
		fmt.Sprintf("unsupported file type: %s", path)).
		WithTextCode(codeUnsupportedFileType)
}

func frontmatterDecodeError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation,
		fmt.Sprintf("decode frontmatter in %s", path)).
		WithTextCode(codeFrontmatterDecode)
}

func resourceLinkError(path, value string) error {
	return goerrors.Wrap(ErrResourceLink, goerrors.CategoryValidation,
		fmt.Sprintf("file %q: relative or invalid resource link %q; resource links (src/href) must be absolute URLs", path, value)).
		WithTextCode(codeResourceLinkInvalid)
}

func sourceReadError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryCommand,
		fmt.Sprintf("read source file %s", path)).
		WithTextCode(codeSourceReadFailed)
}
