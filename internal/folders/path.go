package folders

import (
	"fmt"
	"strings"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"golang.org/x/text/unicode/norm"
)

const separator = "/"

// FolderPath is an absolute, slash-delimited folder path in canonical
// form: NFC-normalized, no empty, "." or ".." segments, and no trailing
// slash except for the drive root "/". The zero value is not a valid
// path and is used by Criteria to mean "any path".
type FolderPath struct {
	value string
}

// RootPath is the drive root.
var RootPath = FolderPath{value: separator}

// NewFolderPath validates raw and returns its canonical form. Repeated
// and trailing slashes are collapsed.
func NewFolderPath(raw string) (FolderPath, error) {
	raw = norm.NFC.String(raw)

	if !strings.HasPrefix(raw, separator) {
		return FolderPath{}, fmt.Errorf("%w: %q is not absolute", syncerr.ErrInvalidPath, raw)
	}

	var segments []string

	for _, seg := range strings.Split(raw, separator) {
		switch seg {
		case "":
			continue
		case ".", "..":
			return FolderPath{}, fmt.Errorf("%w: %q contains a relative segment", syncerr.ErrInvalidPath, raw)
		}

		segments = append(segments, seg)
	}

	return FolderPath{value: separator + strings.Join(segments, separator)}, nil
}

// MustFolderPath is NewFolderPath for literals known to be valid.
func MustFolderPath(raw string) FolderPath {
	p, err := NewFolderPath(raw)
	if err != nil {
		panic(err)
	}

	return p
}

// FolderPathFromParts builds dirname/name. The name must be a single
// non-empty segment.
func FolderPathFromParts(dirname, name string) (FolderPath, error) {
	dir, err := NewFolderPath(dirname)
	if err != nil {
		return FolderPath{}, err
	}

	return dir.Join(name)
}

// Join appends a single name segment.
func (p FolderPath) Join(name string) (FolderPath, error) {
	if name == "" || strings.Contains(name, separator) {
		return FolderPath{}, fmt.Errorf("%w: bad folder name %q", syncerr.ErrInvalidPath, name)
	}

	return NewFolderPath(p.value + separator + name)
}

// Dirname returns the parent path. The root is its own parent.
func (p FolderPath) Dirname() FolderPath {
	idx := strings.LastIndex(p.value, separator)
	if idx <= 0 {
		return RootPath
	}

	return FolderPath{value: p.value[:idx]}
}

// Name returns the last segment, or "" for the root.
func (p FolderPath) Name() string {
	return p.value[strings.LastIndex(p.value, separator)+1:]
}

func (p FolderPath) IsRoot() bool { return p.value == separator }

func (p FolderPath) IsZero() bool { return p.value == "" }

func (p FolderPath) Equal(other FolderPath) bool { return p.value == other.value }

// Contains reports whether other is p or lies somewhere beneath it.
func (p FolderPath) Contains(other FolderPath) bool {
	if p.IsRoot() || p.value == other.value {
		return true
	}

	return strings.HasPrefix(other.value, p.value+separator)
}

func (p FolderPath) String() string { return p.value }

func (p FolderPath) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

func (p *FolderPath) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = FolderPath{}
		return nil
	}

	parsed, err := NewFolderPath(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
