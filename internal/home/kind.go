package home

import (
	"os"
	"path/filepath"
)

// MarkerName is the filesystem entry that marks a checkout root.
const MarkerName = ".git"

// Kind classifies a directory by its marker.
type Kind int

const (
	// KindNone means the directory is not a checkout root.
	KindNone Kind = iota
	// KindMain means the marker is a directory holding the full repository.
	KindMain
	// KindSibling means the marker is a pointer file into the main checkout.
	KindSibling
)

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindSibling:
		return "sibling"
	default:
		return "none"
	}
}

// MarshalText renders the kind by name in json and yaml output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Classify inspects dir/.git. Symlinks are followed.
func Classify(dir string) Kind {
	info, err := os.Stat(filepath.Join(dir, MarkerName))
	if err != nil {
		return KindNone
	}
	if info.IsDir() {
		return KindMain
	}
	if info.Mode().IsRegular() {
		return KindSibling
	}
	return KindNone
}
