package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/mod/semver"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported script version")
	ErrDuplicateName      = errors.New("duplicate container name")
	ErrUnknownContainer   = errors.New("unknown container")
	ErrUnknownKind        = errors.New("unknown container kind")
	ErrUnknownOp          = errors.New("unknown op")
)

const supportedMajor = "v1"

const (
	KindArray  = "array"
	KindLinked = "linked"
	KindStack  = "stack"
)

type Script struct {
	Name       string `json:"name,omitempty"`
	Version    string `json:"version"`
	Containers []Decl `json:"containers"`
	Ops        []Op   `json:"ops"`
}

type Decl struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	// Size is the initial capacity of an array list; zero means the runner default.
	Size int `json:"size,omitempty"`
}

type Op struct {
	Target string `json:"target"`
	Op     string `json:"op"`
	Pos    int    `json:"pos,omitempty"`
	// Stop is the exclusive end of range and sublist.
	Stop   int    `json:"stop,omitempty"`
	Value  int    `json:"value,omitempty"`
	Order  string `json:"order,omitempty"`
}

type Result struct {
	Target string `json:"target"`
	Op     string `json:"op"`
	Value  *int   `json:"value,omitempty"`
	Empty  *bool  `json:"empty,omitempty"`
	Found  *bool  `json:"found,omitempty"`
	Len    int    `json:"len"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Report struct {
	Name    string   `json:"name,omitempty"`
	Results []Result `json:"results"`
	Error   string   `json:"error,omitempty"`
}

func Decode(r io.Reader) (*Script, error) {
	var s Script

	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	return &s, nil
}

// Load decodes the script stored at name. Unnamed scripts take the file's
// base name without extension.
func Load(fsys fs.FS, name string) (*Script, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}

	return s, nil
}

func (s *Script) validateVersion() error {
	if !semver.IsValid(s.Version) || semver.Major(s.Version) != supportedMajor {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, s.Version)
	}

	return nil
}
