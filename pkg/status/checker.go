package status

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/cleanfig/pkg/errors"
	"github.com/arthur-debert/cleanfig/pkg/filesystem"
	"github.com/arthur-debert/cleanfig/pkg/linker"
	"github.com/arthur-debert/cleanfig/pkg/logging"
	"github.com/arthur-debert/cleanfig/pkg/paths"
	"github.com/arthur-debert/cleanfig/pkg/types"
	"github.com/rs/zerolog"
)

// State is the observed state of one entry's destination
type State string

const (
	StateMissing  State = "missing"  // Destination absent, a run would link it
	StateLinked   State = "linked"   // File destination is a symlink
	StateConflict State = "conflict" // File destination is occupied by non-link content
	StatePresent  State = "present"  // Directory destination exists and is left alone
	StateIgnored  State = "ignored"  // Entry is on the ignore list
	StateUnknown  State = "unknown"  // Entry name is not in the mapping table
	StateError    State = "error"    // Destination could not be inspected
)

// EntryStatus describes one entry of the configuration root
type EntryStatus struct {
	Entry       string         `json:"entry" yaml:"entry" toml:"entry"`
	Kind        types.LinkKind `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Destination string         `json:"destination,omitempty" yaml:"destination,omitempty" toml:"destination,omitempty"`
	State       State          `json:"state" yaml:"state" toml:"state"`

	// LinkTarget is set when the destination is a symlink
	LinkTarget string `json:"link_target,omitempty" yaml:"link_target,omitempty" toml:"link_target,omitempty"`

	// PointsToSource is informational only: a run accepts any existing link
	PointsToSource bool   `json:"points_to_source" yaml:"points_to_source" toml:"points_to_source"`
	Message        string `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
}

// Report is the status of a whole configuration root
type Report struct {
	Home    string        `json:"home" yaml:"home" toml:"home"`
	Root    string        `json:"root" yaml:"root" toml:"root"`
	Entries []EntryStatus `json:"entries" yaml:"entries" toml:"entries"`
}

// Checker inspects destinations without changing anything
type Checker struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewChecker creates a Checker. A nil fs selects the OS filesystem.
func NewChecker(fsys types.FS) *Checker {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Checker{
		fs:     fsys,
		logger: logging.GetLogger("status"),
	}
}

// Check reports the state of every entry in home's configuration root.
// Per-entry problems are recorded in the report; only an unlistable root
// is returned as an error.
func (c *Checker) Check(home string) (*Report, error) {
	root := paths.ConfigRoot(home)

	entries, err := c.fs.ReadDir(root)
	if err != nil {
		if len(entries) > 0 {
			return nil, errors.IO(err)
		}
		return nil, errors.MissingRoot(root, err)
	}

	report := &Report{Home: home, Root: root, Entries: make([]EntryStatus, 0, len(entries))}
	for _, entry := range entries {
		st := c.checkEntry(home, root, entry.Name())
		c.logger.Debug().
			Str("entry", st.Entry).
			Str("state", string(st.State)).
			Msg("Entry checked")
		report.Entries = append(report.Entries, st)
	}

	return report, nil
}

func (c *Checker) checkEntry(home, root, name string) EntryStatus {
	st := EntryStatus{Entry: name}

	mapping, ok := linker.Lookup(name)
	if !ok {
		st.State = StateUnknown
		st.Message = "not a known configuration entry"
		return st
	}
	st.Kind = mapping.Kind
	if mapping.Kind == types.KindIgnore {
		st.State = StateIgnored
		return st
	}

	source := filepath.Join(root, name)
	st.Destination = paths.Join(home, mapping.Destination)

	info, err := c.fs.Lstat(st.Destination)
	if err != nil {
		if os.IsNotExist(err) {
			st.State = StateMissing
			return st
		}
		st.State = StateError
		st.Message = fmt.Sprintf("failed to inspect destination: %v", err)
		return st
	}

	isLink := info.Mode()&fs.ModeSymlink != 0
	if isLink {
		target, err := c.fs.Readlink(st.Destination)
		if err != nil {
			st.Message = fmt.Sprintf("failed to read link: %v", err)
		} else {
			st.LinkTarget = target
			st.PointsToSource = filepath.Clean(target) == filepath.Clean(source)
		}
	}

	switch {
	case mapping.Kind == types.KindDirectory:
		st.State = StatePresent
	case isLink:
		st.State = StateLinked
		if st.LinkTarget != "" && !st.PointsToSource {
			st.Message = "link points elsewhere"
		}
	default:
		st.State = StateConflict
		st.Message = "destination exists and is not a link"
	}
	return st
}
