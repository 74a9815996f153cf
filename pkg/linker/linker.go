package linker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/cleanfig/pkg/errors"
	"github.com/arthur-debert/cleanfig/pkg/filesystem"
	"github.com/arthur-debert/cleanfig/pkg/logging"
	"github.com/arthur-debert/cleanfig/pkg/paths"
	"github.com/arthur-debert/cleanfig/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Linker. Nil FS and Links select the OS implementations.
type Options struct {
	FS    types.FS
	Links types.LinkCreator

	// DryRun walks the root and reports planned links without creating them
	DryRun bool
}

// Linker performs one pass over the configuration root.
type Linker struct {
	fs     types.FS
	links  types.LinkCreator
	dryRun bool
	logger zerolog.Logger
}

// New creates a Linker
func New(opts Options) *Linker {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Links == nil {
		opts.Links = filesystem.NewLinkCreator()
	}
	return &Linker{
		fs:     opts.FS,
		links:  opts.Links,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("linker"),
	}
}

// Run links every entry of home/.config/cleanfig. It returns the results
// of the entries handled so far together with the first error encountered.
func (l *Linker) Run(home string) ([]types.LinkResult, error) {
	root := paths.ConfigRoot(home)
	done := logging.LogOperationStart(l.logger, "link")
	defer done()

	entries, err := l.fs.ReadDir(root)
	if err != nil {
		l.logger.Debug().Err(err).Str("root", root).Int("read", len(entries)).Msg("Cannot list configuration root")
		return nil, listError(root, entries, err)
	}

	results := make([]types.LinkResult, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		mapping, ok := Lookup(name)
		if !ok {
			return results, errors.InvalidConfig(name)
		}

		result := types.LinkResult{
			Entry:  name,
			Source: filepath.Join(root, name),
			Kind:   mapping.Kind,
		}
		if mapping.Kind != types.KindIgnore {
			result.Destination = paths.Join(home, mapping.Destination)
		}

		switch mapping.Kind {
		case types.KindFile:
			result.Outcome, err = l.LinkFile(result.Source, result.Destination)
		case types.KindDirectory:
			result.Outcome, err = l.linkDir(result.Source, result.Destination)
		default:
			result.Outcome = types.OutcomeIgnored
		}
		if err != nil {
			return results, err
		}

		l.logger.Debug().
			Str("entry", name).
			Str("kind", string(result.Kind)).
			Str("outcome", string(result.Outcome)).
			Msg("Entry processed")
		if result.Outcome == types.OutcomeCreated {
			l.logger.Info().
				Str("source", result.Source).
				Str("destination", result.Destination).
				Msg("Linked")
		}
		results = append(results, result)
	}

	return results, nil
}

// LinkFile links dest to src. A destination that already is a symlink is
// accepted as linked without checking its target; any other existing node
// is an EXISTING_PATH error.
func (l *Linker) LinkFile(src, dest string) (types.LinkOutcome, error) {
	info, exists, err := l.lstat(dest)
	if err != nil {
		return "", err
	}
	if exists {
		if info.Mode()&fs.ModeSymlink != 0 {
			return types.OutcomeAlreadyLinked, nil
		}
		return "", errors.ExistingPath(dest)
	}

	return l.create(src, dest, l.links.LinkFileAt)
}

// linkDir creates a directory link when nothing is at dest. Whatever is
// already there is left uninspected.
func (l *Linker) linkDir(src, dest string) (types.LinkOutcome, error) {
	_, exists, err := l.lstat(dest)
	if err != nil {
		return "", err
	}
	if exists {
		return types.OutcomeAlreadyLinked, nil
	}

	return l.create(src, dest, l.links.LinkDirAt)
}

func (l *Linker) create(src, dest string, link func(src, dest string) error) (types.LinkOutcome, error) {
	if l.dryRun {
		return types.OutcomePlanned, nil
	}

	if err := l.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", errors.IO(err)
	}
	if err := link(src, dest); err != nil {
		return "", errors.InvalidPrivilege(dest, err)
	}
	return types.OutcomeCreated, nil
}

// lstat reports whether path exists without following a final symlink.
func (l *Linker) lstat(path string) (fs.FileInfo, bool, error) {
	info, err := l.fs.Lstat(path)
	if err == nil {
		return info, true, nil
	}
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	return nil, false, errors.IO(err)
}

// listError classifies a ReadDir failure on the root. A root that could be
// opened but failed partway through the listing is an IO error.
func listError(root string, partial []fs.DirEntry, err error) error {
	if len(partial) > 0 {
		return errors.IO(err)
	}
	return errors.MissingRoot(root, err)
}

// Run links the configuration root of home using the OS filesystem.
func Run(home string) error {
	_, err := New(Options{}).Run(home)
	return err
}
