package filesystem

import (
	"github.com/arthur-debert/cleanfig/pkg/logging"
	"github.com/arthur-debert/cleanfig/pkg/types"
	"github.com/rs/zerolog"
)

// osLinker implements types.LinkCreator with the native link primitives of
// the running platform.
type osLinker struct {
	logger zerolog.Logger
}

// NewLinkCreator returns the LinkCreator for the running platform.
func NewLinkCreator() types.LinkCreator {
	return &osLinker{logger: logging.GetLogger("filesystem")}
}

func (l *osLinker) LinkFileAt(src, dest string) error {
	l.logger.Trace().
		Str("src", src).
		Str("dest", dest).
		Msg("Creating file link")
	return symlinkFile(src, dest)
}

func (l *osLinker) LinkDirAt(src, dest string) error {
	l.logger.Trace().
		Str("src", src).
		Str("dest", dest).
		Msg("Creating directory link")
	return symlinkDir(src, dest)
}
