package snapshot

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
	"github.com/KirkDiggler/rpg-textquest/internal/pkg/clock"
)

const fileExtension = ".json"

type fileRepository struct {
	root  string
	clock clock.Clock
}

// FileConfig contains configuration for the file snapshot repository
type FileConfig struct {
	// Root is the directory saves are written to. It is created on first save.
	Root  string
	Clock clock.Clock
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", cfg.Root, vb)
	return vb.Build()
}

// NewFile creates a repository that keeps one JSON file per slot under Root
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{
		root:  filepath.Clean(cfg.Root),
		clock: c,
	}, nil
}

func (r *fileRepository) path(slot string) string {
	return filepath.Join(r.root, slot+fileExtension)
}

// Save writes to a temp file in the same directory and renames it over the
// old save, so a crash mid-write never leaves a truncated file.
func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	snap := *input.Snapshot
	snap.SavedAt = r.clock.Now()

	data, err := Encode(&snap)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.root, 0o755); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to create save directory %s", r.root)
	}

	tmp, err := os.CreateTemp(r.root, input.Slot+".*.tmp")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create temp save file")
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write save file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to close save file")
	}
	if err := os.Rename(tmpName, r.path(input.Slot)); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to replace save file")
	}

	slog.DebugContext(ctx, "snapshot saved",
		"backend", "file",
		"path", r.path(input.Slot))

	return &SaveOutput{SavedAt: snap.SavedAt}, nil
}

func (r *fileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(input.Slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, missingError(input.Slot)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read save file").
			WithMeta("slot", input.Slot)
	}

	snap, err := Decode(input.Slot, data)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "snapshot loaded",
		"backend", "file",
		"path", r.path(input.Slot))

	return &LoadOutput{Snapshot: snap}, nil
}
