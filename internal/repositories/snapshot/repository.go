// Package snapshot provides persistence for saved games
package snapshot

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/KirkDiggler/rpg-textquest/internal/repositories/snapshot Repository

import (
	"context"
	"regexp"
	"time"

	"github.com/KirkDiggler/rpg-textquest/internal/errors"
)

// Repository defines the interface for saved game persistence
type Repository interface {
	// Save writes a snapshot to a slot, replacing whatever was there
	// Returns errors.InvalidArgument for a nil snapshot or a bad slot name
	// Returns errors.Unavailable when the destination cannot be written
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the snapshot stored in a slot
	// Returns errors.NotFound (ReasonMissing) when the slot is empty
	// Returns errors.DataLoss (ReasonCorrupt) when the data cannot be parsed
	// Returns errors.InvalidArgument (ReasonInvalid) when it parses but is inconsistent
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Slot     string
	Snapshot *Snapshot
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	SavedAt time.Time
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	Slot string
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Snapshot *Snapshot
}

// Reason classifies why a load failed
type Reason string

// Load failure reasons
const (
	ReasonNone    Reason = ""
	ReasonMissing Reason = "missing"
	ReasonCorrupt Reason = "corrupt"
	ReasonInvalid Reason = "invalid"
)

// MetaReason is the error meta key carrying the Reason
const MetaReason = "load_failure"

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return errors.InvalidArgumentf("invalid save slot %q", slot).WithMeta("slot", slot)
	}
	return nil
}

// FailureReason extracts the load failure reason from an error. Errors that did
// not come from a load report ReasonNone.
func FailureReason(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	if reason, ok := errors.GetMeta(err)[MetaReason].(Reason); ok {
		return reason
	}
	return ReasonNone
}

func missingError(slot string) error {
	return errors.NotFoundf("no saved game in slot %s", slot).
		WithMeta("slot", slot).
		WithMeta(MetaReason, ReasonMissing)
}

func corruptError(slot string, cause error) error {
	return errors.WrapWithCodef(cause, errors.CodeDataLoss, "saved game in slot %s is unreadable", slot).
		WithMeta("slot", slot).
		WithMeta(MetaReason, ReasonCorrupt)
}

// InvalidErrorf reports a snapshot that parsed but does not describe a
// consistent game
func InvalidErrorf(format string, args ...interface{}) *errors.Error {
	return errors.InvalidArgumentf(format, args...).WithMeta(MetaReason, ReasonInvalid)
}
