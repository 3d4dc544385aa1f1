package tagedit

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/tagline/content"
)

// DefaultTags is used when Config.Tags is empty.
var DefaultTags = []string{"React", "Next.js", "Tailwind", "JavaScript", "CSS"}

// Config configures the Model.
type Config struct {
	// Tags seeds the palette, in display order.
	Tags []string

	// Return decides where removed tags re-enter the palette.
	Return content.ReturnPolicy

	// NewChipID overrides chip identifier generation (default: UUIDs).
	NewChipID func() content.ChipID

	// Placeholder is shown in an empty surface while it is not focused.
	Placeholder string

	Style  Style
	KeyMap KeyMap

	// MutationMode controls whether commands are applied locally, emitted to
	// OnCommand, or both.
	MutationMode MutationMode
	OnCommand    func(CommandBatch) CommandDecision

	// OnChange is called after every effective command.
	OnChange func(ChangeEvent)

	// Logger receives debug records for applied and rejected commands.
	Logger *zap.Logger
}

func (cfg Config) normalized() Config {
	if len(cfg.Tags) == 0 {
		cfg.Tags = append([]string(nil), DefaultTags...)
	}
	if cfg.Style.isZero() {
		cfg.Style = DefaultStyle()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	cfg.MutationMode = normalizeMutationMode(cfg.MutationMode)
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
