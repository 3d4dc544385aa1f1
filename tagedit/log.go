package tagedit

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/tagline/content"
)

func (m *Model) logApplied(ch content.Change) {
	log := m.cfg.Logger
	if ce := log.Check(zap.DebugLevel, "command applied"); ce != nil {
		fields := []zap.Field{
			zap.Stringer("command", ch.Kind),
			zap.Uint64("version", ch.VersionAfter),
			zap.Int("palette", len(ch.PaletteAfter)),
		}
		for _, seg := range ch.Added {
			if seg.IsTag() {
				fields = append(fields, zap.String("inserted", seg.Value), zap.String("chip", string(seg.Chip)))
			}
		}
		for _, seg := range ch.Removed {
			fields = append(fields, zap.String("removed", seg.Value), zap.String("chip", string(seg.Chip)))
		}
		ce.Write(fields...)
	}
}

func (m *Model) logRejected(cmd content.Command) {
	switch c := cmd.(type) {
	case content.InsertTag:
		m.cfg.Logger.Debug("insert ignored: tag not in palette", zap.String("tag", c.Name))
	case content.RemoveTag:
		m.cfg.Logger.Debug("remove ignored: chip not found", zap.String("chip", string(c.Chip)))
	case content.RemoveTagNamed:
		m.cfg.Logger.Debug("remove ignored: tag not inserted", zap.String("tag", c.Name))
	}
}
