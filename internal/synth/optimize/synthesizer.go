// Package optimize emits a fixed set of database optimization artifacts.
// Unlike the other synthesizers its output does not depend on task text; the
// coordinator decides when to invoke it.
package optimize

import (
	"github.com/seedcode/briefforge/internal/domain/artifact"
)

// Synthesizer emits the optimization helper artifacts.
type Synthesizer struct{}

// NewSynthesizer creates an optimization synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize always returns the same four artifacts.
func (s *Synthesizer) Synthesize() []artifact.GeneratedFile {
	return []artifact.GeneratedFile{
		{Path: "config/database.ts", Content: connectionPoolTemplate, Type: artifact.TypeConfig},
		{Path: "utils/queryHelpers.ts", Content: queryHelpersTemplate, Type: artifact.TypeOther},
		{Path: "utils/cache.ts", Content: cacheTemplate, Type: artifact.TypeOther},
		{Path: "utils/dbMaintenance.ts", Content: maintenanceTemplate, Type: artifact.TypeOther},
	}
}
