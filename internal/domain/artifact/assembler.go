package artifact

import (
	"fmt"
	"log/slog"
	"path"
	"strings"
)

// Area roots by file type. Any artifact path not already under its expected
// root is rewritten beneath it.
var typeRoots = map[FileType]string{
	TypeAPI:       "backend/src/routes",
	TypeSchema:    "backend/src/models",
	TypeConfig:    "backend/src/config",
	TypeComponent: "frontend/src/components",
	TypeOther:     "backend/src/utils",
}

// Assembler merges per-synthesizer file lists into one artifact set with
// normalized, unique paths.
type Assembler struct {
	logger *slog.Logger
}

// NewAssembler creates an assembler.
func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger}
}

// Assemble normalizes every path and resolves collisions by renaming.
// The input order is preserved; the first file to claim a path keeps it.
func (a *Assembler) Assemble(files []GeneratedFile) []GeneratedFile {
	out := make([]GeneratedFile, 0, len(files))
	claimed := make(map[string]bool, len(files))

	for _, f := range files {
		normalized := NormalizePath(f.Path, f.Type)
		if claimed[normalized] {
			renamed := nextFreePath(normalized, claimed)
			a.logger.Warn("artifact path collision",
				"path", normalized, "renamed", renamed)
			normalized = renamed
		}
		claimed[normalized] = true
		f.Path = normalized
		out = append(out, f)
	}

	return out
}

// NormalizePath rewrites p under the area root for its type unless it is
// already there. Paths are cleaned and made slash-separated.
func NormalizePath(p string, t FileType) string {
	root, ok := typeRoots[t]
	if !ok {
		root = typeRoots[TypeOther]
	}

	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "." || clean == "" {
		clean = "artifact"
	}
	if strings.HasPrefix(clean, root+"/") {
		return clean
	}
	return path.Join(root, path.Base(clean))
}

func nextFreePath(p string, claimed map[string]bool) string {
	ext := path.Ext(p)
	stem := strings.TrimSuffix(p, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if !claimed[candidate] {
			return candidate
		}
	}
}
