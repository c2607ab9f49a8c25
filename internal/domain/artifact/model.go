package artifact

// FileType classifies a generated artifact for path normalization and display.
type FileType string

const (
	TypeAPI       FileType = "api"
	TypeSchema    FileType = "schema"
	TypeConfig    FileType = "config"
	TypeComponent FileType = "component"
	TypeOther     FileType = "other"
)

// Valid reports whether the file type is a known classification.
func (t FileType) Valid() bool {
	switch t {
	case TypeAPI, TypeSchema, TypeConfig, TypeComponent, TypeOther:
		return true
	}
	return false
}

// GeneratedFile is a single synthesized source artifact.
// Files are never mutated after creation.
type GeneratedFile struct {
	Path    string   `json:"path"`
	Content string   `json:"content"`
	Type    FileType `json:"type"`
}
