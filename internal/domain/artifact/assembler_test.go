package artifact_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedcode/briefforge/internal/domain/artifact"
)

func newAssembler() *artifact.Assembler {
	return artifact.NewAssembler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		path string
		typ  artifact.FileType
		want string
	}{
		{"services/taskLifecycleService.ts", artifact.TypeAPI, "backend/src/routes/taskLifecycleService.ts"},
		{"models/schema.sql", artifact.TypeSchema, "backend/src/models/schema.sql"},
		{"backend/src/models/schema.sql", artifact.TypeSchema, "backend/src/models/schema.sql"},
		{"components/LoginForm.tsx", artifact.TypeComponent, "frontend/src/components/LoginForm.tsx"},
		{"config/database.ts", artifact.TypeConfig, "backend/src/config/database.ts"},
		{"utils\\cache.ts", artifact.TypeOther, "backend/src/utils/cache.ts"},
		{"", artifact.TypeOther, "backend/src/utils/artifact"},
		{"../../etc/passwd", artifact.TypeOther, "backend/src/utils/passwd"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, artifact.NormalizePath(tc.path, tc.typ), "path %q", tc.path)
	}
}

func TestAssemble_RenamesCollisions(t *testing.T) {
	a := newAssembler()

	files := a.Assemble([]artifact.GeneratedFile{
		{Path: "models/schema.sql", Content: "-- one", Type: artifact.TypeSchema},
		{Path: "models/schema.sql", Content: "-- two", Type: artifact.TypeSchema},
		{Path: "models/schema.sql", Content: "-- three", Type: artifact.TypeSchema},
	})

	require.Len(t, files, 3)
	require.Equal(t, "backend/src/models/schema.sql", files[0].Path)
	require.Equal(t, "backend/src/models/schema_2.sql", files[1].Path)
	require.Equal(t, "backend/src/models/schema_3.sql", files[2].Path)
	require.Equal(t, "-- one", files[0].Content)
	require.Equal(t, "-- three", files[2].Content)
}

func TestAssemble_PreservesOrderAndUniqueness(t *testing.T) {
	a := newAssembler()

	files := a.Assemble([]artifact.GeneratedFile{
		{Path: "jobs/scheduler.ts", Type: artifact.TypeAPI},
		{Path: "components/TaskList.tsx", Type: artifact.TypeComponent},
		{Path: "jobs/scheduler.ts", Type: artifact.TypeAPI},
	})

	require.Equal(t, "backend/src/routes/scheduler.ts", files[0].Path)
	require.Equal(t, "frontend/src/components/TaskList.tsx", files[1].Path)
	require.Equal(t, "backend/src/routes/scheduler_2.ts", files[2].Path)

	seen := map[string]bool{}
	for _, f := range files {
		require.False(t, seen[f.Path])
		seen[f.Path] = true
	}
}

func TestAssemble_Empty(t *testing.T) {
	require.Empty(t, newAssembler().Assemble(nil))
}
