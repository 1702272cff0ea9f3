package classindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/jardeps/internal/testjar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassNameFromEntry(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		want      string
		wantClass bool
	}{
		{name: "nested class file", entry: "com/x/Foo.class", want: "com.x.Foo", wantClass: true},
		{name: "default package", entry: "Main.class", want: "Main", wantClass: true},
		{name: "inner class keeps dollar", entry: "com/x/Foo$Bar.class", want: "com.x.Foo$Bar", wantClass: true},
		{name: "backslash is not a separator", entry: `com\x\Foo.class`, want: `com\x\Foo`, wantClass: true},
		{name: "directory marker", entry: "com/x/", wantClass: false},
		{name: "resource", entry: "META-INF/MANIFEST.MF", wantClass: false},
		{name: "suffix is case sensitive", entry: "com/x/Foo.CLASS", wantClass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassNameFromEntry(tt.entry)
			assert.Equal(t, tt.wantClass, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArchiveClassNames(t *testing.T) {
	archive := testjar.Write(t, filepath.Join(t.TempDir(), "a.jar"),
		"META-INF/",
		"META-INF/MANIFEST.MF",
		"com/x/",
		"com/x/Foo.class",
		"com/x/Bar.class",
		"com/x/messages.properties",
	)

	names, err := ArchiveClassNames(archive)

	require.NoError(t, err)
	assert.Equal(t, []string{"com.x.Foo", "com.x.Bar"}, names)
}

func TestArchiveClassNames_CorruptArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "broken.jar")
	require.NoError(t, os.WriteFile(archive, []byte("not a zip file"), 0o644))

	_, err := ArchiveClassNames(archive)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.jar")
}
