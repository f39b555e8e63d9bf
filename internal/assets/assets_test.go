package assets_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfrund/gopang/internal/assets"
	"github.com/nfrund/gopang/web"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEmbed(t *testing.T) {
	a, err := assets.FromEmbed(web.FS)
	require.NoError(t, err)

	data, err := fs.ReadFile(a.FS(), "gopang.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".bg-eco-gradient")
	assert.Len(t, a.Version(), 12)
}

func TestVersion_ChangesWithContent(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "app.css", []byte("a{}"), 0o644))

	a, err := assets.FromFs(mem)
	require.NoError(t, err)
	before := a.Version()

	require.NoError(t, afero.WriteFile(mem, "app.css", []byte("b{}"), 0o644))
	require.NoError(t, a.Refresh())
	assert.NotEqual(t, before, a.Version())
}

func TestFromDisk_Watch(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "gopang.css")
	require.NoError(t, os.WriteFile(css, []byte("a{}"), 0o644))

	a, err := assets.FromDisk(dir)
	require.NoError(t, err)
	before := a.Version()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.Watch(ctx, dir))

	require.NoError(t, os.WriteFile(css, []byte("body{color:green}"), 0o644))
	assert.Eventually(t, func() bool { return a.Version() != before }, 2*time.Second, 20*time.Millisecond)
}

func TestFromDisk_MissingDir(t *testing.T) {
	_, err := assets.FromDisk(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
