package docwalk

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWalkSortsByPostingID(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/corpus/3", []byte("the fox"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/corpus/1", []byte("the dog"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/corpus/2", []byte("the cat"), 0o644))

	docs, err := Walk(fsys, "/corpus")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, 1, int(docs[0].ID))
	require.Equal(t, 2, int(docs[1].ID))
	require.Equal(t, 3, int(docs[2].ID))
	require.Equal(t, "the dog", docs[0].Text)
}

func TestWalkRejectsNonIntegerFilename(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/corpus/notanumber", []byte("x"), 0o644))

	_, err := Walk(fsys, "/corpus")
	require.ErrorIs(t, err, ErrBadArguments)
}

func TestWalkSkipsSubdirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/corpus/1", []byte("a"), 0o644))
	require.NoError(t, fsys.MkdirAll("/corpus/nested", 0o755))

	docs, err := Walk(fsys, "/corpus")
	require.NoError(t, err)
	require.Len(t, docs, 1)
}
