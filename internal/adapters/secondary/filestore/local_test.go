package filestore

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"video-link-service/internal/core/domain"
)

func TestWriteOpenRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	link, err := store.Write("generated_videos_1.csv", []byte("name,link\nAcme,x\n"))
	assert.NoError(t, err)
	assert.Equal(t, "/downloads/generated_videos_1.csv", link)

	f, err := store.Open(link)
	assert.NoError(t, err)
	data, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.Equal(t, "name,link\nAcme,x\n", string(data))

	assert.NoError(t, store.Remove(link))

	_, err = store.Open(link)
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)

	// removing again is already-cleaned state, not an error
	assert.NoError(t, store.Remove(link))
}

func TestWriteRejectsPathEscapes(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../evil.csv", "a/b.csv", `a\b.csv`} {
		_, err := store.Write(name, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidFileName, "name %q", name)
	}
}

func TestOpenRejectsPathEscapes(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Open("/downloads/../../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrInvalidFileName)
}
