package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocal(dir, "/static/uploads/")
	ctx := context.Background()

	url, err := s.Save(ctx, "insurance_policy/1700000000000_ab12.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/insurance_policy/1700000000000_ab12.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "insurance_policy", "1700000000000_ab12.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, s.Delete(ctx, "insurance_policy/1700000000000_ab12.pdf"))
	_, err = os.Stat(filepath.Join(dir, "insurance_policy", "1700000000000_ab12.pdf"))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, s.Delete(ctx, "insurance_policy/1700000000000_ab12.pdf"))
}

func TestLocal_RejectsTraversal(t *testing.T) {
	s := NewLocal(t.TempDir(), "/static/uploads")

	_, err := s.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, s.Delete(context.Background(), "/abs/path"), ErrInvalidKey)
}

func TestCloudinaryHelpers(t *testing.T) {
	assert.Equal(t, "other/1700_x", publicID("other/1700_x.docx"))
	assert.Equal(t, "image", resourceType("a/b.PDF"))
	assert.Equal(t, "video", resourceType("a/b.mp4"))
	assert.Equal(t, "raw", resourceType("a/b.docx"))
}
