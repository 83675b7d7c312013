package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	keys   []string
	bodies map[string][]byte
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.bodies == nil {
		f.bodies = map[string][]byte{}
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.keys = append(f.keys, *in.Key)
	f.bodies[*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func TestUploader_UploadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NBA_roster_info_all_players.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n1,A\n"), 0o644))

	fc := &fakeS3{}
	up := NewUploader(fc, "exports", "nba/2026")
	require.NoError(t, up.UploadFiles(context.Background(), []string{path}))

	require.Equal(t, []string{"nba/2026/NBA_roster_info_all_players.csv"}, fc.keys)
	require.Equal(t, "id,name\n1,A\n", string(fc.bodies[fc.keys[0]]))
}
