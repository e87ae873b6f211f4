package updater

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tarball(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o755,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
	}{
		{"dev", "v9999.1.1", false},
		{"v2025.1.3", "v2025.1.10", true},
		{"v2025.1.10", "v2025.1.3", false},
		{"v2025.2.0", "v2025.2.0", false},
		{"2025.1.0", "v2026.1.0", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNewer(tt.current, tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}

func TestAssetName(t *testing.T) {
	u := New()
	assert.Equal(t, "nova_Linux_x86_64.tar.gz", u.assetName("linux", "amd64"))
	assert.Equal(t, "nova_Darwin_arm64.tar.gz", u.assetName("darwin", "arm64"))
}

func TestExtractBinary(t *testing.T) {
	u := New()
	data := tarball(t, map[string]string{"README.md": "docs", "nova": "binary-bytes"})

	got, err := u.extractBinary(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "binary-bytes", string(got))
}

func TestExtractBinary_Missing(t *testing.T) {
	u := New()
	data := tarball(t, map[string]string{"other": "x"})

	_, err := u.extractBinary(bytes.NewReader(data))
	assert.ErrorContains(t, err, "not found")
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/ryan-rushton/nova/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v2026.10.2"}`))
	}))
	defer srv.Close()

	u := New()
	u.API = srv.URL

	tag, err := u.LatestRelease(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2026.10.2", tag)
}

func TestLatestRelease_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad status", http.StatusInternalServerError, ""},
		{"empty tag", http.StatusOK, `{"tag_name":""}`},
		{"bad json", http.StatusOK, `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			u := New()
			u.API = srv.URL
			_, err := u.LatestRelease(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestReplace(t *testing.T) {
	u := New()
	asset := u.assetName(runtime.GOOS, runtime.GOARCH)
	data := tarball(t, map[string]string{"nova": "new-build"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ryan-rushton/nova/releases/download/v2/"+asset, r.URL.Path)
		_, _ = w.Write(data)
	}))
	defer srv.Close()
	u.Host = srv.URL

	exe := filepath.Join(t.TempDir(), "nova")
	require.NoError(t, os.WriteFile(exe, []byte("old-build"), 0o755))

	require.NoError(t, u.replace(context.Background(), "v2", exe))

	got, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, "new-build", string(got))
}
