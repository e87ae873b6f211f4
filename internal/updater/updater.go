package updater

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// DevVersion marks a local build; it never updates.
const DevVersion = "dev"

// Updater fetches releases of one GitHub repository.
type Updater struct {
	Repo   string // owner/name
	Binary string // file name inside the release tarball
	API    string // defaults to https://api.github.com
	Host   string // defaults to https://github.com
	Client *http.Client
}

// New returns an updater for nova's own releases.
func New() *Updater {
	return &Updater{
		Repo:   "ryan-rushton/nova",
		Binary: "nova",
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type release struct {
	TagName string `json:"tag_name"`
}

func (u *Updater) api() string {
	if u.API != "" {
		return strings.TrimRight(u.API, "/")
	}
	return "https://api.github.com"
}

func (u *Updater) host() string {
	if u.Host != "" {
		return strings.TrimRight(u.Host, "/")
	}
	return "https://github.com"
}

func (u *Updater) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := u.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}

// LatestRelease fetches the latest release tag.
func (u *Updater) LatestRelease(ctx context.Context) (string, error) {
	resp, err := u.get(ctx, fmt.Sprintf("%s/repos/%s/releases/latest", u.api(), u.Repo))
	if err != nil {
		return "", fmt.Errorf("fetching latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github API returned status %d", resp.StatusCode)
	}

	var r release
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decoding release response: %w", err)
	}

	if r.TagName == "" {
		return "", errors.New("empty tag_name in release response")
	}

	return r.TagName, nil
}

// IsNewer returns true if latest is newer than current.
// Returns false if current is a dev build.
func IsNewer(current, latest string) bool {
	if current == DevVersion {
		return false
	}
	return normalizeVersion(latest) > normalizeVersion(current)
}

// normalizeVersion pads each dot-separated segment to 4 digits for
// lexicographic comparison (e.g. "2025.1.3" → "2025.0001.0003").
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	for i, p := range parts {
		parts[i] = fmt.Sprintf("%04s", p)
	}
	return strings.Join(parts, ".")
}

// assetName follows GoReleaser's archive naming.
func (u *Updater) assetName(goos, goarch string) string {
	osName, archName := goos, goarch
	switch goarch {
	case "amd64":
		archName = "x86_64"
	}
	switch goos {
	case "darwin":
		osName = "Darwin"
	case "linux":
		osName = "Linux"
	}
	return fmt.Sprintf("%s_%s_%s.tar.gz", u.Binary, osName, archName)
}

// DownloadAndReplace downloads the release tarball for tag and replaces the
// running executable with the binary inside it.
func (u *Updater) DownloadAndReplace(ctx context.Context, tag string) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("finding executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolving symlinks: %w", err)
	}
	return u.replace(ctx, tag, execPath)
}

func (u *Updater) replace(ctx context.Context, tag, execPath string) error {
	url := fmt.Sprintf("%s/%s/releases/download/%s/%s",
		u.host(), u.Repo, tag, u.assetName(runtime.GOOS, runtime.GOARCH))

	resp, err := u.get(ctx, url)
	if err != nil {
		return fmt.Errorf("downloading release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	binary, err := u.extractBinary(resp.Body)
	if err != nil {
		return fmt.Errorf("extracting binary: %w", err)
	}

	// Write to a temp file in the same directory, then atomically rename.
	tmp, err := os.CreateTemp(filepath.Dir(execPath), u.Binary+"-update-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(binary); err != nil {
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(0o755); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, execPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing executable: %w", err)
	}

	return nil
}

// extractBinary reads a tar.gz stream and returns the contents of the binary.
func (u *Updater) extractBinary(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar: %w", err)
		}

		if filepath.Base(header.Name) == u.Binary && header.Typeflag == tar.TypeReg {
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("reading binary from tar: %w", err)
			}
			return data, nil
		}
	}

	return nil, fmt.Errorf("%s binary not found in archive", u.Binary)
}
