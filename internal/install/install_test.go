package install

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiocel/internal/config"
	"audiocel/internal/system"
)

type entry struct {
	name string
	body string
	mode os.FileMode
}

func buildArchive(t *testing.T, entries ...entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		if strings.HasSuffix(e.name, "/") {
			hdr.SetMode(os.ModeDir | 0o755)
		} else if e.mode != 0 {
			hdr.SetMode(e.mode)
		}
		w, err := zw.CreateHeader(hdr)
		require.NoError(t, err)
		if e.body != "" {
			_, err = w.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func releaseArchive(t *testing.T, version string) []byte {
	dir := "scrcpy-win64-" + version + "/"
	return buildArchive(t,
		entry{name: dir},
		entry{name: dir + "scrcpy.exe", body: "MZ-scrcpy", mode: 0o755},
		entry{name: dir + "adb.exe", body: "MZ-adb", mode: 0o755},
		entry{name: dir + "scrcpy-server", body: "jar"},
	)
}

// releaseServer serves body for the release path and counts requests.
func releaseServer(t *testing.T, status int, body []byte) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet || r.URL.Path != "/Genymobile/scrcpy/releases/download/v3.3.1/scrcpy-win64-v3.3.1.zip" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testConfig(t *testing.T, baseURL string) config.Config {
	return config.Config{
		Version:        "v3.3.1",
		ReleaseBaseURL: baseURL,
		Project:        "Genymobile/scrcpy",
		ToolsDir:       filepath.Join(t.TempDir(), "tools"),
		LogLevel:       "info",
	}
}

func TestEnsureInstalled_SkipsDownloadWhenPresent(t *testing.T) {
	srv, hits := releaseServer(t, http.StatusOK, releaseArchive(t, "v3.3.1"))
	cfg := testConfig(t, srv.URL)
	require.NoError(t, os.MkdirAll(cfg.InstallDir(), 0o755))
	// an empty file still counts as installed
	require.NoError(t, os.WriteFile(cfg.ScrcpyExe(), nil, 0o755))

	var out bytes.Buffer
	err := New(cfg, &out, system.Discard()).EnsureInstalled(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0), hits.Load())
	assert.Contains(t, out.String(), "scrcpy encontrado: "+cfg.ScrcpyExe())
	assert.NoFileExists(t, cfg.ArchivePath())
}

func TestEnsureInstalled_DownloadsAndExtracts(t *testing.T) {
	srv, hits := releaseServer(t, http.StatusOK, releaseArchive(t, "v3.3.1"))
	cfg := testConfig(t, srv.URL)

	var out bytes.Buffer
	err := New(cfg, &out, system.Discard()).EnsureInstalled(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.FileExists(t, cfg.ScrcpyExe())
	assert.FileExists(t, cfg.AdbExe())
	// the archive is kept after extraction
	assert.FileExists(t, cfg.ArchivePath())

	b, err := os.ReadFile(cfg.ScrcpyExe())
	require.NoError(t, err)
	assert.Equal(t, "MZ-scrcpy", string(b))
	assert.Equal(t, "Baixando scrcpy v3.3.1...\nExtraindo...\nOK!\n", out.String())
}

func TestEnsureInstalled_SecondRunIsNoop(t *testing.T) {
	srv, hits := releaseServer(t, http.StatusOK, releaseArchive(t, "v3.3.1"))
	cfg := testConfig(t, srv.URL)
	inst := New(cfg, &bytes.Buffer{}, system.Discard())

	require.NoError(t, inst.EnsureInstalled(context.Background()))
	require.NoError(t, inst.EnsureInstalled(context.Background()))
	assert.Equal(t, int32(1), hits.Load())
}

func TestEnsureInstalled_NonSuccessStatus(t *testing.T) {
	srv, hits := releaseServer(t, http.StatusNotFound, []byte("Not Found"))
	cfg := testConfig(t, srv.URL)

	err := New(cfg, &bytes.Buffer{}, system.Discard()).EnsureInstalled(context.Background())
	require.Error(t, err)

	var de *DownloadError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusNotFound, de.StatusCode)
	assert.Equal(t, cfg.DownloadURL(), de.URL)
	assert.Equal(t, int32(1), hits.Load())
	assert.NoFileExists(t, cfg.ScrcpyExe())
}

func TestEnsureInstalled_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	cfg := testConfig(t, base)

	err := New(cfg, &bytes.Buffer{}, system.Discard()).EnsureInstalled(context.Background())
	var de *DownloadError
	require.ErrorAs(t, err, &de)
	assert.Error(t, de.Err)
}

func TestEnsureInstalled_CorruptArchive(t *testing.T) {
	srv, _ := releaseServer(t, http.StatusOK, []byte("this is not a zip"))
	cfg := testConfig(t, srv.URL)

	err := New(cfg, &bytes.Buffer{}, system.Discard()).EnsureInstalled(context.Background())
	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, cfg.ArchivePath(), ee.Archive)
}

func TestEnsureInstalled_ArchiveWithoutExecutable(t *testing.T) {
	srv, _ := releaseServer(t, http.StatusOK, buildArchive(t, entry{name: "README.txt", body: "hi"}))
	cfg := testConfig(t, srv.URL)

	err := New(cfg, &bytes.Buffer{}, system.Discard()).EnsureInstalled(context.Background())
	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Contains(t, ee.Error(), "scrcpy.exe")
}

func TestEnsureInstalled_ProgressBar(t *testing.T) {
	srv, _ := releaseServer(t, http.StatusOK, releaseArchive(t, "v3.3.1"))
	cfg := testConfig(t, srv.URL)

	var progressOut bytes.Buffer
	inst := New(cfg, &bytes.Buffer{}, system.Discard())
	inst.Progress = &progressOut
	require.NoError(t, inst.EnsureInstalled(context.Background()))

	assert.Contains(t, progressOut.String(), "100%")
	assert.True(t, strings.HasSuffix(progressOut.String(), "\n"))
}
