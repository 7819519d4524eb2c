package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/codingconcepts/grabkernel/models"
)

// DefaultChunkSize is the size of the buffer assets are streamed through.
const DefaultChunkSize = 4096

const maxErrorBody = 64 << 10

// Downloader streams release assets into a directory.
type Downloader struct {
	http      *http.Client
	dir       string
	chunkSize int
	userAgent string
}

// Result describes a downloaded asset.
type Result struct {
	Path  string
	Bytes int64
}

// New creates a Downloader writing into dir. A chunkSize below one falls back
// to DefaultChunkSize.
func New(c *http.Client, dir string, chunkSize int, userAgent string) *Downloader {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Downloader{
		http:      c,
		dir:       dir,
		chunkSize: chunkSize,
		userAgent: userAgent,
	}
}

// Path returns where an asset will be written.
func (d *Downloader) Path(asset models.GitAsset) string {
	return filepath.Join(d.dir, asset.Name)
}

// EnsureDir creates the output directory if it's missing. An existing
// directory is left as it is.
func (d *Downloader) EnsureDir() error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return &models.FileError{Op: "creating directory", Path: d.dir, Err: err}
	}
	return nil
}

// Download streams a single asset to disk, overwriting any existing file of
// the same name. A failed download may leave a partial file behind.
func (d *Downloader) Download(ctx context.Context, asset models.GitAsset) (Result, error) {
	url := asset.BrowserDownloadURL
	fileName := d.Path(asset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating download request for %q: %w", asset.Name, err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	slog.Debug("downloading asset", "name", asset.Name, "url", url)
	resp, err := d.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("downloading asset %q: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Result{}, models.NewStatusError(url, resp, body)
	}

	out, err := os.Create(fileName)
	if err != nil {
		return Result{}, &models.FileError{Op: "creating file", Path: fileName, Err: err}
	}

	n, err := d.copy(out, resp.Body)
	if err != nil {
		out.Close()
		return Result{Path: fileName, Bytes: n}, err
	}

	if err = out.Close(); err != nil {
		return Result{Path: fileName, Bytes: n}, &models.FileError{Op: "closing file", Path: fileName, Err: err}
	}

	slog.Debug("downloaded asset", "name", asset.Name, "path", fileName, "bytes", n)
	return Result{Path: fileName, Bytes: n}, nil
}

// copy moves src into dst one chunk at a time, keeping read and write
// failures apart.
func (d *Downloader) copy(dst *os.File, src io.Reader) (int64, error) {
	buf := make([]byte, d.chunkSize)

	var written int64
	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, &models.FileError{Op: "writing file", Path: dst.Name(), Err: werr}
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, fmt.Errorf("reading asset body: %w", rerr)
		}
	}
}
