package savedata

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
)

var mimeTypes = map[Format]string{
	JSON:      "text/json",
	JS:        "text/javascript",
	Delimited: "text/csv",
	Python:    "text/x-python",
	R:         "text/x-r",
}

var extensions = map[Format]string{
	JSON:      ".json",
	JS:        ".js",
	Delimited: ".csv",
	Python:    ".py",
	R:         ".R",
}

// MIMEType returns the media type of output in format f.
func MIMEType(f Format) string {
	if m, ok := mimeTypes[f]; ok {
		return m
	}
	return "text/plain"
}

// Extension returns the file extension, with leading dot, for format f.
func Extension(f Format) string {
	if e, ok := extensions[f]; ok {
		return e
	}
	return ".txt"
}

var trailingExt = regexp.MustCompile(`(?i)\.[a-z]*$`)

// stripExtension removes a trailing alphabetic extension such as ".csv". A
// name that is nothing but an extension becomes [DefaultFilename].
func stripExtension(filename string) string {
	if stem := trailingExt.ReplaceAllString(filename, ""); stem != "" {
		return stem
	}
	return DefaultFilename
}

// Downloader delivers rendered output under a file name.
type Downloader interface {
	Download(text []byte, mimeType, filename string) error
}

// DownloaderFunc adapts a function to [Downloader].
type DownloaderFunc func(text []byte, mimeType, filename string) error

// Download calls f.
func (f DownloaderFunc) Download(text []byte, mimeType, filename string) error {
	return f(text, mimeType, filename)
}

// FileDownloader saves output as a file in Dir. A nil Fs means the OS
// filesystem and an empty Dir means the working directory.
type FileDownloader struct {
	Fs  afero.Fs
	Dir string
}

// Download writes text to Dir/filename, creating Dir if needed.
func (d FileDownloader) Download(text []byte, mimeType, filename string) error {
	fs := d.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := afero.WriteFile(fs, path, text, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("savedata: saved file", "path", path, "mime", mimeType, "bytes", len(text))
	return nil
}

// HTTPDownloader sends output as an attachment on an HTTP response.
type HTTPDownloader struct {
	W http.ResponseWriter
}

// Download writes the attachment headers and body.
func (d HTTPDownloader) Download(text []byte, mimeType, filename string) error {
	h := d.W.Header()
	h.Set("Content-Type", mimeType+"; charset=utf-8")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	h.Set("Content-Length", strconv.Itoa(len(text)))
	d.W.WriteHeader(http.StatusOK)
	_, err := d.W.Write(text)
	return err
}
