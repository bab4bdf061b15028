// Package upload stores files received in multipart requests and hands back
// the public URL that is persisted in place of the bytes.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const URLPrefix = "/uploads"

var ErrNotFound = errors.New("upload: file not found")

// Store persists uploaded files.
type Store interface {
	// Save writes the file under folder and returns its public URL and the
	// stored file name.
	Save(ctx context.Context, folder string, fh *multipart.FileHeader) (url, name string, err error)
	// Open returns a reader for a stored file.
	Open(ctx context.Context, folder, name string) (io.ReadCloser, int64, error)
	// Locate maps a URL returned by Save back to its folder and name.
	Locate(url string) (folder, name string, ok bool)
	// Remove deletes the file behind a URL returned by Save. URLs the store
	// does not own and files already gone are ignored.
	Remove(ctx context.Context, url string) error
}

// LocalStore keeps files on local disk under Root, served at URLPrefix.
type LocalStore struct {
	Root string
	// BaseURL is prepended to returned URLs, empty for host-relative URLs.
	BaseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("upload root %s: %w", root, err)
	}
	return &LocalStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, folder string, fh *multipart.FileHeader) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	folder = cleanFolder(folder)
	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("upload mkdir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("upload open: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", "", fmt.Errorf("upload create: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", "", fmt.Errorf("upload write: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", "", fmt.Errorf("upload close: %w", err)
	}
	return s.BaseURL + path.Join(URLPrefix, folder, name), name, nil
}

func (s *LocalStore) Open(ctx context.Context, folder, name string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if !validName(name) {
		return nil, 0, ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.Root, cleanFolder(folder), name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (s *LocalStore) Remove(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	folder, name, ok := s.Locate(url)
	if !ok || !validName(name) {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, folder, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("upload remove: %w", err)
	}
	return nil
}

func (s *LocalStore) Locate(url string) (string, string, bool) {
	rest, ok := strings.CutPrefix(url, s.BaseURL+URLPrefix+"/")
	if !ok {
		return "", "", false
	}
	folder, name := path.Split(rest)
	if name == "" {
		return "", "", false
	}
	return cleanFolder(folder), name, true
}

func validName(name string) bool {
	return name != "" && name == filepath.Base(name) && name != ".." && name != "."
}

func cleanFolder(folder string) string {
	folder = path.Clean("/" + folder)
	return strings.TrimPrefix(folder, "/")
}
