package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
)

type localStorage struct {
	root string
}

func NewLocal(root string) (Storage, error) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, err
	}
	return &localStorage{root: root}, nil
}

// path rejects object names that escape the storage root.
func (s *localStorage) path(objectName string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(objectName))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", apperr.Validation("invalid object name %q", objectName)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *localStorage) Put(ctx context.Context, r io.Reader, objectName string, size int64, contentType string) error {
	p, err := s.path(objectName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return err
	}

	return f.Close()
}

func (s *localStorage) Get(ctx context.Context, objectName string) (io.ReadCloser, ObjectInfo, error) {
	p, err := s.path(objectName)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, ObjectInfo{}, translateLocalErr(err, objectName)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}

	return f, ObjectInfo{Size: stat.Size(), ContentType: contentTypeFor(objectName)}, nil
}

type sectionReadCloser struct {
	*io.SectionReader
	f *os.File
}

func (s *sectionReadCloser) Close() error {
	return s.f.Close()
}

func (s *localStorage) GetRange(ctx context.Context, objectName string, start, end int64) (io.ReadCloser, error) {
	p, err := s.path(objectName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, translateLocalErr(err, objectName)
	}

	return &sectionReadCloser{
		SectionReader: io.NewSectionReader(f, start, end-start+1),
		f:             f,
	}, nil
}

func (s *localStorage) Stat(ctx context.Context, objectName string) (ObjectInfo, error) {
	p, err := s.path(objectName)
	if err != nil {
		return ObjectInfo{}, err
	}

	stat, err := os.Stat(p)
	if err != nil {
		return ObjectInfo{}, translateLocalErr(err, objectName)
	}

	return ObjectInfo{Size: stat.Size(), ContentType: contentTypeFor(objectName)}, nil
}

func (s *localStorage) Delete(ctx context.Context, objectName string) error {
	p, err := s.path(objectName)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil {
		return translateLocalErr(err, objectName)
	}
	return nil
}

func (s *localStorage) URL(objectName string) string {
	return "/media/" + objectName
}

func translateLocalErr(err error, objectName string) error {
	if os.IsNotExist(err) {
		return apperr.E(apperr.KindNotFound, fmt.Errorf("object %s: %w", objectName, err))
	}
	return err
}

func contentTypeFor(objectName string) string {
	if t := mime.TypeByExtension(filepath.Ext(objectName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
