// Package storage abstracts where uploaded images end up: the local
// filesystem, an S3-compatible bucket, or a Cloudinary-style image host.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/shashiranjanraj/rabbit/config"
)

// Disk stores uploaded files. Put returns the public URL of the stored file.
type Disk interface {
	Put(ctx context.Context, path string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// Manager holds the configured disks. The local disk is always available;
// s3 and imagehost boot only when configured.
type Manager struct {
	disks       map[string]Disk
	defaultDisk string
}

func NewManager(cfg config.StorageConfig) (*Manager, error) {
	m := &Manager{
		disks:       map[string]Disk{"local": newLocalDisk(cfg)},
		defaultDisk: cfg.Disk,
	}

	if cfg.S3.Bucket != "" {
		d, err := newS3Disk(cfg.S3)
		if err != nil {
			return nil, err
		}
		m.disks["s3"] = d
	}

	if cfg.ImageHost.UploadURL != "" {
		m.disks["imagehost"] = newImageHostDisk(cfg.ImageHost)
	}

	if _, ok := m.disks[cfg.Disk]; !ok {
		return nil, fmt.Errorf("storage: disk %q selected but not configured", cfg.Disk)
	}

	return m, nil
}

// Disk returns the named disk.
func (m *Manager) Disk(name string) (Disk, error) {
	d, ok := m.disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the disk selected by STORAGE_DISK.
func (m *Manager) Default() Disk {
	return m.disks[m.defaultDisk]
}
