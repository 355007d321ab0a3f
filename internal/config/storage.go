package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names a key-value backend for the todo store
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// ErrUnknownBackend is returned for a storage backend name that is not supported
var ErrUnknownBackend = errors.New("unknown storage backend")

// StorageConfig selects and configures where todos are kept
type StorageConfig struct {
	Backend   Backend     `yaml:"backend" json:"backend"`
	Path      string      `yaml:"path" json:"path"`
	Namespace string      `yaml:"namespace" json:"namespace"`
	Redis     RedisConfig `yaml:"redis" json:"redis"`
}

// RedisConfig holds connection settings for the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
}

// Default storage settings
const (
	DefaultNamespace   = "todos-backbone"
	DefaultRedisAddr   = "localhost:6379"
	DefaultRedisPrefix = "todos:"
)

// DefaultDBPath returns ~/.todos/todos.db
func DefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "todos.db"
	}
	return filepath.Join(homeDir, ".todos", "todos.db")
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	if s.Path == "" {
		s.Path = DefaultDBPath()
	}
	s.Path = ExpandHome(s.Path)
	if s.Namespace == "" {
		s.Namespace = DefaultNamespace
	}
	if s.Redis.Addr == "" {
		s.Redis.Addr = DefaultRedisAddr
	}
	if s.Redis.Prefix == "" {
		s.Redis.Prefix = DefaultRedisPrefix
	}
}

// Validate rejects unknown backends and unusable settings
func (s *StorageConfig) Validate() error {
	switch s.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q (want sqlite, redis or memory)", ErrUnknownBackend, s.Backend)
	}
	if s.Redis.DB < 0 {
		return fmt.Errorf("redis db must not be negative, got %d", s.Redis.DB)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
