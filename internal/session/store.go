// Package session реализует клиентскую сессию DataDrive: хранение bearer-токена,
// вывод роли из его claims и принудительный выход по истечении срока.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound ключ отсутствует в хранилище.
var ErrNotFound = errors.New("key not found")

// Store постоянное key-value хранилище сессии.
type Store interface {
	// Get возвращает значение ключа или ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set сохраняет значение ключа.
	Set(ctx context.Context, key, value string) error
	// Delete удаляет ключ; отсутствие ключа не ошибка.
	Delete(ctx context.Context, key string) error
}

// FileStore хранит пары ключ-значение в одном JSON-файле.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore создаёт хранилище в файле path. Каталог создаётся при первой записи.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get возвращает значение ключа.
func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	const op = "session.FileStore.Get"
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	value, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set сохраняет значение ключа.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	const op = "session.FileStore.Set"
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	data[key] = value
	if err := s.write(data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет ключ.
func (s *FileStore) Delete(_ context.Context, key string) error {
	const op = "session.FileStore.Delete"
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	if err := s.write(data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data := map[string]string{}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// write пишет во временный файл и переименовывает, чтобы файл не оставался наполовину записанным.
func (s *FileStore) write(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
