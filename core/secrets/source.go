package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"todo-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// maxSecretSize bounds how much of a secret object is read.
const maxSecretSize = 64 << 10

var (
	// ErrNotConfigured is returned when the secret source lacks its configuration.
	ErrNotConfigured = errors.New("secret source not configured")
	// ErrEmptySecret is returned when the secret payload is empty.
	ErrEmptySecret = errors.New("no secret string found")
	// ErrMissingAPIKey is returned when the payload has no apiKey field.
	ErrMissingAPIKey = errors.New("no apiKey field found in secret")
)

// Source fetches the raw secret payload from a secret store.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// ObjectSource reads the secret payload from an object in an S3-compatible bucket.
type ObjectSource struct {
	client storage.Client
	bucket string
	name   string
}

// NewObjectSource creates a source reading bucket/name.
func NewObjectSource(client storage.Client, bucket, name string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, name: name}
}

func (s *ObjectSource) Fetch(ctx context.Context) (string, error) {
	if s.client == nil || s.bucket == "" || s.name == "" {
		return "", ErrNotConfigured
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.name, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", s.name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxSecretSize))
	if err != nil {
		return "", fmt.Errorf("failed to read secret %s: %w", s.name, err)
	}
	return string(data), nil
}

// StaticSource returns a payload fixed at configuration time.
type StaticSource struct {
	payload string
}

// NewStaticSource creates a source returning payload.
func NewStaticSource(payload string) *StaticSource {
	return &StaticSource{payload: payload}
}

func (s *StaticSource) Fetch(context.Context) (string, error) {
	if s.payload == "" {
		return "", ErrNotConfigured
	}
	return s.payload, nil
}

// NewSource builds the Source selected by cfg.Provider.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Provider {
	case ProviderStorage, "":
		return NewObjectSource(client, bucket, cfg.Name), nil
	case ProviderStatic:
		return NewStaticSource(cfg.Value), nil
	default:
		return nil, fmt.Errorf("unsupported secret provider: %s", cfg.Provider)
	}
}

// secretPayload is the JSON document stored in the secret.
type secretPayload struct {
	APIKey string `json:"apiKey"`
}

// ParseAPIKey extracts the apiKey field from a secret payload.
func ParseAPIKey(payload string) (string, error) {
	if payload == "" {
		return "", ErrEmptySecret
	}

	var p secretPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return "", fmt.Errorf("failed to parse secret payload: %w", err)
	}
	if p.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	return p.APIKey, nil
}

// EncodeAPIKey renders the payload stored for apiKey.
func EncodeAPIKey(apiKey string) ([]byte, error) {
	return json.Marshal(secretPayload{APIKey: apiKey})
}
