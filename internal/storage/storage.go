package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=storage

var (
	// ErrNotFound is returned by backends when the named resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrIO wraps every read or write failure other than an absent resource.
	ErrIO = errors.New("storage i/o failure")
	// ErrCorruptData is returned instead of the empty default when strict shape checks are on.
	ErrCorruptData = errors.New("persisted data has unexpected shape")
)

// Kind is the container shape a resource is expected to hold.
type Kind int

const (
	KindUnknown Kind = iota
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// KindOf infers the expected container kind from the resource name.
func KindOf(name string) Kind {
	switch {
	case strings.Contains(name, "accounts"):
		return KindMapping
	case strings.Contains(name, "orders"):
		return KindSequence
	default:
		return KindUnknown
	}
}

type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

type Helper struct {
	backend Backend
	strict  bool
}

type Option func(*Helper)

// WithStrictShape makes Load report ErrCorruptData on a shape mismatch
// instead of silently substituting the empty default.
func WithStrictShape(strict bool) Option {
	return func(h *Helper) {
		h.strict = strict
	}
}

func New(backend Backend, opts ...Option) *Helper {
	h := &Helper{backend: backend}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Save serialises data and overwrites the named resource.
func (h *Helper) Save(ctx context.Context, name string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: could not save data: %w", ErrIO, err)
	}
	if err := h.backend.Write(ctx, name, raw); err != nil {
		return fmt.Errorf("%w: could not save data: %w", ErrIO, err)
	}
	return nil
}

// Load deserialises the named resource into dst, which must be a pointer.
// An absent resource, or one holding valid data of the wrong container kind
// for its name, leaves dst set to an empty map or slice. Undecodable content
// is reported as ErrIO and dst is left untouched.
func (h *Helper) Load(ctx context.Context, name string, dst any) error {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("%w: could not load data: destination must be a non-nil pointer", ErrIO)
	}

	raw, err := h.backend.Read(ctx, name)
	if errors.Is(err, ErrNotFound) {
		resetEmpty(target.Elem())
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: could not load data: %w", ErrIO, err)
	}

	if !json.Valid(raw) {
		return fmt.Errorf("%w: could not load data: %s is not valid json", ErrIO, name)
	}

	expected := KindOf(name)
	if expected != KindUnknown && shapeOf(raw) != expected {
		if h.strict {
			return fmt.Errorf("%w: %s should hold a %s", ErrCorruptData, name, expected)
		}
		zap.L().Warn("persisted data has unexpected shape, using empty default",
			zap.String("resource", name), zap.Stringer("expected", expected))
		resetEmpty(target.Elem())
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: could not load data: %w", ErrIO, err)
	}
	return nil
}

func shapeOf(raw []byte) Kind {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return KindUnknown
	}
	switch trimmed[0] {
	case '{':
		return KindMapping
	case '[':
		return KindSequence
	default:
		return KindUnknown
	}
}

func resetEmpty(v reflect.Value) {
	switch v.Kind() {
	case reflect.Map:
		v.Set(reflect.MakeMap(v.Type()))
	case reflect.Slice:
		v.Set(reflect.MakeSlice(v.Type(), 0, 0))
	default:
		v.Set(reflect.Zero(v.Type()))
	}
}
