package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/schema"
	"github.com/SscSPs/ledgerbook/internal/platform/metrics"
)

// Serializer converts a stored record into the form handed to callers.
type Serializer[E, R any] func(E) R

// EntityServiceOption configures an EntityService.
type EntityServiceOption func(*entityServiceConfig)

type entityServiceConfig struct {
	resource string
}

// WithResourceName sets the name used in logs and metrics.
func WithResourceName(name string) EntityServiceOption {
	return func(c *entityServiceConfig) {
		c.resource = name
	}
}

// EntityService is the validate, persist, serialize pipeline shared by every
// record type. It holds no state beyond its collaborators and is safe for
// concurrent use.
type EntityService[E, C, U, R any] struct {
	BaseService
	resource  string
	repo      portsrepo.CrudRepository[E, C, U]
	schema    schema.Pair[C, U]
	serialize Serializer[E, R]
}

// NewEntityService builds a service that returns stored records as they are.
func NewEntityService[E, C, U any](
	repo portsrepo.CrudRepository[E, C, U],
	pair schema.Pair[C, U],
	opts ...EntityServiceOption,
) *EntityService[E, C, U, E] {
	return NewSerializingEntityService(repo, pair, func(e E) E { return e }, opts...)
}

// NewSerializingEntityService builds a service that passes every returned
// record through serialize.
func NewSerializingEntityService[E, C, U, R any](
	repo portsrepo.CrudRepository[E, C, U],
	pair schema.Pair[C, U],
	serialize Serializer[E, R],
	opts ...EntityServiceOption,
) *EntityService[E, C, U, R] {
	cfg := entityServiceConfig{resource: "entity"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &EntityService[E, C, U, R]{
		resource:  cfg.resource,
		repo:      repo,
		schema:    pair,
		serialize: serialize,
	}
}

var _ portssvc.EntitySvcFacade[struct{}] = (*EntityService[struct{}, struct{}, struct{}, struct{}])(nil)

// Create validates payload and stores a new record.
func (s *EntityService[E, C, U, R]) Create(ctx context.Context, payload any) (R, error) {
	var zero R
	in, err := s.schema.ParseCreate(payload)
	if err != nil {
		return zero, s.fail(ctx, "create", err)
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return zero, s.fail(ctx, "create", err)
	}

	s.succeed(ctx, "create")
	return s.serialize(*created), nil
}

// List returns every record in repository order.
func (s *EntityService[E, C, U, R]) List(ctx context.Context) ([]R, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}

	out := make([]R, 0, len(records))
	for _, rec := range records {
		out = append(out, s.serialize(rec))
	}
	s.succeed(ctx, "list", slog.Int("count", len(out)))
	return out, nil
}

// GetByID returns the record or a NotFound error.
func (s *EntityService[E, C, U, R]) GetByID(ctx context.Context, id int64) (R, error) {
	var zero R
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, s.fail(ctx, "get", err, slog.Int64("id", id))
	}
	if record == nil {
		return zero, s.fail(ctx, "get", apperrors.NewNotFoundError(""), slog.Int64("id", id))
	}

	s.succeed(ctx, "get", slog.Int64("id", id))
	return s.serialize(*record), nil
}

// Update validates a partial payload and applies it to the record.
func (s *EntityService[E, C, U, R]) Update(ctx context.Context, id int64, payload any) (R, error) {
	var zero R
	in, err := s.schema.ParseUpdate(payload)
	if err != nil {
		return zero, s.fail(ctx, "update", err, slog.Int64("id", id))
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return zero, s.fail(ctx, "update", err, slog.Int64("id", id))
	}

	s.succeed(ctx, "update", slog.Int64("id", id))
	return s.serialize(*updated), nil
}

// Delete removes the record.
func (s *EntityService[E, C, U, R]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, slog.Int64("id", id))
	}

	s.succeed(ctx, "delete", slog.Int64("id", id))
	return nil
}

func (s *EntityService[E, C, U, R]) succeed(ctx context.Context, op string, attrs ...any) {
	metrics.ObserveEntityOperation(s.resource, op, nil)
	args := append([]any{slog.String("resource", s.resource), slog.String("operation", op)}, attrs...)
	s.LogDebug(ctx, "Entity operation succeeded", args...)
}

// fail classifies err, wrapping anything unrecognized as internal, and logs
// internal failures. The cause of an internal error never leaves the service
// except through Unwrap.
func (s *EntityService[E, C, U, R]) fail(ctx context.Context, op string, err error, attrs ...any) error {
	appErr := apperrors.AsAppError(err)
	metrics.ObserveEntityOperation(s.resource, op, appErr)

	args := append([]any{slog.String("resource", s.resource), slog.String("operation", op)}, attrs...)
	if appErr.Kind == apperrors.KindInternal {
		s.LogError(ctx, err, "Entity operation failed", args...)
	} else {
		s.LogDebug(ctx, "Entity operation rejected", append(args, slog.String("kind", appErr.Kind.String()))...)
	}
	return appErr
}
