package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tabmate/outings-tracker/gen/ent"
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/internal/common"
)

// OutingSummary is the list view of an outing.
type OutingSummary struct {
	ID            uuid.UUID
	Name          string
	CreatedAt     time.Time
	TotalReceipts int
}

type OutingRepository interface {
	Create(ctx context.Context, name string) (*ent.Outing, error)
	List(ctx context.Context) ([]OutingSummary, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type outingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOutingRepository(client *ent.Client, logger *slog.Logger) OutingRepository {
	return &outingRepository{client: client, logger: logger}
}

func (r *outingRepository) Create(ctx context.Context, name string) (*ent.Outing, error) {
	o, err := r.client.Outing.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create outing", "name", name, "error", err)
		return nil, err
	}
	return o, nil
}

func (r *outingRepository) List(ctx context.Context) ([]OutingSummary, error) {
	outings, err := r.client.Outing.Query().
		Where(outing.DeletedAtIsNil()).
		WithImages().
		Order(ent.Desc(outing.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list outings", "error", err)
		return nil, err
	}

	result := make([]OutingSummary, len(outings))
	for i, o := range outings {
		result[i] = OutingSummary{
			ID:            o.ID,
			Name:          o.Name,
			CreatedAt:     o.CreatedAt,
			TotalReceipts: len(o.Edges.Images),
		}
	}
	return result, nil
}

func (r *outingRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Outing.Query().
		Where(outing.ID(id), outing.DeletedAtIsNil()).
		Exist(ctx)
}

func (r *outingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.client.Outing.Update().
		Where(outing.ID(id), outing.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to soft delete outing", "outing_id", id, "error", err)
		return err
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
