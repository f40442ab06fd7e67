package usecase

import (
	"context"
	"log/slog"

	"condoYaAdmin/internal/modules/console/application/port"
	"condoYaAdmin/internal/modules/console/domain"
)

// MutateUseCase forwards create/update/delete form submissions to the backend
// and invalidates the browse snapshots of the touched entity.
type MutateUseCase struct {
	directory port.Directory
	browse    *BrowseUseCase
}

func NewMutateUseCase(directory port.Directory, browse *BrowseUseCase) *MutateUseCase {
	return &MutateUseCase{directory: directory, browse: browse}
}

func (uc *MutateUseCase) CreateEntity(ctx context.Context, token, entity string, payload map[string]any) (domain.Row, error) {
	row, err := uc.directory.CreateRow(ctx, token, entity, payload)
	if err != nil {
		slog.Warn("mutate create failed", slog.String("entity", entity), slog.Any("error", err))
		return nil, err
	}
	uc.browse.Invalidate(entity)
	slog.Info("mutate created", slog.String("entity", entity))
	return row, nil
}

func (uc *MutateUseCase) UpdateEntity(ctx context.Context, token, entity, id string, payload map[string]any) (domain.Row, error) {
	row, err := uc.directory.UpdateRow(ctx, token, entity, id, payload)
	if err != nil {
		slog.Warn("mutate update failed", slog.String("entity", entity), slog.String("resourceId", id), slog.Any("error", err))
		return nil, err
	}
	uc.browse.Invalidate(entity)
	slog.Info("mutate updated", slog.String("entity", entity), slog.String("resourceId", id))
	return row, nil
}

func (uc *MutateUseCase) DeleteEntity(ctx context.Context, token, entity, id string) error {
	if err := uc.directory.DeleteRow(ctx, token, entity, id); err != nil {
		slog.Warn("mutate delete failed", slog.String("entity", entity), slog.String("resourceId", id), slog.Any("error", err))
		return err
	}
	uc.browse.Invalidate(entity)
	slog.Info("mutate deleted", slog.String("entity", entity), slog.String("resourceId", id))
	return nil
}
