package usecase

import (
	"context"
	"errors"
	"log/slog"

	"condoYaAdmin/internal/modules/console/application/port"
	"condoYaAdmin/internal/modules/console/domain"
)

// BrowseUseCase serves the list and detail screens. Rows are fetched from the
// backend in bulk and every table operation (search, sort, page) runs locally
// over the fetched set.
type BrowseUseCase struct {
	directory port.Directory
	cache     *snapshotCache
}

func NewBrowseUseCase(directory port.Directory) *BrowseUseCase {
	return &BrowseUseCase{directory: directory, cache: newSnapshotCache()}
}

// ListEntity returns the table page for entity under query. On backend failure
// the last good snapshot, when present, keeps the screen alive.
func (uc *BrowseUseCase) ListEntity(ctx context.Context, token, entity string, query domain.PagedQuery) (domain.TablePage, error) {
	rows, err := uc.directory.ListRows(ctx, token, entity)
	switch {
	case errors.Is(err, port.ErrUnsupported):
		slog.Warn("browse list entity unsupported", slog.String("entity", entity))
		return domain.TablePage{}, err
	case errors.Is(err, port.ErrUnauthorized), errors.Is(err, port.ErrForbidden):
		return domain.TablePage{}, err
	case err != nil:
		slog.Error("browse list fetch failed", slog.String("entity", entity), slog.Any("error", err))
		if cached, fetchedAt, ok := uc.cache.rows(entity); ok {
			slog.Info("browse serving cached rows", slog.String("entity", entity), slog.Time("fetchedAt", fetchedAt))
			return domain.ApplyQuery(cached, query), nil
		}
		return domain.TablePage{}, err
	default:
		uc.cache.setRows(entity, rows)
	}

	return domain.ApplyQuery(rows, query), nil
}

// GetEntity returns one backend record for a detail or edit screen.
func (uc *BrowseUseCase) GetEntity(ctx context.Context, token, entity, id string) (domain.Row, error) {
	row, err := uc.directory.GetRow(ctx, token, entity, id)
	switch {
	case errors.Is(err, port.ErrNotFound):
		uc.cache.dropItem(entity, id)
		return nil, err
	case errors.Is(err, port.ErrUnsupported), errors.Is(err, port.ErrUnauthorized), errors.Is(err, port.ErrForbidden):
		return nil, err
	case err != nil:
		slog.Error("browse detail fetch failed", slog.String("entity", entity), slog.String("resourceId", id), slog.Any("error", err))
		if cached, fetchedAt, ok := uc.cache.row(entity, id); ok {
			slog.Info("browse serving cached detail", slog.String("entity", entity), slog.String("resourceId", id), slog.Time("fetchedAt", fetchedAt))
			return cached, nil
		}
		return nil, err
	default:
		uc.cache.setRow(entity, id, row)
	}

	return row, nil
}

// Invalidate drops cached snapshots for entity. Mutations and backend change
// events both funnel through here.
func (uc *BrowseUseCase) Invalidate(entity string) {
	uc.cache.invalidate(entity)
}
