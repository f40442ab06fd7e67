package usecase

import (
	"context"
	"time"

	"condoYaAdmin/internal/modules/console/application/port"
	"condoYaAdmin/internal/modules/console/domain"
)

const (
	reportReservationsEntity = "reservations"
	reportAreasEntity        = "common-areas"
)

// UsageReportUseCase assembles the usage report from bulk reservation and
// common-area fetches; all aggregation happens console-side.
type UsageReportUseCase struct {
	directory port.Directory
	now       func() time.Time
}

func NewUsageReportUseCase(directory port.Directory) *UsageReportUseCase {
	return &UsageReportUseCase{directory: directory, now: time.Now}
}

func (uc *UsageReportUseCase) Execute(ctx context.Context, token string) (domain.UsageReport, error) {
	reservations, err := uc.directory.ListRows(ctx, token, reportReservationsEntity)
	if err != nil {
		return domain.UsageReport{}, err
	}
	areas, err := uc.directory.ListRows(ctx, token, reportAreasEntity)
	if err != nil {
		return domain.UsageReport{}, err
	}
	return domain.BuildUsageReport(reservations, areas, uc.now()), nil
}
