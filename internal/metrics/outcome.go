package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
)

// Outcome maps a resolution error to its metric label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case errors.Is(err, domain.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, domain.ErrUnknownItem):
		return OutcomeUnknownItem
	case errors.Is(err, domain.ErrToolLevel),
		errors.Is(err, domain.ErrMachineToolsRequired),
		errors.Is(err, domain.ErrEyeglassesRequired):
		return OutcomeGated
	case errors.Is(err, domain.ErrMultipleOverride), errors.Is(err, domain.ErrNotCreatableWithOverrides):
		return OutcomeOverrideConflict
	default:
		return OutcomeInternal
	}
}

// ObserveResolution records one finished resolution
func ObserveResolution(kind domain.TargetKind, closureSize int, started time.Time, err error) {
	target := kind.String()
	ResolutionsTotal.WithLabelValues(Outcome(err), target).Inc()
	ResolutionDuration.WithLabelValues(target).Observe(time.Since(started).Seconds())
	if closureSize > 0 {
		ClosureRecipes.Observe(float64(closureSize))
	}
}

// ObserveReload records a catalog reload attempt
func ObserveReload(changed bool, recipes int, err error) {
	switch {
	case err != nil:
		CatalogReloads.WithLabelValues(ReloadFailed).Inc()
	case changed:
		CatalogReloads.WithLabelValues(ReloadApplied).Inc()
		CatalogRecipes.Set(float64(recipes))
	default:
		CatalogReloads.WithLabelValues(ReloadUnchanged).Inc()
	}
}
