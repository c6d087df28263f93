package jobs

import (
	"abstract-portal/database"
	"abstract-portal/internal/domain/abstracts"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartStatsCron logs a submission snapshot on the given cron spec. Returns
// nil when no spec is configured; the caller just skips.
func StartStatsCron(spec string, logger *zap.Logger) *cron.Cron {
	if spec == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() { logSnapshot(logger) })
	if err != nil {
		logger.Warn("invalid STATS_CRON spec, snapshot job disabled", zap.String("spec", spec), zap.Error(err))
		return nil
	}

	c.Start()
	logger.Info("stats snapshot job scheduled", zap.String("spec", spec))
	return c
}

func logSnapshot(logger *zap.Logger) {
	var total, pending, underReview, accepted, published int64
	database.DB.Model(&abstracts.Abstract{}).Count(&total)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusPending).Count(&pending)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusUnderReview).Count(&underReview)
	database.DB.Model(&abstracts.Abstract{}).Where("status = ?", abstracts.StatusAccepted).Count(&accepted)
	database.DB.Model(&abstracts.Abstract{}).Where("published = ?", true).Count(&published)

	logger.Info("submission snapshot",
		zap.Int64("total", total),
		zap.Int64("pending", pending),
		zap.Int64("under_review", underReview),
		zap.Int64("accepted", accepted),
		zap.Int64("published", published),
	)
}
