package services

import (
	"log/slog"
	"time"

	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
	"site.ateliermosaique.fr/internal/config"
)

type Services struct {
	Feed      *FeedService
	ScrollCap *ScrollCapService
}

func New(
	logger *slog.Logger,
	config config.Config,
	feedClient feed.Client,
) *Services {
	return &Services{
		Feed: &FeedService{
			logger: logger,
			client: feedClient,
			now:    time.Now,
		},
		ScrollCap: &ScrollCapService{
			maxVisibleCards: config.PastVisibleCards,
		},
	}
}
