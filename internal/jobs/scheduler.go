package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"rheumassoc/api/internal/cache"
	"rheumassoc/api/internal/repository"
)

// Scheduler runs the periodic view-count flush. Views are counted in redis
// on each read and folded into the news table here, so the hot path never
// writes to postgres.
type Scheduler struct {
	cron  *cron.Cron
	views *cache.ViewCounter
	news  *repository.NewsRepository
	log   zerolog.Logger
}

func NewScheduler(views *cache.ViewCounter, news *repository.NewsRepository, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		views: views,
		news:  news,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */1 * * * *", s.flushViews); err != nil { // every minute
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.CancelFunc {
	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		s.cron.Stop()
		cancel()
	}()
	return cancel
}

func (s *Scheduler) flushViews() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := s.views.Drain(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("drain view counters failed")
		return
	}

	for newsID, delta := range counts {
		if err := s.news.AddViews(ctx, newsID, delta); err != nil {
			s.log.Error().Err(err).Int64("news_id", newsID).Msg("flush views failed")
		}
	}
}
