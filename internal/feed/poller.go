// backend-go/internal/feed/poller.go
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/sheet"
)

// Snapshot is one immutable record list produced by a fetch cycle.
type Snapshot struct {
	Records   []domain.PORecord
	FetchedAt time.Time
}

// Poller refetches the feed on an interval and hands each fresh snapshot to a
// subscriber. A failed cycle is logged and skipped; the previous snapshot
// stays in effect until the next successful fetch.
type Poller struct {
	source   Source
	interval time.Duration
	onUpdate func(Snapshot)
}

const defaultPollInterval = 10 * time.Minute

// NewPoller creates a poller. Intervals below one second fall back to the
// feed's default ten-minute cadence.
func NewPoller(source Source, interval time.Duration, onUpdate func(Snapshot)) *Poller {
	if interval < time.Second {
		interval = defaultPollInterval
	}
	return &Poller{
		source:   source,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Run fetches once immediately, then on every tick until the context is
// cancelled.
func (p *Poller) Run(ctx context.Context) {
	if err := p.RefreshOnce(ctx); err != nil {
		log.Error().Err(err).Msg("initial feed fetch failed")
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("feed poller stopping")
			return
		case <-ticker.C:
			if err := p.RefreshOnce(ctx); err != nil {
				log.Error().Err(err).Msg("feed refresh failed, keeping previous snapshot")
			}
		}
	}
}

// RefreshOnce runs a single fetch-parse-publish cycle.
func (p *Poller) RefreshOnce(ctx context.Context) error {
	rows, err := p.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("feed fetch failed: %w", err)
	}

	records := sheet.ParseRows(rows)
	snapshot := Snapshot{Records: records, FetchedAt: time.Now()}

	log.Info().Int("records", len(records)).Msg("feed snapshot refreshed")
	if p.onUpdate != nil {
		p.onUpdate(snapshot)
	}
	return nil
}
