package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rows [][]string
	err  error
}

func (s *stubSource) Fetch(ctx context.Context) ([][]string, error) {
	return s.rows, s.err
}

func TestRefreshOncePublishesSnapshot(t *testing.T) {
	source := &stubSource{rows: [][]string{
		{"PO No", "PO Date", "Item Code"},
		{"PO-1", "2025-04-20", "ITM-1"},
		{"PO-2", "2025-04-21", "ITM-2"},
	}}

	var got Snapshot
	poller := NewPoller(source, 0, func(s Snapshot) { got = s })

	require.NoError(t, poller.RefreshOnce(context.Background()))
	require.Len(t, got.Records, 2)
	assert.Equal(t, "PO-1", got.Records[0].PONo)
	assert.False(t, got.FetchedAt.IsZero())
}

func TestRefreshOnceFetchError(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}

	published := false
	poller := NewPoller(source, 0, func(Snapshot) { published = true })

	err := poller.RefreshOnce(context.Background())
	require.Error(t, err)
	assert.False(t, published, "a failed fetch must not publish a snapshot")
}

func TestNewPollerDefaultInterval(t *testing.T) {
	poller := NewPoller(&stubSource{}, 0, nil)
	assert.Equal(t, defaultPollInterval, poller.interval)
}

func TestRefreshOnceNilSubscriber(t *testing.T) {
	poller := NewPoller(&stubSource{rows: [][]string{{"header"}}}, 0, nil)
	assert.NoError(t, poller.RefreshOnce(context.Background()))
}
