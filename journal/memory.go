package journal

import (
	"context"
	"sync"
	"time"

	"github.com/ducka/go-coracle/utils"
)

type MemoryJournal struct {
	mu      sync.RWMutex
	streams map[string]memoryStreamEntry
	done    chan struct{}
}

var _ Journal = (*MemoryJournal)(nil)

func NewMemoryJournal() *MemoryJournal {
	m := &MemoryJournal{
		streams: make(map[string]memoryStreamEntry),
		done:    make(chan struct{}),
	}

	// Periodically purge expired streams
	go func() {
		for {
			select {
			case <-m.done:
				return
			case now := <-time.After(10 * time.Second):
				m.mu.Lock()
				for id, entry := range m.streams {
					if entry.ExpireOn != nil && entry.ExpireOn.Before(now) {
						delete(m.streams, id)
					}
				}
				m.mu.Unlock()
			}
		}
	}()

	return m
}

// Close stops the background purge.
func (m *MemoryJournal) Close() {
	close(m.done)
}

func (m *MemoryJournal) Append(ctx context.Context, streamID string, records []Record, options ...AppendOption) error {
	opts := applyOptions(appendOptions{}, options)

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.streams[streamID]
	entry.Records = append(entry.Records, records...)
	if opts.Expiry != nil {
		entry.ExpireOn = utils.ToPtr(time.Now().Add(*opts.Expiry))
	}
	m.streams[streamID] = entry

	return nil
}

func (m *MemoryJournal) Load(ctx context.Context, streamID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.streams[streamID]
	if !ok {
		return nil, nil
	}

	// Don't return expired streams
	if entry.ExpireOn != nil && entry.ExpireOn.Before(time.Now()) {
		return nil, nil
	}

	records := make([]Record, len(entry.Records))
	copy(records, entry.Records)
	return records, nil
}

func (m *MemoryJournal) Delete(ctx context.Context, streamID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.streams, streamID)
	return nil
}

type memoryStreamEntry struct {
	Records  []Record
	ExpireOn *time.Time
}
