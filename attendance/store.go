package attendance

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"attendance_dashboard/models"
)

// Fetcher retrieves the full attendance list from upstream.
type Fetcher interface {
	FetchAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
}

type StoreStatus struct {
	Records   int
	Skipped   int
	Loaded    bool
	LoadedAt  time.Time
	LastError string
}

// Store keeps the last successfully fetched attendance list in memory.
// A failed reload leaves the previous list in place.
type Store struct {
	fetcher Fetcher
	group   singleflight.Group

	mu       sync.RWMutex
	records  []Record
	skipped  int
	loadedAt time.Time
	lastErr  error
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Load fetches the list and replaces the snapshot. Concurrent callers share
// one upstream request. A caller whose ctx ends stops waiting, but the shared
// fetch runs on, bounded by the upstream client timeout. It returns the
// number of records now held.
func (s *Store) Load(ctx context.Context) (int, error) {
	ch := s.group.DoChan("attendance", func() (interface{}, error) {
		return s.load(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int), nil
	}
}

func (s *Store) load(ctx context.Context) (int, error) {
	rows, err := s.fetcher.FetchAttendance(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return 0, fmt.Errorf("error fetching attendance: %w", err)
	}

	records := make([]Record, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		record, err := NewRecord(row)
		if err != nil {
			log.Printf("Skipping attendance record %d: %v", i, err)
			skipped++
			continue
		}
		records = append(records, record)
	}

	s.mu.Lock()
	s.records = records
	s.skipped = skipped
	s.loadedAt = time.Now()
	s.lastErr = nil
	s.mu.Unlock()

	log.Printf("Loaded %d attendance records (%d skipped)", len(records), skipped)
	return len(records), nil
}

// Snapshot returns the current list. Callers must not modify it.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Store) Status() StoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := StoreStatus{
		Records:  len(s.records),
		Skipped:  s.skipped,
		Loaded:   !s.loadedAt.IsZero(),
		LoadedAt: s.loadedAt,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}
