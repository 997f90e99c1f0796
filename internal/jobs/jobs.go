// Package jobs runs the periodic CRM work: the bulk sync of owners, bookings
// and maintenance tickets, then a retry pass over the CRM outbox.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"rvconsign/internal/domain/crm"
)

// CRMSyncer is the part of the CRM service the jobs drive.
type CRMSyncer interface {
	BulkSync(ctx context.Context) (*crm.BulkResult, error)
	RetryOutbox(ctx context.Context) (*crm.RetryResult, error)
}

// RunCRMSync runs one bulk sync followed by one outbox retry pass. A failed
// bulk sync does not stop the retry pass.
func RunCRMSync(ctx context.Context, syncer CRMSyncer) error {
	bulk, bulkErr := syncer.BulkSync(ctx)
	if bulkErr != nil {
		log.Printf("crm_bulk_sync_failed err=%v", bulkErr)
	} else {
		log.Printf("crm_bulk_sync owners=%+v bookings=%+v maintenance=%+v",
			bulk.Owners, bulk.Bookings, bulk.Maintenance)
	}

	retry, retryErr := syncer.RetryOutbox(ctx)
	if retryErr != nil {
		log.Printf("crm_outbox_retry_failed err=%v", retryErr)
	} else {
		log.Printf("crm_outbox_retry attempted=%d succeeded=%d failed=%d dead=%d",
			retry.Attempted, retry.Succeeded, retry.Failed, retry.Dead)
	}

	if bulkErr != nil {
		return fmt.Errorf("bulk sync: %w", bulkErr)
	}
	if retryErr != nil {
		return fmt.Errorf("outbox retry: %w", retryErr)
	}
	return nil
}

// Scheduler runs RunCRMSync on a cron spec in UTC.
type Scheduler struct {
	cron    *cron.Cron
	syncer  CRMSyncer
	timeout time.Duration
}

// NewScheduler parses a standard five-field spec (or a descriptor such as
// "@every 15m") and registers the CRM job. Overlapping runs are skipped.
func NewScheduler(spec string, syncer CRMSyncer, timeout time.Duration) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	s := &Scheduler{cron: c, syncer: syncer, timeout: timeout}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid CRM_SYNC_CRON %q: %w", spec, err)
	}
	log.Printf("crm sync job registered spec=%q", spec)
	return s, nil
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_ = RunCRMSync(ctx, s.syncer)
}

func (s *Scheduler) Start() {
	log.Println("starting cron scheduler")
	s.cron.Start()
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("cron scheduler stopped")
}

// Next is the next scheduled run, zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
