package services

import (
	"context"
	"sync"
	"time"

	"github.com/Loboo34/heliverse-api/database"
	"github.com/Loboo34/heliverse-api/models"
	"go.uber.org/zap"
)

// ActivityLog writes audit entries in the background. A failed write is
// logged and never surfaces to the caller.
type ActivityLog struct {
	store   database.ActivityStore
	log     *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewActivityLog(store database.ActivityStore, log *zap.Logger, timeout time.Duration) *ActivityLog {
	return &ActivityLog{
		store:   store,
		log:     log.Named("services.activity"),
		timeout: timeout,
	}
}

// Record queues an entry for action on recordID.
func (a *ActivityLog) Record(action, recordID, message string) {
	entry := models.ActivityLog{
		Action:    action,
		RecordID:  recordID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := a.store.InsertActivity(ctx, entry); err != nil {
			a.log.Warn("failed to log activity",
				zap.String("action", action),
				zap.String("record_id", recordID),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until every queued entry has been written or has failed.
func (a *ActivityLog) Wait() {
	a.wg.Wait()
}
