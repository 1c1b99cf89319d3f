package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
)

// infoRequestExpiryStore is the slice of the info request repository the job needs.
type infoRequestExpiryStore interface {
	GetExpiredOpen(ctx context.Context, limit int) ([]*entities.ComplianceInfoRequest, error)
	ExpireRequests(ctx context.Context, ids []uuid.UUID) error
}

// InfoRequestExpiryJob transitions overdue compliance info requests to expired
type InfoRequestExpiryJob struct {
	repo     infoRequestExpiryStore
	interval time.Duration
	stop     chan struct{}
}

func NewInfoRequestExpiryJob(repo infoRequestExpiryStore) *InfoRequestExpiryJob {
	return &InfoRequestExpiryJob{
		repo:     repo,
		interval: 15 * time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *InfoRequestExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting compliance info request expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Info request expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Info request expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredRequests(ctx)
		}
	}
}

func (j *InfoRequestExpiryJob) Stop() {
	close(j.stop)
}

func (j *InfoRequestExpiryJob) processExpiredRequests(ctx context.Context) {
	expired, err := j.repo.GetExpiredOpen(ctx, 100)
	if err != nil {
		log.Printf("❌ Error fetching overdue info requests: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	var ids []uuid.UUID
	for _, req := range expired {
		ids = append(ids, req.ID)
	}

	if err := j.repo.ExpireRequests(ctx, ids); err != nil {
		log.Printf("❌ Error expiring info requests: %v", err)
		return
	}

	log.Printf("✅ Expired %d overdue info requests", len(expired))
}
