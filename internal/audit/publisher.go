package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"courtcal/pkg/requestcontext"
)

// Publisher captures structured audit records. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily. When a Kafka
// client is provided, each record is also mirrored onto the configured topic;
// mirror failures are logged and never affect the result.
type Publisher struct {
	store  Store
	mirror *kgo.Client
	logger *slog.Logger
}

func NewPublisher(store Store, mirror *kgo.Client, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, mirror: mirror, logger: logger}
}

func (p *Publisher) Emit(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = requestcontext.Now(ctx)
	}

	err := p.store.Append(ctx, rec)

	if p.mirror != nil {
		if b, mErr := json.Marshal(rec); mErr == nil {
			p.mirror.Produce(ctx, &kgo.Record{Key: []byte(rec.FilePath), Value: b},
				func(_ *kgo.Record, pErr error) {
					if pErr != nil {
						p.logger.Warn("audit mirror produce failed",
							"record_id", rec.ID,
							"error", pErr,
						)
					}
				})
		}
	}

	return err
}

func (p *Publisher) ListByFile(ctx context.Context, filePath string) ([]Record, error) {
	return p.store.ListByFile(ctx, filePath)
}
