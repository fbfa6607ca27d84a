package repository

import (
	"context"
	"time"

	"DeceptionIndex/internal/domain/models"
	domrepo "DeceptionIndex/internal/domain/repository"
	pkgkafka "DeceptionIndex/pkg/kafka"
)

// batchProducer is satisfied by *kafka.Producer.
type batchProducer interface {
	PublishBatch(ctx context.Context, messages []pkgkafka.Message) error
	Close() error
}

// ScoreMessage is the JSON payload published per scored pitcher.
type ScoreMessage struct {
	RunID        string            `json:"run_id"`
	ScoredAt     time.Time         `json:"scored_at"`
	Rank         int               `json:"rank"`
	Name         string            `json:"name"`
	PlayerID     int               `json:"player_id"`
	Score        float64           `json:"deception_score"`
	Raw          models.Components `json:"raw"`
	Normalized   models.Components `json:"normalized"`
	TotalPitches int               `json:"total_pitches"`
}

// KafkaScorePublisher publishes one message per scored pitcher, keyed by name.
type KafkaScorePublisher struct {
	producer batchProducer
}

func NewKafkaScorePublisher(p batchProducer) *KafkaScorePublisher {
	return &KafkaScorePublisher{producer: p}
}

func (k *KafkaScorePublisher) Save(ctx context.Context, runID string, rows []models.ScoredPitcher) error {
	now := time.Now().UTC()
	msgs := make([]pkgkafka.Message, 0, len(rows))
	for i, r := range rows {
		msgs = append(msgs, pkgkafka.Message{
			Key: []byte(r.Name),
			Value: ScoreMessage{
				RunID:        runID,
				ScoredAt:     now,
				Rank:         i + 1,
				Name:         r.Name,
				PlayerID:     r.PlayerID,
				Score:        r.Score,
				Raw:          r.Raw,
				Normalized:   r.Normalized,
				TotalPitches: r.TotalPitches,
			},
		})
	}
	return k.producer.PublishBatch(ctx, msgs)
}

func (k *KafkaScorePublisher) Close() error { return k.producer.Close() }

var _ domrepo.ScoreSink = (*KafkaScorePublisher)(nil)
