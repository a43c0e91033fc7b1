package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueTicketReceipt = "jobs:ticket_receipt"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// TicketReceiptPayload asks the receipt worker to render and mail the PDF
// receipt for one ticket. ToEmail may be empty: the PDF is still generated
// so GET /api/tickets/:id/pdf can serve it.
type TicketReceiptPayload struct {
	TicketID string `json:"ticket_id"`
	ToEmail  string `json:"to_email,omitempty"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

// EnqueueTicketReceipt pushes a receipt job to Redis.
func (d *Dispatcher) EnqueueTicketReceipt(ctx context.Context, payload TicketReceiptPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: "ticket_receipt", Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueTicketReceipt, encoded).Err()
}

// WorkerHandlers bundles the job processors wired at the composition root.
type WorkerHandlers struct {
	Receipt *ReceiptWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the receipt queue.
// Each goroutine blocks on BRPOP, so an idle pool costs no CPU.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop, waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueTicketReceipt).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, handlers, result[1])
		}
	}
}

func processJob(ctx context.Context, handlers *WorkerHandlers, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	switch job.Type {
	case "ticket_receipt":
		if handlers.Receipt != nil {
			handlers.Receipt.Process(ctx, job.Payload)
		}
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type")
	}
}
