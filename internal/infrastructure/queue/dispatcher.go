package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit records to a fixed set of workers using consistent
// hashing on the clinic id, guaranteeing per-clinic write ordering. Audit
// persistence stays off the request path: guards enqueue and move on.
type Dispatcher struct {
	workers []chan domain.AuditRecord
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditRecord, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its clinic id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(record domain.AuditRecord) {
	d.workers[d.shardIndex(record.ClinicID)] <- record
}

// shardIndex maps a clinic id deterministically to a worker index. Records
// without a clinic id (platform-level actions) all share one shard's
// ordering.
func (d *Dispatcher) shardIndex(clinicID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clinicID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case record, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Record(ctx, &record); err != nil {
				d.log.Error().Err(err).
					Str("actor_id", record.ActorID).
					Str("clinic_id", record.ClinicID).
					Int("worker_id", id).
					Msg("audit record write failed")
			}
		}
	}
}
