package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nominasoft/hr-system/internal/api/metrics"
	"github.com/nominasoft/hr-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes payroll jobs to a fixed set of workers using consistent
// hashing on the employee id, so repeated runs for the same employee are
// processed in order.
type Dispatcher struct {
	workers   []chan ports.PayrollJob
	processor ports.PayrollProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.PayrollProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.PayrollJob, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.PayrollJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its employee id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.PayrollJob) {
	idx := d.shardIndex(job.EmployeeID)
	d.workers[idx] <- job
	metrics.PayrollQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an employee id deterministically to a worker index.
func (d *Dispatcher) shardIndex(employeeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(employeeID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.PayrollJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.processor.Process(ctx, job); err != nil {
				metrics.PayrollJobsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("employee_id", job.EmployeeID).
					Str("period", job.Period).
					Int("worker_id", id).
					Msg("payroll job failed")
			} else {
				metrics.PayrollJobsTotal.WithLabelValues("ok").Inc()
			}
			metrics.PayrollQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
