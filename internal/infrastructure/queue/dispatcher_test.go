package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nominasoft/hr-system/internal/core/ports"
)

type recordingProcessor struct {
	mu   sync.Mutex
	jobs []ports.PayrollJob
	done chan struct{}
	want int
}

func newRecordingProcessor(want int) *recordingProcessor {
	return &recordingProcessor{done: make(chan struct{}), want: want}
}

func (r *recordingProcessor) Process(_ context.Context, job ports.PayrollJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	if len(r.jobs) == r.want {
		close(r.done)
	}
	return nil
}

func TestDispatcherProcessesEnqueuedJobs(t *testing.T) {
	const jobs = 20
	processor := newRecordingProcessor(jobs)
	d := NewDispatcher(4, processor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < jobs; i++ {
		d.Enqueue(ports.PayrollJob{
			CompanyID:  "company_1",
			EmployeeID: "emp_" + strconv.Itoa(i),
			Period:     "2026-02",
		})
	}

	select {
	case <-processor.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for jobs")
	}

	processor.mu.Lock()
	defer processor.mu.Unlock()
	seen := make(map[string]bool, jobs)
	for _, job := range processor.jobs {
		seen[job.EmployeeID] = true
	}
	if len(seen) != jobs {
		t.Fatalf("processed %d distinct employees, want %d", len(seen), jobs)
	}
}

func TestDispatcherShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())

	for _, id := range []string{"emp_1", "emp_2", "64f1c0ffee", ""} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shardIndex(%q) = %d, want %d", id, got, first)
			}
		}
		if first < 0 || first >= 8 {
			t.Fatalf("shardIndex(%q) = %d out of range", id, first)
		}
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
