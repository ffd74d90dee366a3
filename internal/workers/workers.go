package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates ws; nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	workers := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			workers = append(workers, w)
		}
	}
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
