package workers

type Workers struct {
	workers []Worker
}

// NewWorkers bundles the client's background workers in start order.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
