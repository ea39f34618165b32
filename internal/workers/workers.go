package workers

type Workers struct {
	workers []Worker
}

// New assembles a Workers aggregate from the given workers. They run in the
// order passed.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
