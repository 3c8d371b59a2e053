package video

import (
	"sync"

	"github.com/cyclopcam/logs"
)

//Queue tags uploaded videos in the background. Each video is an independent job, handled start to end
//by a single worker.
type Queue struct {
	log     logs.Log
	jobs    chan string
	process func(name string) error
	wg      sync.WaitGroup

	lock   sync.Mutex
	closed bool
}

//NewQueue starts workers goroutines that run process on every submitted video name. At most backlog
//videos wait for a free worker.
func NewQueue(log logs.Log, workers, backlog int, process func(name string) error) *Queue {
	if workers < 1 {
		workers = 1
	}
	q := &Queue{
		log:     log,
		jobs:    make(chan string, backlog),
		process: process,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for name := range q.jobs {
		q.log.Infof("Queue: Tagging '%s'", name)
		if err := q.process(name); err != nil {
			q.log.Errorf("Queue: Tagging '%s' failed, got '%v'", name, err)
			continue
		}
		q.log.Infof("Queue: '%s' is ready", name)
	}
}

//Submit adds a video to the queue. It returns false when the backlog is full or the queue is closed.
func (q *Queue) Submit(name string) bool {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.closed {
		return false
	}
	select {
	case q.jobs <- name:
		return true
	default:
		return false
	}
}

//Close stops accepting videos and waits for the queued ones to finish
func (q *Queue) Close() {
	q.lock.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.lock.Unlock()
	q.wg.Wait()
}
