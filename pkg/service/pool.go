package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// defaultWorkers bounds concurrent provider calls when the caller does
// not specify a pool size.
const defaultWorkers = 4

// Outcome pairs a request's position in the submitted slice with its
// result. Exactly one of Response and Err is set.
type Outcome struct {
	Index    int
	Response *Response
	Err      error
}

// TranslateEach runs a slice of requests through the pipeline with a
// bounded worker pool. Results keep the positional order of the input
// and one request's failure never affects the others. The context is
// shared by every worker; cancelling it aborts in-flight provider
// calls.
func (p *Pipeline) TranslateEach(ctx context.Context, reqs []Request, workers int) []Outcome {
	outcomes := make([]Outcome, len(reqs))
	if len(reqs) == 0 {
		return outcomes
	}

	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	p.logger.WithFields(logrus.Fields{
		"requests": len(reqs),
		"workers":  workers,
	}).Debug("Starting batch translation")

	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				resp, err := p.Translate(ctx, reqs[idx])
				outcomes[idx] = Outcome{Index: idx, Response: resp, Err: err}
			}
		}()
	}

	for idx := range reqs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
