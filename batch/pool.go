package batch

import (
	"context"
	"sync"
	"time"

	"github.com/fabiofdsantos/palz/palz"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
)

// Mode selects what a batch does with each path.
type Mode int

const (
	Compress Mode = iota
	Decompress
)

func (m Mode) String() string {
	switch m {
	case Compress:
		return "compress"
	case Decompress:
		return "decompress"
	default:
		return "unknown"
	}
}

// WantsPalz reports whether the mode consumes .palz files.
func (m Mode) WantsPalz() bool {
	return m == Decompress
}

// Handler processes one path. dict is owned by the calling worker and is
// only valid for the duration of the call.
type Handler func(ctx context.Context, path string, dict *palz.Dictionary) (palz.Result, error)

// Outcome is the result of one path.
type Outcome struct {
	Path   string
	Worker int
	Result palz.Result
	Err    error
}

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Files       int
	Failed      int
	SourceBytes int64
	TargetBytes int64
	Interrupted bool
	Duration    time.Duration
	Failures    []Outcome
}

func (s *Summary) add(o Outcome) {
	s.Files++
	if o.Err != nil {
		s.Failed++
		s.Failures = append(s.Failures, o)
		return
	}
	s.SourceBytes += o.Result.SourceSize
	s.TargetBytes += o.Result.TargetSize
}

// Pool runs a Handler over paths with a fixed number of workers.
type Pool struct {
	workers int
	mode    Mode
	handle  Handler
	log     zerolog.Logger

	// OnResult, when set, is called once per path from the worker that
	// processed it. It must be safe for concurrent use.
	OnResult func(Outcome)
}

// NewPool returns a pool of workers goroutines running the codec for mode.
func NewPool(workers int, mode Mode, log zerolog.Logger) (*Pool, error) {
	handle, err := handlerFor(mode)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers, mode: mode, handle: handle, log: log}, nil
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

func handlerFor(mode Mode) (Handler, error) {
	switch mode {
	case Compress:
		return func(_ context.Context, path string, _ *palz.Dictionary) (palz.Result, error) {
			return palz.CompressFile(path)
		}, nil
	case Decompress:
		return func(_ context.Context, path string, dict *palz.Dictionary) (palz.Result, error) {
			dict.Restart()
			return palz.DecompressFile(path, "", dict)
		}, nil
	}
	return nil, ErrUnknownMode
}

// Run feeds paths through the queue and blocks until every worker has
// terminated. Failures are collected in the summary; cancelling ctx stops
// feeding and lets workers exit after their current file.
func (p *Pool) Run(ctx context.Context, paths []string) Summary {
	start := time.Now()
	q := NewQueue(p.workers)
	stop := context.AfterFunc(ctx, q.Interrupt)
	defer stop()

	var (
		mu      sync.Mutex
		summary Summary
	)
	record := func(o Outcome) {
		mu.Lock()
		summary.add(o)
		mu.Unlock()
		if p.OnResult != nil {
			p.OnResult(o)
		}
	}

	var wg conc.WaitGroup
	for id := range p.workers {
		wg.Go(func() { p.work(ctx, id, q, record) })
	}

	p.log.Debug().Int("workers", p.workers).Int("files", len(paths)).Str("mode", p.mode.String()).Msg("batch started")
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		if err := q.Enqueue(ctx, path); err != nil {
			p.log.Debug().Err(err).Msg("feeder stopped")
			break
		}
	}
	q.Stop()
	wg.Wait()

	summary.Interrupted = ctx.Err() != nil
	summary.Duration = time.Since(start)
	return summary
}

func (p *Pool) work(ctx context.Context, id int, q *Queue, record func(Outcome)) {
	log := p.log.With().Int("worker", id).Logger()
	dict := palz.NewDictionary()
	defer dict.Free()

	for ctx.Err() == nil {
		path, ok := q.Dequeue(ctx)
		if !ok {
			break
		}
		record(p.process(ctx, log, id, path, dict))
	}
	log.Debug().Msg("worker terminated")
}

// RunSerial processes paths one after another on the calling goroutine,
// reusing a single restarted dictionary.
func (p *Pool) RunSerial(ctx context.Context, paths []string) Summary {
	start := time.Now()
	var summary Summary
	dict := palz.NewDictionary()
	defer dict.Free()

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		o := p.process(ctx, p.log, 0, path, dict)
		summary.add(o)
		if p.OnResult != nil {
			p.OnResult(o)
		}
	}

	summary.Interrupted = ctx.Err() != nil
	summary.Duration = time.Since(start)
	return summary
}

func (p *Pool) process(ctx context.Context, log zerolog.Logger, id int, path string, dict *palz.Dictionary) Outcome {
	log.Debug().Str("path", path).Msg("processing")
	res, err := p.handle(ctx, path, dict)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("file failed")
	} else {
		log.Debug().Str("path", path).Float64("ratio", res.Ratio).Msg("file done")
	}
	return Outcome{Path: path, Worker: id, Result: res, Err: err}
}
