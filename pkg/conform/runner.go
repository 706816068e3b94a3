package conform

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/msa-core/pkg/msa"
)

// Property is one universal law every instruction kernel is expected to
// satisfy (spec.md §8, "Testable properties") — lane independence,
// width truncation, idempotence of saturation, and so on. Check draws
// its own random inputs from rng and reports a failure detail on
// violation.
type Property struct {
	Name  string
	Check func(rng *rand.Rand) (ok bool, detail string)
}

// Failure records one property violation found during a run.
type Failure struct {
	Property string
	Trial    int64
	Detail   string
}

// Runner distributes property trials across a worker pool, in the
// shape of search/worker.go's WorkerPool: a fixed goroutine count
// pulling tasks from a channel, atomic counters for progress, and a
// ticker-driven status line for long runs.
type Runner struct {
	NumWorkers int

	mu       sync.Mutex
	Failures []Failure
	checked  atomic.Int64
	failed   atomic.Int64
}

// NewRunner returns a Runner with numWorkers goroutines, defaulting to
// runtime.NumCPU() when numWorkers <= 0.
func NewRunner(numWorkers int) *Runner {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Runner{NumWorkers: numWorkers}
}

// Stats returns the number of trials checked and the number that failed.
func (r *Runner) Stats() (checked, failed int64) {
	return r.checked.Load(), r.failed.Load()
}

type trialTask struct {
	prop  Property
	trial int64
	seed1 uint64
	seed2 uint64
}

// Run executes trialsPerProperty independent trials of each property,
// each with its own seeded generator so a failing trial is
// reproducible from (position of the property in props, trial index)
// alone. When verbose is set it reports progress every 5 seconds for
// long-running fuzz sessions. It returns once every trial has completed.
func (r *Runner) Run(props []Property, trialsPerProperty int64, verbose bool) {
	total := int64(len(props)) * trialsPerProperty
	ch := make(chan trialTask, total)
	for pi, p := range props {
		for t := int64(0); t < trialsPerProperty; t++ {
			ch <- trialTask{prop: p, trial: t, seed1: uint64(pi)*0x9E3779B97F4A7C15 + 1, seed2: uint64(t) + 1}
		}
	}
	close(ch)

	startTime := time.Now()
	done := make(chan struct{})
	if verbose {
		go r.reportProgress(startTime, total, done)
	}

	var wg sync.WaitGroup
	for i := 0; i < r.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range ch {
				r.runOne(task)
			}
		}()
	}
	wg.Wait()
	close(done)

	if verbose {
		checked, failed := r.Stats()
		fmt.Printf("  [%s] %d trials | %d failed | DONE\n",
			time.Since(startTime).Round(time.Millisecond), checked, failed)
	}
}

func (r *Runner) runOne(task trialTask) {
	rng := rand.New(rand.NewPCG(task.seed1, task.seed2))
	ok, detail := safeCheck(task.prop.Check, rng)
	r.checked.Add(1)
	if !ok {
		r.failed.Add(1)
		r.mu.Lock()
		r.Failures = append(r.Failures, Failure{Property: task.prop.Name, Trial: task.trial, Detail: detail})
		r.mu.Unlock()
	}
}

// safeCheck runs a property check, turning an unexpected *msa.Exception
// or msa.InvalidDF panic into a reported failure instead of crashing
// the worker goroutine; a property is expected to report inputs it
// deliberately wants to exercise as exceptions via msa.Guarded inside
// Check itself, so a panic reaching here is always a bug.
func safeCheck(check func(rng *rand.Rand) (bool, string), rng *rand.Rand) (ok bool, detail string) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			detail = fmt.Sprintf("panic: %v", rec)
		}
	}()
	return check(rng)
}

func (r *Runner) reportProgress(start time.Time, total int64, done chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			checked, failed := r.Stats()
			pct := float64(checked) / float64(total) * 100
			fmt.Printf("  [%s] %d/%d trials (%.1f%%) | %d failed\n",
				time.Since(start).Round(time.Second), checked, total, pct, failed)
		}
	}
}

// randomReg fills r with bytes drawn from rng, except that one call in
// four returns a whole register from FixedPatterns instead, so random
// trials still hit the values most likely to expose saturation and
// sign-extension bugs.
func randomReg(rng *rand.Rand) msa.Reg {
	var r msa.Reg
	if rng.IntN(4) == 0 {
		return FixedPatterns[rng.IntN(len(FixedPatterns))]
	}
	for i := range r {
		r[i] = byte(rng.IntN(256))
	}
	return r
}

// randomDF returns a uniformly random data format.
func randomDF(rng *rand.Rand) msa.DF {
	return msa.DF(rng.IntN(4))
}

// randomShiftAmount returns a plausible per-element shift amount: most
// trials stay within [0, width), occasionally probing beyond it to
// exercise the masking behavior shift kernels apply to oversized counts.
func randomShiftAmount(rng *rand.Rand, width int) uint64 {
	if rng.IntN(8) == 0 {
		return uint64(rng.IntN(64))
	}
	return uint64(rng.IntN(width))
}
