// Command golang is a mutex contention workload: every worker goroutine hammers one lock.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

func main() {
	workers := flag.Int("workers", envInt("WL_WORKERS", 8), "number of goroutines contending for the lock")
	holdUS := flag.Int("hold-us", envInt("WL_HOLD_US", 0), "microseconds to spin while holding the lock")
	runFor := flag.Duration("for", 0, "stop after this long (0 runs until killed)")
	flag.Parse()

	if *workers <= 0 {
		fmt.Fprintln(os.Stderr, "workers must be > 0")
		os.Exit(1)
	}

	var (
		mu    sync.Mutex
		total uint64
		wg    sync.WaitGroup
		hold  = time.Duration(*holdUS) * time.Microsecond
		done  = make(chan struct{})
	)

	if *runFor > 0 {
		time.AfterFunc(*runFor, func() { close(done) })
	}

	for range *workers {
		wg.Go(func() {
			for {
				select {
				case <-done:
					return
				default:
				}
				mu.Lock()
				total++
				if hold > 0 {
					spin(hold)
				}
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	fmt.Printf("acquisitions=%d\n", total)
}

func envInt(name string, fallback int) int {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid %s: %q\n", name, value)
		os.Exit(1)
	}
	return n
}

// spin busy-waits so the lock is held on-CPU rather than parked.
func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) { //nolint:revive // busy wait
	}
}
