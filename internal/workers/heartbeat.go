// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
)

type heartbeatWorker struct {
	source   ConnectionSource
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHeartbeatWorker creates a worker that pings the live push connection on
// a ticker, keeping intermediaries from culling the idle socket. Ticks with
// no connection are skipped; a failed ping is only logged, since the
// transport manager detects the drop and redials on its own. If interval is
// zero or negative it defaults to 30 seconds.
func NewHeartbeatWorker(source ConnectionSource, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &heartbeatWorker{source: source, interval: interval, logger: log}
}

// Start implements Worker. It stops any previously running loop first.
func (w *heartbeatWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.beat()
			}
		}
	}()
}

// Stop implements Worker. It cancels the loop's context and blocks until the
// goroutine has fully exited. Safe to call when the worker is not running.
func (w *heartbeatWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *heartbeatWorker) beat() {
	conn := w.source.Connection()
	if conn == nil {
		return
	}

	if err := conn.Ping(); err != nil {
		w.logger.Debug().Err(err).Msg("heartbeat ping failed")
	}
}
