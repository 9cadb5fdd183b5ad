// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// fakeWorker is a test implementation of the Worker interface
// that tracks Start/Stop calls.
type fakeWorker struct {
	startCount int
	stopCount  int
}

func (f *fakeWorker) Start(context.Context) { f.startCount++ }
func (f *fakeWorker) Stop()                 { f.stopCount++ }

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &fakeWorker{}
	w2 := &fakeWorker{}
	w3 := &fakeWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*fakeWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Stop()

	expected := []int{3, 2, 1}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &fakeWorker{}
	w2 := &fakeWorker{}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*fakeWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Start(context.Context) {}
func (o *orderWorker) Stop()                 { *o.order = append(*o.order, o.id) }
