package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	m := New()

	snap := m.GetSnapshot()
	if snap.RequestsTotal != 0 || snap.ProjectsImported != 0 || snap.ItemsCreated != 0 {
		t.Errorf("expected zeroed counters, got %+v", snap)
	}
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestIncRequestsCountsServerErrors(t *testing.T) {
	m := New()

	m.IncRequests(200)
	m.IncRequests(404)
	m.IncRequests(500)

	snap := m.GetSnapshot()
	if snap.RequestsTotal != 3 {
		t.Errorf("RequestsTotal = %d, want 3", snap.RequestsTotal)
	}
	if snap.RequestErrors != 1 {
		t.Errorf("RequestErrors = %d, want 1", snap.RequestErrors)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New()
	const workers = 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncItemsCreated()
			m.IncProjectsCreated()
			m.AddTasksRescheduled(2)
		}()
	}
	wg.Wait()

	snap := m.GetSnapshot()
	if snap.ItemsCreated != workers || snap.ProjectsCreated != workers {
		t.Errorf("lost increments: %+v", snap)
	}
	if snap.TasksRescheduled != 2*workers {
		t.Errorf("TasksRescheduled = %d, want %d", snap.TasksRescheduled, 2*workers)
	}
}
