package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Goroutines int
	Duration   time.Duration
	Playouts   int
	Merges     int
}

type Collector interface {
	Start(goroutines int)
	AddPlayout()
	AddMerge()
	Complete() RunMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	playouts   atomic.Int32
	merges     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.playouts.Store(0)
	m.merges.Store(0)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) AddMerge() {
	m.merges.Add(1)
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Playouts:   int(m.playouts.Load()),
		Merges:     int(m.merges.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int) {}
func (m *dummyCollector) AddPlayout()          {}
func (m *dummyCollector) AddMerge()            {}
func (m *dummyCollector) Complete() RunMetric  { return RunMetric{} }
