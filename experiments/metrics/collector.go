package metrics

import (
	"time"
)

type SearchMetric struct {
	Policy   string
	Depth    int
	Duration time.Duration
	Nodes    int // Interior nodes expanded, root included
	Leaves   int // Evaluation function calls
	Prunes   int // Alpha-beta cutoffs that skipped at least one sibling
}

type MoveMetric struct {
	Step  int
	Agent int
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Win        bool
	Lose       bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector counts the work done by one search at a time. Searches are
// single threaded, so collectors are not safe for concurrent use.
type Collector interface {
	Start(policy string, depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	policy    string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(policy string, depth int) {
	m.startTime = time.Now()
	m.policy = policy
	m.depth = depth
	m.nodes = 0
	m.leaves = 0
	m.prunes = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Policy:   m.policy,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Prunes:   m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(policy string, depth int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddLeaf()                       {}
func (m *dummyCollector) AddPrune()                      {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
