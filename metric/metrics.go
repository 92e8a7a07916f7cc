package metric

import (
	"sort"
	"sync"
)

//Accesses represents per path accessor invocation metrics
type Accesses struct {
	counts map[string]int
	mux    *sync.Mutex
}

//Add records accessor invocation for supplied path
func (m *Accesses) Add(path string) {
	if m == nil {
		return
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	m.counts[path]++
}

//Count returns number of accessor invocations for supplied path
func (m *Accesses) Count(path string) int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.counts[path]
}

//Total returns number of all accessor invocations
func (m *Accesses) Total() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	result := 0
	for _, count := range m.counts {
		result += count
	}
	return result
}

//Paths returns sorted recorded paths
func (m *Accesses) Paths() []string {
	m.mux.Lock()
	defer m.mux.Unlock()
	result := make([]string, 0, len(m.counts))
	for path := range m.counts {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}

//Clone returns metrics snapshot
func (m *Accesses) Clone() *Accesses {
	m.mux.Lock()
	defer m.mux.Unlock()
	result := NewAccesses()
	for path, count := range m.counts {
		result.counts[path] = count
	}
	return result
}

//NewAccesses creates accesses metrics
func NewAccesses() *Accesses {
	return &Accesses{
		counts: map[string]int{},
		mux:    &sync.Mutex{},
	}
}
