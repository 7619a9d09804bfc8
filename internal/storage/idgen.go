package storage

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator mints record identifiers from the wall clock: the decimal
// string of milliseconds since epoch. Calls that land in the same
// millisecond get a "-<n>" counter suffix so ids stay unique in-process.
type IDGenerator struct {
	mu     sync.Mutex
	now    func() time.Time
	lastMs int64
	seq    int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.lastMs {
		// Same millisecond (or a clock step backwards): disambiguate with
		// the counter instead of handing out a duplicate.
		g.seq++
		return strconv.FormatInt(g.lastMs, 10) + "-" + strconv.Itoa(g.seq)
	}

	g.lastMs = ms
	g.seq = 0
	return strconv.FormatInt(ms, 10)
}
