package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ayn2op/vlist/window"
	"github.com/google/uuid"
)

// maxSequence is the largest sequence number a CounterIDs hands out before
// wrapping back to 1.
const maxSequence = 999999

// IDGenerator hands out item identifiers.
type IDGenerator interface {
	NextID() string
}

// CounterIDs generates identifiers from the current time in milliseconds
// followed by a zero-padded sequence number.
type CounterIDs struct {
	now func() time.Time
	seq int
}

// NewCounterIDs returns a generator starting after seq.
func NewCounterIDs(seq int) *CounterIDs {
	return &CounterIDs{now: time.Now, seq: seq % maxSequence}
}

func (c *CounterIDs) NextID() string {
	if c.seq == maxSequence {
		c.seq = 0
	}
	c.seq++
	return fmt.Sprintf("%d%06d", c.now().UnixMilli(), c.seq)
}

// UUIDs generates random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NextID() string {
	return uuid.NewString()
}

// entry is a demo item. Its body length varies so rows wrap to different
// heights.
type entry struct {
	id     string
	name   string
	body   string
	accent bool
}

func (e entry) ID() string {
	return e.id
}

var words = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do
eiusmod tempor incididunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrud
exercitation ullamco laboris nisi aliquip ex ea commodo consequat`)

// Source creates demo items.
type Source struct {
	ids  IDGenerator
	rand *rand.Rand
	n    int
}

// NewSource returns a source drawing identifiers from ids and body lengths
// from a generator seeded with seed.
func NewSource(ids IDGenerator, seed uint64) *Source {
	return &Source{
		ids:  ids,
		rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next returns a new item.
func (s *Source) Next() window.Item {
	i := s.n
	s.n++

	count := 3 + s.rand.IntN(40)
	body := make([]string, count)
	for w := range body {
		body[w] = words[s.rand.IntN(len(words))]
	}
	return entry{
		id:     s.ids.NextID(),
		name:   fmt.Sprintf("Item %d", i),
		body:   strings.Join(body, " "),
		accent: i%2 == 0,
	}
}

// Items returns n new items.
func (s *Source) Items(n int) []window.Item {
	items := make([]window.Item, 0, max(n, 0))
	for range n {
		items = append(items, s.Next())
	}
	return items
}
