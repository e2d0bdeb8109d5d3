package service

import (
	"math/rand"
	"sync"
	"time"
)

// MaxOrderNumberAttempts bounds the regenerate-on-collision loop in Create.
const MaxOrderNumberAttempts = 3

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderNumberGenerator produces order numbers shaped
// <14-digit UTC timestamp>-<4 uppercase alphanumerics>. The timestamp keeps
// numbers roughly sortable, the suffix separates same-second orders.
// One generator is shared by all request goroutines; the mutex guards the
// rng state.
type OrderNumberGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewOrderNumberGeneratorWithSeed(seed int64) *OrderNumberGenerator {
	return &OrderNumberGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *OrderNumberGenerator) Generate(now time.Time) string {
	suffix := make([]byte, 4)
	g.mu.Lock()
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[g.rnd.Intn(len(orderNumberAlphabet))]
	}
	g.mu.Unlock()
	return now.UTC().Format("20060102150405") + "-" + string(suffix)
}
