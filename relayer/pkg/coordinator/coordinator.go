package coordinator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Leg is one side of a cross-chain swap pair: an escrow locked under a
// hashlock on a named chain.
type Leg struct {
	Chain    string
	SwapID   string
	Hashlock [32]byte

	// Timelock is the unix second after which the leg refunds and a claim
	// is pointless
	Timelock uint64
}

// Claimer submits a claim transaction for a leg on one chain.
type Claimer interface {
	Chain() string
	Claim(ctx context.Context, swapID string, preimage [32]byte) error
}

// Coordinator pairs swap legs by hashlock and propagates revealed
// preimages: once any leg of a pair is claimed, every counterpart leg on
// the other chains is claimed with the same preimage.
type Coordinator struct {
	logger   *zap.Logger
	claimers map[string]Claimer

	mu      sync.Mutex
	pending map[[32]byte][]Leg
	secrets map[[32]byte][32]byte
}

// New creates a coordinator with no registered claimers.
func New(logger *zap.Logger) *Coordinator {
	return &Coordinator{
		logger:   logger,
		claimers: make(map[string]Claimer),
		pending:  make(map[[32]byte][]Leg),
		secrets:  make(map[[32]byte][32]byte),
	}
}

// RegisterClaimer wires the claim path for one chain.
func (c *Coordinator) RegisterClaimer(claimer Claimer) {
	c.claimers[claimer.Chain()] = claimer
}

// ObserveLock records a newly locked leg. If the preimage for its hashlock
// was already revealed on another chain, the leg is claimed immediately.
func (c *Coordinator) ObserveLock(ctx context.Context, leg Leg) {
	c.mu.Lock()
	preimage, revealed := c.secrets[leg.Hashlock]
	if !revealed {
		c.pending[leg.Hashlock] = append(c.pending[leg.Hashlock], leg)
		c.mu.Unlock()

		c.logger.Info("leg locked",
			zap.String("chain", leg.Chain),
			zap.String("swap_id", leg.SwapID),
			zap.String("hashlock", hex.EncodeToString(leg.Hashlock[:])))
		return
	}
	c.mu.Unlock()

	c.claimLeg(ctx, leg, preimage)
}

// ObservePreimage records a preimage revealed by a claim on originChain and
// claims every pending counterpart leg. Legs whose claim fails stay pending
// for the next reveal or retry pass.
func (c *Coordinator) ObservePreimage(ctx context.Context, originChain string, preimage [32]byte) error {
	hashlock := sha256.Sum256(preimage[:])

	c.mu.Lock()
	c.secrets[hashlock] = preimage
	legs := c.pending[hashlock]
	delete(c.pending, hashlock)
	c.mu.Unlock()

	c.logger.Info("preimage revealed",
		zap.String("origin", originChain),
		zap.String("hashlock", hex.EncodeToString(hashlock[:])),
		zap.Int("counterpart_legs", len(legs)))

	var failed []Leg
	for _, leg := range legs {
		if leg.Chain == originChain {
			continue
		}
		if !c.claimLeg(ctx, leg, preimage) {
			failed = append(failed, leg)
		}
	}

	if len(failed) > 0 {
		c.mu.Lock()
		c.pending[hashlock] = append(c.pending[hashlock], failed...)
		c.mu.Unlock()
		return fmt.Errorf("%d leg claim(s) failed for hashlock %s", len(failed), hex.EncodeToString(hashlock[:]))
	}
	return nil
}

// Retry re-attempts every pending leg whose preimage is already known.
func (c *Coordinator) Retry(ctx context.Context) {
	c.mu.Lock()
	type attempt struct {
		leg      Leg
		preimage [32]byte
	}
	var attempts []attempt
	for hashlock, legs := range c.pending {
		preimage, revealed := c.secrets[hashlock]
		if !revealed {
			continue
		}
		for _, leg := range legs {
			attempts = append(attempts, attempt{leg: leg, preimage: preimage})
		}
		delete(c.pending, hashlock)
	}
	c.mu.Unlock()

	for _, a := range attempts {
		if !c.claimLeg(ctx, a.leg, a.preimage) {
			c.mu.Lock()
			c.pending[a.leg.Hashlock] = append(c.pending[a.leg.Hashlock], a.leg)
			c.mu.Unlock()
		}
	}
}

// PruneExpired drops pending legs whose timelock has passed; their escrows
// refund on-chain and are no longer claimable. It returns the number of
// legs dropped.
func (c *Coordinator) PruneExpired(now time.Time) int {
	cutoff := uint64(now.Unix())

	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for hashlock, legs := range c.pending {
		kept := legs[:0]
		for _, leg := range legs {
			if cutoff >= leg.Timelock {
				dropped++
				c.logger.Info("leg expired",
					zap.String("chain", leg.Chain),
					zap.String("swap_id", leg.SwapID))
				continue
			}
			kept = append(kept, leg)
		}
		if len(kept) == 0 {
			delete(c.pending, hashlock)
		} else {
			c.pending[hashlock] = kept
		}
	}
	return dropped
}

// PendingLegs reports how many legs are waiting for a preimage.
func (c *Coordinator) PendingLegs() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, legs := range c.pending {
		n += len(legs)
	}
	return n
}

func (c *Coordinator) claimLeg(ctx context.Context, leg Leg, preimage [32]byte) bool {
	claimer, ok := c.claimers[leg.Chain]
	if !ok {
		c.logger.Warn("no claimer registered", zap.String("chain", leg.Chain))
		return false
	}

	if err := claimer.Claim(ctx, leg.SwapID, preimage); err != nil {
		c.logger.Error("claim failed",
			zap.String("chain", leg.Chain),
			zap.String("swap_id", leg.SwapID),
			zap.Error(err))
		return false
	}

	c.logger.Info("leg claimed",
		zap.String("chain", leg.Chain),
		zap.String("swap_id", leg.SwapID))
	return true
}
