package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	"go.uber.org/zap"

	"github.com/interchainx/htlc/relayer/pkg/config"
	"github.com/interchainx/htlc/relayer/pkg/coordinator"
)

// ChainName identifies the Cosmos side in coordinator legs.
const ChainName = "cosmos"

const (
	subscriber = "htlc-relayer"

	lockQuery  = "tm.event='Tx' AND swap_initialized.swap_id EXISTS"
	claimQuery = "tm.event='Tx' AND funds_claimed.preimage EXISTS"

	subscriptionBuffer = 100
)

// Client subscribes to the htlc module's events over the CometBFT
// websocket. Locks feed the coordinator's pending set; claims carry the
// revealed preimages.
type Client struct {
	rpc    *rpchttp.HTTP
	cfg    *config.ChainConfig
	logger *zap.Logger
}

// NewClient creates a client for the configured chain RPC endpoint.
func NewClient(cfg *config.ChainConfig, logger *zap.Logger) (*Client, error) {
	rpc, err := rpchttp.New(cfg.RPCEndpoint, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc client: %w", err)
	}
	return &Client{rpc: rpc, cfg: cfg, logger: logger}, nil
}

// Start opens the websocket connection.
func (c *Client) Start() error {
	return c.rpc.Start()
}

// Stop closes the websocket connection and drops all subscriptions.
func (c *Client) Stop() error {
	return c.rpc.Stop()
}

// LatestHeight returns the current chain height.
func (c *Client) LatestHeight(ctx context.Context) (int64, error) {
	status, err := c.rpc.Status(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query status: %w", err)
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// WatchLocks streams newly created swaps as coordinator legs.
func (c *Client) WatchLocks(ctx context.Context) (<-chan coordinator.Leg, error) {
	events, err := c.rpc.Subscribe(ctx, subscriber, lockQuery, subscriptionBuffer)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to lock events: %w", err)
	}

	out := make(chan coordinator.Leg)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				for _, leg := range c.decodeLocks(ev) {
					select {
					case out <- leg:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return out, nil
}

// WatchClaims streams the preimages revealed by claims on this chain.
func (c *Client) WatchClaims(ctx context.Context) (<-chan [32]byte, error) {
	events, err := c.rpc.Subscribe(ctx, subscriber+"-claims", claimQuery, subscriptionBuffer)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to claim events: %w", err)
	}

	out := make(chan [32]byte)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				for _, preimage := range c.decodePreimages(ev) {
					select {
					case out <- preimage:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return out, nil
}

func (c *Client) decodeLocks(ev ctypes.ResultEvent) []coordinator.Leg {
	ids := ev.Events["swap_initialized.swap_id"]
	hashlocks := ev.Events["swap_initialized.hashlock"]
	timelocks := ev.Events["swap_initialized.timelock"]

	if len(ids) != len(hashlocks) || len(ids) != len(timelocks) {
		c.logger.Warn("uneven swap_initialized attributes", zap.Int("ids", len(ids)))
		return nil
	}

	legs := make([]coordinator.Leg, 0, len(ids))
	for i := range ids {
		raw, err := hex.DecodeString(hashlocks[i])
		if err != nil || len(raw) != 32 {
			c.logger.Warn("bad hashlock attribute", zap.String("swap_id", ids[i]))
			continue
		}
		timelock, err := strconv.ParseUint(timelocks[i], 10, 64)
		if err != nil {
			c.logger.Warn("bad timelock attribute", zap.String("swap_id", ids[i]))
			continue
		}

		var hashlock [32]byte
		copy(hashlock[:], raw)
		legs = append(legs, coordinator.Leg{
			Chain:    ChainName,
			SwapID:   ids[i],
			Hashlock: hashlock,
			Timelock: timelock,
		})
	}
	return legs
}

func (c *Client) decodePreimages(ev ctypes.ResultEvent) [][32]byte {
	attrs := ev.Events["funds_claimed.preimage"]

	preimages := make([][32]byte, 0, len(attrs))
	for _, attr := range attrs {
		raw, err := hex.DecodeString(attr)
		if err != nil || len(raw) != 32 {
			c.logger.Warn("bad preimage attribute")
			continue
		}
		var preimage [32]byte
		copy(preimage[:], raw)
		preimages = append(preimages, preimage)
	}
	return preimages
}
