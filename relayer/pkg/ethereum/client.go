package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/interchainx/htlc/relayer/pkg/config"
	"github.com/interchainx/htlc/relayer/pkg/coordinator"
)

// ChainName identifies the Ethereum side in coordinator legs.
const ChainName = "ethereum"

// Event signatures of the counterparty escrow contract.
var (
	swapInitializedTopic = crypto.Keccak256Hash([]byte("SwapInitialized(bytes32,address,address,uint256,bytes32,uint256)"))
	fundsClaimedTopic    = crypto.Keccak256Hash([]byte("FundsClaimed(bytes32,address,bytes32)"))
	claimSelector        = crypto.Keccak256([]byte("claim(bytes32,bytes32)"))[:4]
)

// LockEvent is a SwapInitialized log decoded into a coordinator leg.
type LockEvent struct {
	Leg   coordinator.Leg
	Block uint64
}

// ClaimEvent is a FundsClaimed log; the preimage it carries settles the
// counterpart leg on the Cosmos chain.
type ClaimEvent struct {
	SwapID   common.Hash
	Preimage [32]byte
	Block    uint64
}

// Client talks to the escrow contract on Ethereum. It watches lock and
// claim logs and submits claim transactions signed with the relayer key.
type Client struct {
	eth      *ethclient.Client
	contract common.Address
	chainID  *big.Int
	gasLimit uint64
	key      *ecdsa.PrivateKey
	from     common.Address
	logger   *zap.Logger
}

// NewClient connects to the configured Ethereum node.
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	eth, err := ethclient.Dial(cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum node: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	return &Client{
		eth:      eth,
		contract: common.HexToAddress(cfg.Contract),
		chainID:  big.NewInt(cfg.ChainID),
		gasLimit: cfg.GasLimit,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		logger:   logger,
	}, nil
}

// Chain implements coordinator.Claimer.
func (c *Client) Chain() string { return ChainName }

// LatestBlock returns the current head block number.
func (c *Client) LatestBlock(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

// FilterLocks returns the SwapInitialized events in the block range.
func (c *Client) FilterLocks(ctx context.Context, fromBlock, toBlock uint64) ([]LockEvent, error) {
	logs, err := c.filterLogs(ctx, fromBlock, toBlock, swapInitializedTopic)
	if err != nil {
		return nil, err
	}

	events := make([]LockEvent, 0, len(logs))
	for _, log := range logs {
		// data layout: amount | hashlock | timelock, sender and recipient
		// are indexed
		if len(log.Topics) < 2 || len(log.Data) < 96 {
			c.logger.Warn("malformed SwapInitialized log", zap.String("tx", log.TxHash.Hex()))
			continue
		}

		var hashlock [32]byte
		copy(hashlock[:], log.Data[32:64])

		events = append(events, LockEvent{
			Leg: coordinator.Leg{
				Chain:    ChainName,
				SwapID:   log.Topics[1].Hex(),
				Hashlock: hashlock,
				Timelock: new(big.Int).SetBytes(log.Data[64:96]).Uint64(),
			},
			Block: log.BlockNumber,
		})
	}
	return events, nil
}

// FilterClaims returns the FundsClaimed events in the block range.
func (c *Client) FilterClaims(ctx context.Context, fromBlock, toBlock uint64) ([]ClaimEvent, error) {
	logs, err := c.filterLogs(ctx, fromBlock, toBlock, fundsClaimedTopic)
	if err != nil {
		return nil, err
	}

	events := make([]ClaimEvent, 0, len(logs))
	for _, log := range logs {
		// data layout: preimage, claimer is indexed
		if len(log.Topics) < 2 || len(log.Data) < 32 {
			c.logger.Warn("malformed FundsClaimed log", zap.String("tx", log.TxHash.Hex()))
			continue
		}

		var preimage [32]byte
		copy(preimage[:], log.Data[:32])

		events = append(events, ClaimEvent{
			SwapID:   log.Topics[1],
			Preimage: preimage,
			Block:    log.BlockNumber,
		})
	}
	return events, nil
}

// Claim submits claim(swapId, preimage) to the escrow contract.
func (c *Client) Claim(ctx context.Context, swapID string, preimage [32]byte) error {
	id := common.HexToHash(swapID)

	calldata := make([]byte, 0, 4+64)
	calldata = append(calldata, claimSelector...)
	calldata = append(calldata, id.Bytes()...)
	calldata = append(calldata, preimage[:]...)

	nonce, err := c.eth.PendingNonceAt(ctx, c.from)
	if err != nil {
		return fmt.Errorf("failed to fetch nonce: %w", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, c.contract, big.NewInt(0), c.gasLimit, gasPrice, calldata)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return fmt.Errorf("failed to sign claim: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("failed to broadcast claim: %w", err)
	}

	c.logger.Info("claim submitted",
		zap.String("swap_id", swapID),
		zap.String("tx", signed.Hash().Hex()))
	return nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

func (c *Client) filterLogs(ctx context.Context, fromBlock, toBlock uint64, topic common.Hash) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.contract},
		Topics:    [][]common.Hash{{topic}},
	}

	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs: %w", err)
	}
	return logs, nil
}

var _ coordinator.Claimer = (*Client)(nil)
