package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/interchainx/htlc/relayer/pkg/config"
	"github.com/interchainx/htlc/relayer/pkg/coordinator"
)

// ExecClaimer submits claims on the Cosmos chain by shelling out to the
// chain daemon CLI. Signing stays in the daemon's keyring so the relayer
// never holds the Cosmos key material.
type ExecClaimer struct {
	cfg    *config.ChainConfig
	logger *zap.Logger
}

// NewExecClaimer builds a claimer around the configured daemon binary.
func NewExecClaimer(cfg *config.ChainConfig, logger *zap.Logger) *ExecClaimer {
	return &ExecClaimer{cfg: cfg, logger: logger}
}

// Chain implements coordinator.Claimer.
func (e *ExecClaimer) Chain() string { return ChainName }

// Claim runs `<claim_command> tx htlc claim-swap <id> <preimage> ...`.
func (e *ExecClaimer) Claim(ctx context.Context, swapID string, preimage [32]byte) error {
	args := []string{
		"tx", "htlc", "claim-swap",
		swapID, hex.EncodeToString(preimage[:]),
		"--from", e.cfg.ClaimFrom,
		"--chain-id", e.cfg.ChainID,
		"--node", e.cfg.RPCEndpoint,
		"--yes",
	}
	args = append(args, e.cfg.ClaimArgs...)

	cmd := exec.CommandContext(ctx, e.cfg.ClaimCommand, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("claim command failed: %w: %s", err, out)
	}

	e.logger.Info("claim submitted",
		zap.String("swap_id", swapID),
		zap.String("command", e.cfg.ClaimCommand))
	return nil
}

var _ coordinator.Claimer = (*ExecClaimer)(nil)
