package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/interchainx/htlc/relayer/pkg/chain"
	"github.com/interchainx/htlc/relayer/pkg/config"
	"github.com/interchainx/htlc/relayer/pkg/coordinator"
	"github.com/interchainx/htlc/relayer/pkg/ethereum"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relayer",
	Short: "HTLC cross-chain swap relayer",
	Long: `Watches the htlc module and the counterparty Ethereum escrow for
hashlocked swaps and propagates revealed preimages between the two chains.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	RunE: runRelayer,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the relayer service",
	RunE:  runRelayer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("htlc-relayer v1.0.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogger() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runRelayer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Info("starting htlc relayer",
		zap.String("chain_id", cfg.Chain.ChainID),
		zap.Int64("ethereum_chain_id", cfg.Ethereum.ChainID))

	chainClient, err := chain.NewClient(&cfg.Chain, logger.Named("chain"))
	if err != nil {
		return fmt.Errorf("failed to initialize chain client: %w", err)
	}
	if err := chainClient.Start(); err != nil {
		return fmt.Errorf("failed to connect to chain: %w", err)
	}
	defer chainClient.Stop()

	ethClient, err := ethereum.NewClient(&cfg.Ethereum, logger.Named("ethereum"))
	if err != nil {
		return fmt.Errorf("failed to initialize ethereum client: %w", err)
	}
	defer ethClient.Close()

	coord := coordinator.New(logger.Named("coordinator"))
	coord.RegisterClaimer(ethClient)
	coord.RegisterClaimer(chain.NewExecClaimer(&cfg.Chain, logger.Named("claimer")))

	service := &relayerService{
		cfg:         cfg,
		chainClient: chainClient,
		ethClient:   ethClient,
		coord:       coord,
		logger:      logger,
	}
	if err := service.start(ctx); err != nil {
		return fmt.Errorf("failed to start relayer: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	logger.Info("relayer stopped")
	return nil
}

// relayerService glues the two chain watchers to the coordinator.
type relayerService struct {
	cfg         *config.Config
	chainClient *chain.Client
	ethClient   *ethereum.Client
	coord       *coordinator.Coordinator
	logger      *zap.Logger

	lastEthBlock uint64
}

func (s *relayerService) start(ctx context.Context) error {
	locks, err := s.chainClient.WatchLocks(ctx)
	if err != nil {
		return err
	}
	claims, err := s.chainClient.WatchClaims(ctx)
	if err != nil {
		return err
	}

	if s.cfg.Ethereum.StartBlock > 0 {
		s.lastEthBlock = s.cfg.Ethereum.StartBlock - 1
	} else {
		head, err := s.ethClient.LatestBlock(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch ethereum head: %w", err)
		}
		s.lastEthBlock = head
	}

	go s.watchChain(ctx, locks, claims)
	go s.pollEthereum(ctx)
	go s.housekeeping(ctx)

	s.logger.Info("relayer started", zap.Uint64("ethereum_start_block", s.lastEthBlock+1))
	return nil
}

// watchChain feeds Cosmos-side locks and preimage reveals into the
// coordinator.
func (s *relayerService) watchChain(ctx context.Context, locks <-chan coordinator.Leg, claims <-chan [32]byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case leg, ok := <-locks:
			if !ok {
				return
			}
			s.coord.ObserveLock(ctx, leg)
		case preimage, ok := <-claims:
			if !ok {
				return
			}
			if err := s.coord.ObservePreimage(ctx, chain.ChainName, preimage); err != nil {
				s.logger.Error("failed to propagate preimage", zap.Error(err))
			}
		}
	}
}

// pollEthereum scans new Ethereum blocks for escrow locks and claims.
func (s *relayerService) pollEthereum(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Relayer.BlockPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.scanEthereum(ctx); err != nil {
				s.logger.Error("ethereum scan failed", zap.Error(err))
			}
		}
	}
}

func (s *relayerService) scanEthereum(ctx context.Context) error {
	head, err := s.ethClient.LatestBlock(ctx)
	if err != nil {
		return err
	}
	if head <= s.lastEthBlock {
		return nil
	}

	from, to := s.lastEthBlock+1, head

	lockEvents, err := s.ethClient.FilterLocks(ctx, from, to)
	if err != nil {
		return err
	}
	for _, ev := range lockEvents {
		s.coord.ObserveLock(ctx, ev.Leg)
	}

	claimEvents, err := s.ethClient.FilterClaims(ctx, from, to)
	if err != nil {
		return err
	}
	for _, ev := range claimEvents {
		if err := s.coord.ObservePreimage(ctx, ethereum.ChainName, ev.Preimage); err != nil {
			s.logger.Error("failed to propagate preimage", zap.Error(err))
		}
	}

	s.lastEthBlock = to
	s.logger.Debug("scanned ethereum blocks",
		zap.Uint64("from", from), zap.Uint64("to", to),
		zap.Int("locks", len(lockEvents)), zap.Int("claims", len(claimEvents)))
	return nil
}

// housekeeping retries failed claims and drops expired legs.
func (s *relayerService) housekeeping(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Relayer.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.coord.Retry(ctx)
			if dropped := s.coord.PruneExpired(time.Now()); dropped > 0 {
				s.logger.Info("pruned expired legs", zap.Int("dropped", dropped))
			}
			s.logger.Debug("housekeeping pass", zap.Int("pending_legs", s.coord.PendingLegs()))
		}
	}
}
