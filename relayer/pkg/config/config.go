package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the relayer.
type Config struct {
	Chain    ChainConfig    `mapstructure:"chain"`
	Ethereum EthereumConfig `mapstructure:"ethereum"`
	Relayer  RelayerConfig  `mapstructure:"relayer"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ChainConfig holds the Cosmos chain connection settings.
type ChainConfig struct {
	ChainID     string `mapstructure:"chain_id"`
	RPCEndpoint string `mapstructure:"rpc_endpoint"`

	// ClaimCommand is the daemon binary invoked to submit claim
	// transactions, e.g. "htlcd". Signing stays in the daemon's keyring.
	ClaimCommand string   `mapstructure:"claim_command"`
	ClaimArgs    []string `mapstructure:"claim_args"`
	ClaimFrom    string   `mapstructure:"claim_from"`
}

// EthereumConfig holds the Ethereum connection and signing settings.
type EthereumConfig struct {
	ChainID     int64  `mapstructure:"chain_id"`
	RPCEndpoint string `mapstructure:"rpc_endpoint"`
	Contract    string `mapstructure:"contract"`
	PrivateKey  string `mapstructure:"private_key"`
	GasLimit    uint64 `mapstructure:"gas_limit"`

	// StartBlock is the first block scanned on startup; 0 means latest
	StartBlock uint64 `mapstructure:"start_block"`
}

// RelayerConfig holds relayer-specific tuning.
type RelayerConfig struct {
	BlockPollInterval time.Duration `mapstructure:"block_poll_interval"`
	PruneInterval     time.Duration `mapstructure:"prune_interval"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryInterval     time.Duration `mapstructure:"retry_interval"`
	ClaimTimeout      time.Duration `mapstructure:"claim_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.htlc-relayer")
	}

	viper.SetEnvPrefix("RELAYER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func setDefaults() {
	viper.SetDefault("chain.claim_command", "htlcd")

	viper.SetDefault("ethereum.chain_id", 1)
	viper.SetDefault("ethereum.gas_limit", 300000)

	viper.SetDefault("relayer.block_poll_interval", "5s")
	viper.SetDefault("relayer.prune_interval", "1m")
	viper.SetDefault("relayer.max_retries", 3)
	viper.SetDefault("relayer.retry_interval", "10s")
	viper.SetDefault("relayer.claim_timeout", "60s")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// Validate checks that the settings the relayer cannot run without are set.
func (c *Config) Validate() error {
	if c.Chain.ChainID == "" {
		return fmt.Errorf("chain.chain_id is required")
	}
	if c.Chain.RPCEndpoint == "" {
		return fmt.Errorf("chain.rpc_endpoint is required")
	}
	if c.Chain.ClaimFrom == "" {
		return fmt.Errorf("chain.claim_from is required")
	}
	if c.Ethereum.RPCEndpoint == "" {
		return fmt.Errorf("ethereum.rpc_endpoint is required")
	}
	if c.Ethereum.Contract == "" {
		return fmt.Errorf("ethereum.contract is required")
	}
	if c.Ethereum.PrivateKey == "" {
		return fmt.Errorf("ethereum.private_key is required")
	}
	return nil
}
