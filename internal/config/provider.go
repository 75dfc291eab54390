package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultProposalFeeETH is the fixed creation fee the DAO contract charges.
const DefaultProposalFeeETH = "0.0001"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sdao")
	}

	cfg := &RuntimeConfig{
		RPCURL:         v.GetString("rpc_url"),
		ChainID:        v.GetUint64("chain_id"),
		DAOAddress:     v.GetString("dao_address"),
		PrivateKey:     v.GetString("private_key"),
		ReplicaDSN:     v.GetString("replica_dsn"),
		DataDir:        dataDir,
		ConfirmTimeout: v.GetDuration("confirm_timeout"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
	}

	fee, err := ParseETH(v.GetString("proposal_fee"))
	if err != nil {
		return nil, fmt.Errorf("invalid proposal_fee: %w", err)
	}
	cfg.ProposalFeeWei = fee

	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("rpc_url is not configured (set SDAO_RPC_URL or .sdao/config.json)")
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	// Pick up a local .env for RPC_URL / PRIVATE_KEY style secrets
	_ = godotenv.Load()

	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".sdao")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".sdao"))
	}

	// Set up environment variables
	v.SetEnvPrefix("SDAO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("confirm_timeout", "90s")
	v.SetDefault("proposal_fee", DefaultProposalFeeETH)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}

// ParseETH converts a decimal ether amount ("0.00005") into wei. Amounts
// with more than 18 fractional digits are rejected rather than truncated.
func ParseETH(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(amount, ".")
	if len(frac) > 18 {
		return nil, fmt.Errorf("amount %q has more than 18 decimal places", amount)
	}
	frac += strings.Repeat("0", 18-len(frac))

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok || wei.Sign() < 0 {
		return nil, fmt.Errorf("malformed amount %q", amount)
	}
	return wei, nil
}
