package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseETH(t *testing.T) {
	tests := []struct {
		in      string
		wantWei string
		wantErr bool
	}{
		{in: "1", wantWei: "1000000000000000000"},
		{in: "0.0001", wantWei: "100000000000000"},
		{in: "0.00005", wantWei: "50000000000000"},
		{in: " 2.5 ", wantWei: "2500000000000000000"},
		{in: "0", wantWei: "0"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0.0000000000000000001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			wei, err := ParseETH(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWei, wei.String())
		})
	}
}

func TestProvider(t *testing.T) {
	t.Run("requires an rpc url", func(t *testing.T) {
		v := viper.New()
		v.Set("proposal_fee", DefaultProposalFeeETH)

		_, err := Provider(v)
		assert.ErrorContains(t, err, "rpc_url")
	})

	t.Run("builds a config with defaults applied", func(t *testing.T) {
		v := viper.New()
		v.Set("rpc_url", "http://localhost:8545")
		v.Set("dao_address", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
		v.Set("proposal_fee", DefaultProposalFeeETH)
		v.Set("confirm_timeout", "90s")
		v.Set("data_dir", t.TempDir())

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
		assert.Equal(t, 90*time.Second, cfg.ConfirmTimeout)
		assert.Equal(t, "100000000000000", cfg.ProposalFeeWei.String())
	})

	t.Run("rejects a malformed proposal fee", func(t *testing.T) {
		v := viper.New()
		v.Set("rpc_url", "http://localhost:8545")
		v.Set("proposal_fee", "not-a-number")
		v.Set("data_dir", t.TempDir())

		_, err := Provider(v)
		assert.ErrorContains(t, err, "proposal_fee")
	})
}
