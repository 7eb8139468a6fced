package config_test

import (
	"testing"
	"time"

	"github.com/base-org/forcer/internal/client"
	"github.com/base-org/forcer/internal/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatePath = "../../config.env.template"

func Test_Config(t *testing.T) {
	// Ensure that root level template file can be successfully parsed into a config struct
	cfg := config.NewConfig(templatePath)
	require.NotNil(t, cfg, "Config should not be nil")

	arb1, err := config.PresetFor(config.Arb1)
	require.NoError(t, err)

	assert.True(t, cfg.IsLocal())
	assert.Equal(t, arb1, cfg.Network)
	assert.Equal(t, arb1.BridgeAddress, cfg.InboxConfig.BridgeAddress)
	assert.Equal(t, arb1.SequencerInboxAddress, cfg.SubmitterConfig.SequencerInboxAddress)
	assert.Nil(t, cfg.InboxConfig.Threshold)
	assert.Equal(t, uint64(10000), cfg.InboxConfig.LogQueryRange)
	assert.Equal(t, time.Second, cfg.SubmitterConfig.Confirmation.InitialInterval)
	assert.Equal(t, time.Duration(0), cfg.SystemConfig.LoopInterval)
	assert.Equal(t, []string{"stdout"}, cfg.LoggerConfig.OutputPaths)
	assert.Empty(t, cfg.AlertConfig.PagerDuty.IntegrationKey)
	assert.Equal(t, client.DefaultPagerDutyEventsURL, cfg.AlertConfig.PagerDuty.AlertEventsURL)
	assert.Empty(t, cfg.AlertConfig.SNS.TopicArn)

	// No signer configured in the template
	assert.Error(t, cfg.Validate())
}

func Test_Config_CustomNetwork(t *testing.T) {
	bridge := common.HexToAddress("0x00000000000000000000000000000000000000b1")
	seqInbox := common.HexToAddress("0x00000000000000000000000000000000000000c1")

	// godotenv does not override variables already present in the environment
	t.Setenv("NETWORK", config.Custom)
	t.Setenv("BRIDGE_ADDRESS", bridge.Hex())
	t.Setenv("SEQUENCER_INBOX_ADDRESS", seqInbox.Hex())
	t.Setenv("BRIDGE_DEPLOY_BLOCK", "42")
	t.Setenv("MAX_DELAY_BLOCKS", "5760")
	t.Setenv("MAX_DELAY_SECONDS", "86400")
	t.Setenv("DRY_RUN", "1")

	cfg := config.NewConfig(templatePath)

	assert.Equal(t, bridge, cfg.InboxConfig.BridgeAddress)
	assert.Equal(t, seqInbox, cfg.InboxConfig.SequencerInboxAddress)
	assert.Equal(t, uint64(42), cfg.InboxConfig.DeployBlock)
	require.NotNil(t, cfg.InboxConfig.Threshold)
	assert.Equal(t, uint64(5760), cfg.InboxConfig.Threshold.MaxBlockDelay)
	assert.Equal(t, uint64(86400), cfg.InboxConfig.Threshold.MaxTimeDelay)
	assert.True(t, cfg.SubmitterConfig.DryRun)

	assert.NoError(t, cfg.Validate())
}

func Test_PresetFor(t *testing.T) {
	for _, name := range []string{config.Arb1, config.Nova, config.ArbSepolia} {
		p, err := config.PresetFor(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NotEqual(t, common.Address{}, p.BridgeAddress)
		assert.NotZero(t, p.DeployBlock)
	}

	custom, err := config.PresetFor(config.Custom)
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, custom.BridgeAddress)

	_, err = config.PresetFor("arb2")
	assert.Error(t, err)
}
