package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkPreset ... Known Arbitrum deployment and its L1 bridge contracts
type NetworkPreset struct {
	Name                  string
	BridgeAddress         common.Address
	SequencerInboxAddress common.Address
	// DeployBlock is the L1 block the bridge was deployed at
	DeployBlock uint64
}

const (
	Arb1       = "arb1"
	Nova       = "nova"
	ArbSepolia = "arb-sepolia"
	Custom     = "custom"
)

var presets = map[string]NetworkPreset{
	Arb1: {
		Name:                  Arb1,
		BridgeAddress:         common.HexToAddress("0x8315177aB297bA92A06054cE80a67Ed4DBd7ed3a"),
		SequencerInboxAddress: common.HexToAddress("0x1c479675ad559DC151F6Ec7ed3FbF8ceE79582B6"),
		DeployBlock:           15411056,
	},
	Nova: {
		Name:                  Nova,
		BridgeAddress:         common.HexToAddress("0xC1Ebd02f738644983b6C4B2d440b8e77DdE276Bd"),
		SequencerInboxAddress: common.HexToAddress("0x211E1c4c7f1bF5351Ac850Ed10FD68CFfCF6c21b"),
		DeployBlock:           15016829,
	},
	ArbSepolia: {
		Name:                  ArbSepolia,
		BridgeAddress:         common.HexToAddress("0x38f918D0E9F1b721EDaA41302E399fa1B79333a9"),
		SequencerInboxAddress: common.HexToAddress("0x6c97864CE4bEf387dE0b3310A44230f7E3F1be0D"),
		DeployBlock:           4139226,
	},
}

// PresetFor ... Returns the preset of a named network. Custom deployments have no preset
// and must configure every address explicitly
func PresetFor(name string) (NetworkPreset, error) {
	if name == Custom {
		return NetworkPreset{Name: Custom}, nil
	}

	p, ok := presets[name]
	if !ok {
		return NetworkPreset{}, fmt.Errorf("unknown network preset %q", name)
	}

	return p, nil
}
