package core

// Network ... Represents the ledger a client or reading is bound to
type Network uint8

const (
	Layer1 Network = iota + 1
	Layer2

	UnknownNetwork
)

const (
	UnknownType = "unknown"
)

func (n Network) String() string {
	switch n {
	case Layer1:
		return "layer1"

	case Layer2:
		return "layer2"
	}

	return UnknownType
}

func StringToNetwork(stringType string) Network {
	switch stringType {
	case "layer1":
		return Layer1

	case "layer2":
		return Layer2
	}

	return UnknownNetwork
}

type Timeouts int

const (
	EthClientTimeout Timeouts = 20 // in seconds
)

// Stage ... A step of the force inclusion pipeline
type Stage string

const (
	StageRead        Stage = "read"
	StageEvaluate    Stage = "evaluate"
	StageReconstruct Stage = "reconstruct"
	StageSubmit      Stage = "submit"
	StageConfirm     Stage = "confirm"
	StageVerify      Stage = "verify"
)

func (s Stage) String() string {
	return string(s)
}

// Arbitrum delayed message kinds relevant to payload decoding
const (
	MessageKindL2Message       uint8 = 3
	MessageKindL2FundedByL1    uint8 = 7
	MessageKindSubmitRetryable uint8 = 9
	MessageKindEthDeposit      uint8 = 12
)

// FilePath ... Represents a file path
type FilePath string

// Env ... Represents the deployment environment
type Env string

const (
	Production  Env = "production"
	Development Env = "development"
	Local       Env = "local"
)
