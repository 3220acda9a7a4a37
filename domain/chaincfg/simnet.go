package chaincfg

import (
	"math"
	"time"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

var simnetGenesis = newGenesis(1401292357, 0x207fffff, 2,
	"f67ad7695d9b662a72ff3d8edbbb2de0bfa67b13974bb9910d116d5cbd863e68",
	"0100000000000000000000000000000000000000000000000000000000000000"+
		"000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa"+
		"4b1e5e4a45068653ffff7f2002000000")

var simnetDeploys = []*DeploymentSpec{
	{
		Name:      DeploymentCSV,
		Bit:       0,
		StartTime: 0,
		Timeout:   math.MaxUint32,
		Threshold: useNetworkDefault,
		Window:    useNetworkDefault,
		Force:     true,
	},
	{
		Name:      DeploymentTestDummy,
		Bit:       28,
		StartTime: 1199145601, // January 1, 2008
		Timeout:   1230767999, // December 31, 2008
		Threshold: useNetworkDefault,
		Window:    useNetworkDefault,
		Force:     true,
	},
}

// SimnetParams defines the network parameters for the simulation test
// network. This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.
var SimnetParams = Params{
	Type:       Simnet,
	Seeds:      []string{"127.0.0.1"},
	Magic:      0xf2faede4,
	Port:       18555,
	RPCPort:    18556,
	WalletPort: 18558,

	Genesis: simnetGenesis,

	Pow: PowParams{
		Limit:            newBigFromHex("7fffff0000000000000000000000000000000000000000000000000000000000"),
		Bits:             0x207fffff,
		ChainWork:        newBigFromHex("2"),
		HalfLife:         2 * 24 * time.Hour,
		TargetTimespan:   14 * 24 * time.Hour,
		TargetSpacing:    10 * time.Minute,
		RetargetInterval: 2016,
		TargetReset:      true,
		NoRetargeting:    false,
	},

	Checkpoints:     map[uint32]*externalapi.DomainHash{},
	LastCheckpoint:  0,
	HalvingInterval: 210000,

	Block: BlockParams{
		Forks: []*ForkActivation{
			atHeight(ForkBIP34, 0, simnetGenesis.Hash),
			atHeight(ForkBIP65, 0, simnetGenesis.Hash),
			atHeight(ForkBIP66, 0, simnetGenesis.Hash),
			atHeight(ForkUAHF, 0, nil),
			atHeight(ForkDAA, 0, nil),
			atTime(ForkMagneticAnomaly, 1542300000),
			atTime(ForkGreatWall, 1557921600),
		},
		PruneAfterHeight: 1000,
		KeepBlocks:       10000,
		MaxTipAge:        math.MaxUint32 * time.Second,
		SlowHeight:       0,
	},

	BIP30: map[uint32]*externalapi.DomainHash{},

	ActivationThreshold: 75, // 75% of MinerWindow
	MinerWindow:         100,
	Deploys:             simnetDeploys,
	Deployments:         deploymentMap(simnetDeploys),

	KeyPrefix: KeyPrefix{
		PrivKey:    0x64,
		XPubKey:    0x0420bd3a,
		XPrivKey:   0x0420b900,
		XPubKey58:  "spub",
		XPrivKey58: "sprv",
		CoinType:   115,
	},
	AddressPrefix: AddressPrefix{
		PubKeyHash: 0x3f,
		ScriptHash: 0x7b,
		CashAddr:   "xecsim",
	},

	RequireStandard: false,
	MinRelay:        1000,
	FeeRate:         20000,
	MaxFeeRate:      60000,
	SelfConnect:     false,
	RequestMempool:  false,
}
