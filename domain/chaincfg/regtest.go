package chaincfg

import (
	"math"
	"time"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

var regtestGenesis = newGenesis(1296688602, 0x207fffff, 2,
	"06226e46111a0b59caaf126043eb5bbf28c34f3a5e332a1fc7b2b73cf188910f",
	"0100000000000000000000000000000000000000000000000000000000000000"+
		"000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa"+
		"4b1e5e4adae5494dffff7f2002000000")

var regtestDeploys = []*DeploymentSpec{
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
		StartTime: 0,
		Timeout:   math.MaxUint32,
		Threshold: useNetworkDefault,
		Window:    useNetworkDefault,
		Force:     true,
	},
}

// RegtestParams defines the network parameters for the regression test
// network. Retargeting is off and every upgrade is active from genesis,
// except for BIP34 which is pushed out of reach.
var RegtestParams = Params{
	Type:       Regtest,
	Seeds:      []string{"127.0.0.1"},
	Magic:      0xfabfb5da,
	Port:       48444,
	RPCPort:    48332,
	WalletPort: 48334,

	Genesis: regtestGenesis,

	Pow: PowParams{
		Limit:            newBigFromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		Bits:             0x207fffff,
		ChainWork:        newBigFromHex("2"),
		HalfLife:         2 * 24 * time.Hour,
		TargetTimespan:   14 * 24 * time.Hour,
		TargetSpacing:    10 * time.Minute,
		RetargetInterval: 2016,
		TargetReset:      true,
		NoRetargeting:    true,
	},

	Checkpoints:     map[uint32]*externalapi.DomainHash{},
	LastCheckpoint:  0,
	HalvingInterval: 150,

	Block: BlockParams{
		Forks: []*ForkActivation{
			atHeight(ForkBIP34, 100000000, nil),
			atHeight(ForkBIP65, 1351, nil),
			atHeight(ForkBIP66, 1251, nil),
			atHeight(ForkUAHF, 0, nil),
			atHeight(ForkDAA, 0, nil),
			atHeight(ForkMagneticAnomaly, 0, nil),
			atHeight(ForkGreatWall, 0, nil),
			atHeight(ForkGraviton, 0, nil),
			atTime(ForkPhonon, 0),
			atTime(ForkASERT, 0),
		},
		PruneAfterHeight: 1000,
		KeepBlocks:       10000,
		MaxTipAge:        math.MaxUint32 * time.Second,
		SlowHeight:       0,
	},

	BIP30: map[uint32]*externalapi.DomainHash{},

	ActivationThreshold: 108, // 75% of MinerWindow
	MinerWindow:         144,
	Deploys:             regtestDeploys,
	Deployments:         deploymentMap(regtestDeploys),

	KeyPrefix: KeyPrefix{
		PrivKey:    0x5a,
		XPubKey:    0xeab4fa05,
		XPrivKey:   0xeab404c7,
		XPubKey58:  "rpub",
		XPrivKey58: "rprv",
		CoinType:   1,
	},
	AddressPrefix: AddressPrefix{
		PubKeyHash: 0x3c,
		ScriptHash: 0x26,
		CashAddr:   "xecreg",
	},

	RequireStandard: false,
	MinRelay:        1000,
	FeeRate:         20000,
	MaxFeeRate:      60000,
	SelfConnect:     true,
	RequestMempool:  true,
}
