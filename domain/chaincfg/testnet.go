package chaincfg

import (
	"time"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

var testnetGenesis = newGenesis(1296688602, 0x1d00ffff, 414098458,
	"43497fd7f826957108f4a30fd9cec3aeba79972084e90ead01ea330900000000",
	"0100000000000000000000000000000000000000000000000000000000000000"+
		"000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa"+
		"4b1e5e4adae5494dffff001d1aa4ae18")

var testnetDeploys = []*DeploymentSpec{
	{
		Name:      DeploymentCSV,
		Bit:       0,
		StartTime: 1456790400, // March 1st, 2016
		Timeout:   1493596800, // May 1st, 2017
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

// TestnetParams defines the network parameters for the public test network.
var TestnetParams = Params{
	Type: Testnet,
	Seeds: []string{
		"testnet-seed.bitcoinabc.org",
		"testnet-seed-abc.bitcoinforks.org",
		"testnet-seed.deadalnix.me",
		"testnet-seed.bchd.cash",
	},
	Magic:      0xf4f3e5f4,
	Port:       18333,
	RPCPort:    18332,
	WalletPort: 18334,

	Genesis: testnetGenesis,

	Pow: PowParams{
		Limit:            newBigFromHex("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		Bits:             0x1d00ffff,
		ChainWork:        newBigFromHex("6956e7298fb096a1cc"),
		HalfLife:         2 * 24 * time.Hour,
		TargetTimespan:   14 * 24 * time.Hour,
		TargetSpacing:    10 * time.Minute,
		RetargetInterval: 2016,
		TargetReset:      true,
		NoRetargeting:    false,
	},

	Checkpoints: map[uint32]*externalapi.DomainHash{
		546:     newHashFromStr("70cb6af7ebbcb1315d3414029c556c55f3e2fc353c4c9063a76c932a00000000"),
		10000:   newHashFromStr("02a1b43f52591e53b660069173ac83b675798e12599dbb0442b7580000000000"),
		50000:   newHashFromStr("0c6ceabe803cec55ba2831e445956d0a43ba9521743a802cddac7e0700000000"),
		90000:   newHashFromStr("cafc21e17faf90461a5905aa03302c394912651ed9475ae711723e0d00000000"),
		100000:  newHashFromStr("1e0a16bbadccde1d80c66597b1939e45f91b570d29f95fc158299e0000000000"),
		140000:  newHashFromStr("92c0877b54c556889b72175ccbe0c91a1208f6ef7efb2c006101062300000000"),
		170000:  newHashFromStr("508125560d202b89757889bb0e49c712477be20440058f05db4f0e0000000000"),
		210000:  newHashFromStr("32365454b5f29a826bff8ad9b0448cad0072fc73d50e482d91a3dece00000000"),
		230000:  newHashFromStr("b11a447e62643e0b27406eb0fc270cb8126d7b5b70822fb642d9513400000000"),
		270000:  newHashFromStr("1c42b811cf9c163932f6e95ec55bf9b5e2cb5324e7e93001572e000000000000"),
		300000:  newHashFromStr("a141bf3972424853f04367b47995e220e0b5a2706e5618766f22000000000000"),
		340000:  newHashFromStr("67edd4d92e405608109164b15f92b193377d49325b0ed036739c010000000000"),
		350000:  newHashFromStr("592b44bc0f7a4286cf07ead8497114c6952c1c7dea7305193deacf8e00000000"),
		390000:  newHashFromStr("f217e183484fb6d695609cc71fa2ae24c3020943407e0150b298030000000000"),
		420000:  newHashFromStr("de9e73a3b91fbb014e036e8583a17d6b638a699aeb2de8573d12580800000000"),
		460000:  newHashFromStr("2e8baaffc107f15c87aebe01664b63d07476afa53bcbada1281a030000000000"),
		500000:  newHashFromStr("06f60922a2aab2757317820fc6ffaf6a470e2cbb0f63a2aac0a7010000000000"),
		540000:  newHashFromStr("8dd0bebfbc4878f5af09d3e848dcc57827d2c1cebea8ec5d8cbe420500000000"),
		570000:  newHashFromStr("87acbd4cd3c40ec9bd648f8698ed226b31187274c06cc7a9af79030000000000"),
		600000:  newHashFromStr("169a05b3bb04b7d13ad628915630900a5ed2e89f3a9dc6064f62000000000000"),
		630000:  newHashFromStr("bbbe117035432a6a4effcb297207a02b031735b43e0d19a9217c000000000000"),
		670000:  newHashFromStr("080bfe75caed8624fcfdfbc65973c8f962d7bdc495a891f5d16b7d0000000000"),
		700000:  newHashFromStr("c14d3f6a1e7c7d66fd940951e44f3c3be1273bea4d2ab1786140000000000000"),
		740000:  newHashFromStr("b3b423f0462fd78a01e4f1a59a2737a0525b5dbb9bba0b4634f9000000000000"),
		780000:  newHashFromStr("0381582e34c3755964dc2813e2b33e521e5596367144e1670851050000000000"),
		800000:  newHashFromStr("03b5f8ab257e02903f509f5ff2935220eec2e77b1819651d099b200000000000"),
		840000:  newHashFromStr("dac1648107bd4394e57e4083c86d42b548b1cfb119665f179ea80a0000000000"),
		880000:  newHashFromStr("ff90b4bb07eded8e96715bf595c09c7d21dd8c61b8306ff48705d60000000000"),
		900000:  newHashFromStr("9bd8ac418beeb1a2cf5d68c8b5c6ebaa947a5b766e5524898d6f350000000000"),
		940000:  newHashFromStr("c98f1651a475b00d12f8c25eb166ee843affaa90610e36a19d68030000000000"),
		980000:  newHashFromStr("cc8e9774542d044a9698ca2336ae02d5987157e676f1c76aa3877c0000000000"),
		1010000: newHashFromStr("9d9fb11abc2712d80368229e97b8d827b2a07d27eb5335e5c924000000000000"),
		1050000: newHashFromStr("d8190cf0af7f08e179cab51d67db0b44b87951a78f7fdc31b4a01a0000000000"),
		1090000: newHashFromStr("41f83c47e02a8852d033ac884df7cca877726b384a461fb9e802000000000000"),
		1130000: newHashFromStr("b8d63c3830e3c5685d3f7d2c2271fdb2ce3315619a473c324ea1a4ce00000000"),
		1155875: newHashFromStr("38f1ae7f0ea8c1b589884c5fbd0b83721e3ab6759a4b897206857cf100000000"),
		1188697: newHashFromStr("fb47e0ab0d2448f71192a09fe61bc9c46cd3b4e7bd778091d00e170000000000"),
		1303885: newHashFromStr("d323ee8d7ede5bef62f84db98f93cc8c47fae4f02e8938914700000000000000"),
		1341712: newHashFromStr("5ba3af2992073940ed9e5a9d9eef9194bbfba905d92b202eea44fcff00000000"),
		1378461: newHashFromStr("d715e9fab7bbdf301081eeadbe6e931db282cf6b92b1365f9b50f59900000000"),
	},
	LastCheckpoint:  1341712,
	HalvingInterval: 210000,

	Block: BlockParams{
		Forks: []*ForkActivation{
			atHeight(ForkBIP34, 21111, newHashFromStr("f88ecd9912d00d3f5c2a8e0f50417d3e415c75b3abe584346da9b32300000000")),
			atHeight(ForkBIP65, 581885, newHashFromStr("b61e864fbec41dfaf09da05d1d76dc068b0dd82ee7982ff255667f0000000000")),
			atHeight(ForkBIP66, 330776, newHashFromStr("82a14b9e5ea81d4832b8e2cd3c2a6092b5a3853285a8995ec4c8042100000000")),
			atHeight(ForkUAHF, 1155875, newHashFromStr("38f1ae7f0ea8c1b589884c5fbd0b83721e3ab6759a4b897206857cf100000000")),
			atHeight(ForkDAA, 1188697, newHashFromStr("fb47e0ab0d2448f71192a09fe61bc9c46cd3b4e7bd778091d00e170000000000")),
			atHeight(ForkMagneticAnomaly, 1267996, newHashFromStr("244b485f4871816d3ca060f6f363abe81c6fa1bed45c09e0fa01000000000000")),
			atHeight(ForkGreatWall, 1303885, newHashFromStr("d323ee8d7ede5bef62f84db98f93cc8c47fae4f02e8938914700000000000000")),
			atTimeObserved(ForkGraviton, 1573819200, 1341712, newHashFromStr("5ba3af2992073940ed9e5a9d9eef9194bbfba905d92b202eea44fcff00000000")),
			atTime(ForkPhonon, 1589544000),
			atTime(ForkASERT, 1605441600),
		},
		PruneAfterHeight: 1000,
		KeepBlocks:       10000,
		MaxTipAge:        24 * time.Hour,
		SlowHeight:       950000,
	},

	BIP30: map[uint32]*externalapi.DomainHash{},

	ActivationThreshold: 1512, // 75% of MinerWindow
	MinerWindow:         2016,
	Deploys:             testnetDeploys,
	Deployments:         deploymentMap(testnetDeploys),

	KeyPrefix: KeyPrefix{
		PrivKey:    0xef,
		XPubKey:    0x043587cf,
		XPrivKey:   0x04358394,
		XPubKey58:  "tpub",
		XPrivKey58: "tprv",
		CoinType:   1,
	},
	AddressPrefix: AddressPrefix{
		PubKeyHash: 0x6f,
		ScriptHash: 0xc4,
		CashAddr:   "xectest",
	},

	RequireStandard: false,
	MinRelay:        1000,
	FeeRate:         20000,
	MaxFeeRate:      60000,
	SelfConnect:     false,
	RequestMempool:  false,
}
