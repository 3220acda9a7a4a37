// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

var mainnetGenesis = newGenesis(1231006505, 0x1d00ffff, 2083236893,
	"6fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d6190000000000",
	"0100000000000000000000000000000000000000000000000000000000000000"+
		"000000003ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa"+
		"4b1e5e4a29ab5f49ffff001d1dac2b7c")

var mainnetDeploys = []*DeploymentSpec{
	{
		Name:      DeploymentCSV,
		Bit:       0,
		StartTime: 1462060800, // May 1st, 2016
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

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Type: Mainnet,
	Seeds: []string{
		"seed.flowee.cash",
		"seed-bch.bitcoinforks.org",
		"btccash-seeder.bitcoinunlimited.info",
		"seed.bchd.cash",
		"seed.bch.loping.net",
		"dnsseed.electroncash.de",
	},
	Magic:      0xe8f3e1e3,
	Port:       8333,
	RPCPort:    8332,
	WalletPort: 8334,

	Genesis: mainnetGenesis,

	Pow: PowParams{
		Limit:            newBigFromHex("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		Bits:             0x1d00ffff,
		ChainWork:        newBigFromHex("13c95e14d4d9db91d671020"),
		HalfLife:         2 * 24 * time.Hour,
		TargetTimespan:   14 * 24 * time.Hour,
		TargetSpacing:    10 * time.Minute,
		RetargetInterval: 2016,
		TargetReset:      false,
		NoRetargeting:    false,
	},

	Checkpoints: map[uint32]*externalapi.DomainHash{
		11111:  newHashFromStr("1d7c6eb2fd42f55925e92efad68b61edd22fba29fde8783df744e26900000000"),
		33333:  newHashFromStr("a6d0b5df7d0df069ceb1e736a216ad187a50b07aaa4e78748a58d52d00000000"),
		74000:  newHashFromStr("201a66b853f9e7814a820e2af5f5dc79c07144e31ce4c9a39339570000000000"),
		105000: newHashFromStr("97dc6b1d15fbeef373a744fee0b254b0d2c820a3ae7f0228ce91020000000000"),
		134444: newHashFromStr("feb0d2420d4a18914c81ac30f494a5d4ff34cd15d34cfd2fb105000000000000"),
		168000: newHashFromStr("63b703835cb735cb9a89d733cbe66f212f63795e0172ea619e09000000000000"),
		193000: newHashFromStr("17138bca83bdc3e6f60f01177c3877a98266de40735f2a459f05000000000000"),
		210000: newHashFromStr("2e3471a19b8e22b7f939c63663076603cf692f19837e34958b04000000000000"),
		216116: newHashFromStr("4edf231bf170234e6a811460f95c94af9464e41ee833b4f4b401000000000000"),
		225430: newHashFromStr("32595730b165f097e7b806a679cf7f3e439040f750433808c101000000000000"),
		250000: newHashFromStr("14d2f24d29bed75354f3f88a5fb50022fc064b02291fdf873800000000000000"),
		279000: newHashFromStr("407ebde958e44190fa9e810ea1fc3a7ef601c3b0a0728cae0100000000000000"),
		295000: newHashFromStr("83a93246c67003105af33ae0b29dd66f689d0f0ff54e9b4d0000000000000000"),
		300255: newHashFromStr("b2f3a0f0de4120c1089d5f5280a263059f9b6e7c520428160000000000000000"),
		319400: newHashFromStr("3bf115fd057391587ca39a531c5d4989e1adec9b2e05c6210000000000000000"),
		343185: newHashFromStr("548536d48e7678fcfa034202dd45d4a76b1ad061f38b2b070000000000000000"),
		352940: newHashFromStr("ffc9520143e41c94b6e03c2fa3e62bb76b55ba2df45d75100000000000000000"),
		382320: newHashFromStr("b28afdde92b0899715e40362f56afdb20e3d135bedc68d0a0000000000000000"),
		401465: newHashFromStr("eed16cb3e893ed9366f27c39a9ecd95465d02e3ef40e45010000000000000000"),
		420000: newHashFromStr("a1ff746b2d42b834cb7d6b8981b09c265c2cabc016e8cc020000000000000000"),
		440000: newHashFromStr("9bf296b8de5f834f7635d5e258a434ad51b4dbbcf7c08c030000000000000000"),
		450000: newHashFromStr("0ba2070c62cd9da1f8cef88a0648c661a411d33e728340010000000000000000"),
		460000: newHashFromStr("8c25fc7e414d3e868d6ce0ec473c30ad44e7e8bc1b75ef000000000000000000"),
		470000: newHashFromStr("89756d1ed75901437300af10d5ab69070a282e729c536c000000000000000000"),
		478559: newHashFromStr("ec5e1a193601f25ff1d94b421ddead0dbefcb99cf91e65000000000000000000"),
		480000: newHashFromStr("f93408ffca92d88a6e46d3b90046f97bde6be0c08e7ed40c0000000000000000"),
		490000: newHashFromStr("d1c65d766c6dc270b8ff4f1edb052fb71dc2b4750ede8a010000000000000000"),
		500000: newHashFromStr("01b2328355f4a4dc9efa5c610687304507b7df9f3f4de1050000000000000000"),
		504031: newHashFromStr("9cabb6ee1b1a4c3b659d70be75810be83d0a0db665bf1e010000000000000000"),
		510000: newHashFromStr("040e6b1f2f4cb198a5780d366bf81e591de257642b9267030000000000000000"),
		525000: newHashFromStr("c994fba2bf168333fd969bcfa64f03ca1b62074f9a8f1b010000000000000000"),
		530359: newHashFromStr("0391c40195cf8ae3436f3955f1a8444f07468fd08bda1a010000000000000000"),
		556767: newHashFromStr("6cd5e644acccee5743ce2e93c541d34169933b6eff2646000000000000000000"),
		582680: newHashFromStr("18cc7d8c39ca16dc749acb7278a471964f7dec6ae3b8b4010000000000000000"),
		609136: newHashFromStr("b1c55b4f69aa2e3209c91ae413c355c65aacfa07b28bb4000000000000000000"),
		635259: newHashFromStr("f73075b2c598f49b3a19558c070b52d5a5d6c21fefdf33000000000000000000"),
		661648: newHashFromStr("7d7510f907bdc9bd2907e56beceaef31f78f2c8b9d4c28040000000000000000"),
		664198: newHashFromStr("60824622a1d2b689fbb234ce2c5939ff92e8ed8c57902f0c0000000000000000"),
		680140: newHashFromStr("0b7c2ff6c3658cb3f846aa092145c44a1d45638b56482c230000000000000000"),
		686621: newHashFromStr("45b7e5be980bd6e98a22f895fcdc80546d9f0a57f7e68f3c0000000000000000"),
		713661: newHashFromStr("8defaaea383ab73c75ceea3f08190f3ab5ccc70743f876060000000000000000"),
		739536: newHashFromStr("617bfc596bce59b129242fe67b5afe0509560946cd04db060000000000000000"),
		766195: newHashFromStr("94e0246db72955957dedb431eb1096de9a5b715348c92b100000000000000000"),
	},
	LastCheckpoint:  525000,
	HalvingInterval: 210000,

	Block: BlockParams{
		Forks: []*ForkActivation{
			atHeight(ForkBIP34, 227931, newHashFromStr("b808089c756add1591b1d17bab44bba3fed9e02f942ab4894b02000000000000")),
			atHeight(ForkBIP65, 388381, newHashFromStr("f035476cfaeb9f677c2cdad00fd908c556775ded24b6c2040000000000000000")),
			atHeight(ForkBIP66, 363725, newHashFromStr("3109b588941188a9f1c2576aae462d729b8cce9da1ea79030000000000000000")),
			atHeight(ForkUAHF, 478558, newHashFromStr("432d350741fbf28f2e1486eabe2c4e143bfe2241af6518010000000000000000")),
			atHeight(ForkDAA, 504031, newHashFromStr("9cabb6ee1b1a4c3b659d70be75810be83d0a0db665bf1e010000000000000000")),
			atHeight(ForkMagneticAnomaly, 556767, newHashFromStr("6cd5e644acccee5743ce2e93c541d34169933b6eff2646000000000000000000")),
			atHeight(ForkGreatWall, 582680, newHashFromStr("18cc7d8c39ca16dc749acb7278a471964f7dec6ae3b8b4010000000000000000")),
			atTimeObserved(ForkGraviton, 1573819200, 609136, newHashFromStr("b1c55b4f69aa2e3209c91ae413c355c65aacfa07b28bb4000000000000000000")),
			atTimeObserved(ForkPhonon, 1589544000, 635259, newHashFromStr("f73075b2c598f49b3a19558c070b52d5a5d6c21fefdf33000000000000000000")),
			atTime(ForkASERT, 1605441600),
			atTimeObserved(ForkAxion, 1605441600, 661648, newHashFromStr("7d7510f907bdc9bd2907e56beceaef31f78f2c8b9d4c28040000000000000000")),
			atTimeObserved(ForkTachyon, 1621080000, 686621, newHashFromStr("45b7e5be980bd6e98a22f895fcdc80546d9f0a57f7e68f3c0000000000000000")),
			atTimeObserved(ForkSelectron, 1636977600, 713661, newHashFromStr("8defaaea383ab73c75ceea3f08190f3ab5ccc70743f876060000000000000000")),
			atTimeObserved(ForkGluon, 1652572800, 739536, newHashFromStr("617bfc596bce59b129242fe67b5afe0509560946cd04db060000000000000000")),
			atTimeObserved(ForkJefferson, 1668470400, 766195, newHashFromStr("94e0246db72955957dedb431eb1096de9a5b715348c92b100000000000000000")),
			atTime(ForkWellington, 1684108800),
		},
		PruneAfterHeight: 1000,
		KeepBlocks:       288,
		MaxTipAge:        24 * time.Hour,
		SlowHeight:       325000,
	},

	BIP30: map[uint32]*externalapi.DomainHash{
		91842: newHashFromStr("eccae000e3c8e4e093936360431f3b7603c563c1ff6181390a4d0a0000000000"),
		91880: newHashFromStr("21d77ccb4c08386a04ac0196ae10f6a1d2c2a377558ca190f143070000000000"),
	},

	ActivationThreshold: 1916, // 95% of MinerWindow
	MinerWindow:         2016,
	Deploys:             mainnetDeploys,
	Deployments:         deploymentMap(mainnetDeploys),

	KeyPrefix: KeyPrefix{
		PrivKey:    0x80,
		XPubKey:    0x0488b21e,
		XPrivKey:   0x0488ade4,
		XPubKey58:  "xpub",
		XPrivKey58: "xprv",
		CoinType:   0,
	},
	AddressPrefix: AddressPrefix{
		PubKeyHash: 0x00,
		ScriptHash: 0x05,
		CashAddr:   "ecash",
	},

	RequireStandard: true,
	MinRelay:        1000,
	FeeRate:         100000,
	MaxFeeRate:      400000,
	SelfConnect:     false,
	RequestMempool:  false,
}
