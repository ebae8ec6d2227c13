// Package dagconfig defines the network parameters (C8) this chain's
// consensus code is evaluated against: pow limits, retarget switch
// points, message-start bytes and address prefixes for each of the four
// networks, per spec.md §4.8.
package dagconfig

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hashes"
)

// bigOne is 1 represented as a big.Int, defined once to avoid the
// allocation overhead of recreating it.
var bigOne = big.NewInt(1)

// mainPowLimit is the highest allowed target for the main network:
// 0x007fffff...ff (2^247 - 1), per spec.md §4.8. Its compact encoding
// is lossy — BigToCompact truncates to the top 23 mantissa bits — which
// is exactly how it reproduces the genesis block's bits, 0x1f7fffff.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 247), bigOne)

// regtestPowLimit is the highest allowed target for regtest:
// 0x7fffffff...ff.
var regtestPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

// Net is a four-byte network identifier, the key Register records. For
// mainnet it equals MessageStart; the other networks use their own tags.
type Net uint32

// ScriptFlagException relaxes ancillary script-verification flags for a
// specific historical block hash; opaque to PoW, carried only as
// configuration data consumed by higher layers (spec.md §4.5/§6).
type ScriptFlagException struct {
	BlockHash *externalapi.DomainHash
	Flags     uint32
}

// Params holds the network-wide constants PoW verification and the
// difficulty controller are evaluated against. One immutable value per
// network, constructed once at startup and shared by reference
// thereafter (spec.md §4.2 Lifecycle).
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Net is the network's four-byte identifier (see the Net type); the
	// magic bytes used on the wire are MessageStart.
	Net Net

	// GenesisHeader is the first header of the chain.
	GenesisHeader *externalapi.BlockHeader

	// PowLimit is the highest allowed target, as a u256.
	PowLimit *big.Int

	// PowLimitCompact is PowLimit in compact ("nBits") form.
	PowLimitCompact uint32

	// TargetSpacing is the desired seconds between blocks.
	TargetSpacing uint32

	// TargetTimespan is the retarget window, in seconds.
	TargetTimespan uint32

	// AllowMinDifficultyBlocks marks a network that permits a block more
	// than 2*TargetSpacing late to claim PowLimit outright. Carried as
	// configuration only; difficultymanager does not read it.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables the difficulty controller entirely,
	// returning the tip's own bits unchanged (regtest).
	NoRetargeting bool

	// TailEmissionBlockHeight is the height at which block subsidy
	// transitions to its tail-emission schedule. Carried as inert
	// configuration; no reward-calculation code in this repository
	// consumes it, since subsidy policy is out of scope per spec.md §1.
	TailEmissionBlockHeight uint64

	// PowV2SwitchTime and PowV3SwitchTime hold the header-time
	// thresholds of the three PoW variants (spec.md §4.5).
	// pow.VariantForTime uses its own TV2/TV3 constants, which have the
	// same values, and does not read these fields.
	PowV2SwitchTime uint32
	PowV3SwitchTime uint32

	// RetargetV2SwitchHeight holds the tip-height threshold above which
	// the difficulty controller's variant B interval applies (spec.md
	// §4.6). difficultymanager uses its own VariantBSwitchHeight
	// constant, which has the same value, and does not read this field.
	RetargetV2SwitchHeight uint64

	// ScriptFlagExceptions maps a block hash to the ancillary
	// script-verification flags that block relaxes.
	ScriptFlagExceptions []ScriptFlagException

	// MessageStart is the four magic bytes prefixing every wire
	// message on this network.
	MessageStart [4]byte

	// Prefixes and HRP for address encoding.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	Bech32HRP        string
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name: "mainnet",
	Net:  0xE43A7CD1,

	GenesisHeader: &mainnetGenesisHeader,

	PowLimit:        mainPowLimit,
	PowLimitCompact: 0x1f7fffff,

	TargetSpacing:  120,
	TargetTimespan: 120,

	TailEmissionBlockHeight: 420480,

	PowV2SwitchTime: 1723869065,
	PowV3SwitchTime: 1726799420,

	RetargetV2SwitchHeight: 4349,

	MessageStart: [4]byte{0xE4, 0x3A, 0x7C, 0xD1},

	PubKeyHashAddrID: 137,
	ScriptHashAddrID: 135,
	PrivateKeyID:     117,
	Bech32HRP:        "sh",
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name: "testnet",
	Net:  0x544E4554, // "TNET"

	GenesisHeader: &testnetGenesisHeader,

	PowLimit:        mainPowLimit,
	PowLimitCompact: 0x1f7fffff,

	TargetSpacing:  300,
	TargetTimespan: 300,

	AllowMinDifficultyBlocks: true,

	TailEmissionBlockHeight: 420480,

	PowV2SwitchTime: 1723869065,
	PowV3SwitchTime: 1726799420,

	RetargetV2SwitchHeight: 4349,

	MessageStart: [4]byte{0x0B, 0x11, 0x09, 0x07},

	PubKeyHashAddrID: 111,
	ScriptHashAddrID: 196,
	PrivateKeyID:     239,
	Bech32HRP:        "tb",
}

// SignetParams defines the network parameters for signet. MessageStart
// is derived from the caller-supplied challenge script at construction
// time via NewSignetParams; this zero value is the conventional
// "default signet" placeholder, matching no challenge.
var SignetParams = Params{
	Name: "signet",
	Net:  0x53494756, // "SIGV"

	GenesisHeader: &signetGenesisHeader,

	PowLimit:        mainPowLimit,
	PowLimitCompact: 0x1f7fffff,

	TargetSpacing:  120,
	TargetTimespan: 120,

	TailEmissionBlockHeight: 420480,

	PowV2SwitchTime: 1723869065,
	PowV3SwitchTime: 1726799420,

	RetargetV2SwitchHeight: 4349,

	PubKeyHashAddrID: 111,
	ScriptHashAddrID: 196,
	PrivateKeyID:     239,
	Bech32HRP:        "tb",
}

// NewSignetParams returns a copy of SignetParams with MessageStart set
// to the first four bytes of sha256(challenge), per spec.md §4.8.
func NewSignetParams(challenge []byte) Params {
	params := SignetParams
	digest := hashes.Sha256(challenge).ByteSlice()
	copy(params.MessageStart[:], digest[:4])
	return params
}

// RegtestParams defines the network parameters for regtest: no
// retargeting and an easy pow limit. Its activation fields hold the same
// values as mainnet's; since the PoW and retarget code use their own
// constants rather than these fields, changing them does not move the
// activation points.
var RegtestParams = Params{
	Name: "regtest",
	Net:  0x52454754, // "REGT"

	GenesisHeader: &regtestGenesisHeader,

	PowLimit:        regtestPowLimit,
	PowLimitCompact: 0x207fffff,

	TargetSpacing:  600,
	TargetTimespan: 600,

	NoRetargeting: true,

	PowV2SwitchTime: 1723869065,
	PowV3SwitchTime: 1726799420,

	RetargetV2SwitchHeight: 4349,

	PubKeyHashAddrID: 100,
	ScriptHashAddrID: 196,
	PrivateKeyID:     239,
	Bech32HRP:        "bcrt",
}

// ErrDuplicateNet describes an error where a network's parameters
// could not be registered because its Net is already registered,
// either by a previous Register call or one of the four default
// networks.
var ErrDuplicateNet = errors.New("duplicate network")

var registeredNets = make(map[Net]struct{})

// Register records the Net of a network's parameters, whether or not it
// is one of the four built-in networks, so that a second network with
// the same Net is refused. Returns ErrDuplicateNet if already
// registered.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	return nil
}

// mustRegister is Register, except it panics on error. Only call from
// package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&SignetParams)
	mustRegister(&RegtestParams)
}

// newHashFromStr converts the given big-endian hex string into a
// DomainHash, panicking on error. Only ever called with hard-coded,
// known-good hashes, so a panic here can only mean a bug in this file.
func newHashFromStr(hexStr string) *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
