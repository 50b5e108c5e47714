package resolver

// GlobalSymbol enumerates the compiler's built-in identifiers: magic
// variables (msg, block, tx, ...), their members, and the built-in
// functions every Solidity program can call without an import.
// Enumerated from original_source/wake's magic-variable tables rather
// than invented, since these names and their groupings are fixed by
// the language, not by this implementation.
type GlobalSymbol int

const (
	GlobalUnknown GlobalSymbol = iota

	GlobalMsg
	GlobalMsgSender
	GlobalMsgValue
	GlobalMsgData
	GlobalMsgSig

	GlobalBlock
	GlobalBlockNumber
	GlobalBlockTimestamp
	GlobalBlockDifficulty
	GlobalBlockPrevrandao
	GlobalBlockGasLimit
	GlobalBlockCoinbase
	GlobalBlockChainID
	GlobalBlockBaseFee

	GlobalTx
	GlobalTxOrigin
	GlobalTxGasPrice

	GlobalAbi
	GlobalAbiEncode
	GlobalAbiEncodePacked
	GlobalAbiEncodeWithSelector
	GlobalAbiEncodeWithSignature
	GlobalAbiEncodeCall
	GlobalAbiDecode

	GlobalThis
	GlobalSuper

	GlobalNow

	GlobalRequire
	GlobalRevert
	GlobalAssert
	GlobalSelfdestruct
	GlobalSuicide // pre-0.5 alias for selfdestruct, still tolerated

	GlobalBlockhash
	GlobalGasleft
	GlobalKeccak256
	GlobalSha256
	GlobalRipemd160
	GlobalEcrecover
	GlobalAddmod
	GlobalMulmod

	GlobalType // the type(...) built-in

	// The remaining symbols are never reached by name lookup (they have
	// no fixed dotted path — their left-hand side is an arbitrary
	// expression, not a magic root) so they carry no globalNames entry.
	// internal/binder's resolveMemberAccess assigns them directly from
	// Left.Type() + MemberName, per spec.md §4.4's type-derived
	// fallback; grouping and naming follow original_source/wake's
	// GlobalSymbol enum (enums.py) one-for-one.
	GlobalAddressBalance
	GlobalAddressCode
	GlobalAddressCodeHash
	GlobalAddressTransfer
	GlobalAddressSend
	GlobalAddressCall
	GlobalAddressDelegateCall
	GlobalAddressStaticCall

	GlobalArrayLength
	GlobalArrayPush
	GlobalArrayPop

	GlobalBytesLength
	GlobalBytesPush
	GlobalBytesConcat
	GlobalStringConcat

	GlobalFunctionSelector
	GlobalFunctionValue
	GlobalFunctionGas
	GlobalFunctionAddress

	GlobalMetaTypeName
	GlobalMetaTypeCreationCode
	GlobalMetaTypeRuntimeCode
	GlobalMetaTypeInterfaceID
	GlobalMetaTypeMin
	GlobalMetaTypeMax

	GlobalUserDefinedValueTypeWrap
	GlobalUserDefinedValueTypeUnwrap
)

// globalNames maps every dotted path the compiler can leave
// unresolved (negative referencedDeclaration ids, per spec.md §4.4)
// to its GlobalSymbol. Built as a flat map rather than a nested one
// because binding only ever needs a single string lookup: the caller
// already knows it is resolving a leaf identifier or a two-part
// "magic.member" path.
var globalNames = map[string]GlobalSymbol{
	"msg":      GlobalMsg,
	"msg.sender": GlobalMsgSender,
	"msg.value":  GlobalMsgValue,
	"msg.data":   GlobalMsgData,
	"msg.sig":    GlobalMsgSig,

	"block":            GlobalBlock,
	"block.number":     GlobalBlockNumber,
	"block.timestamp":  GlobalBlockTimestamp,
	"block.difficulty": GlobalBlockDifficulty,
	"block.prevrandao": GlobalBlockPrevrandao,
	"block.gaslimit":   GlobalBlockGasLimit,
	"block.coinbase":   GlobalBlockCoinbase,
	"block.chainid":    GlobalBlockChainID,
	"block.basefee":    GlobalBlockBaseFee,

	"tx":          GlobalTx,
	"tx.origin":   GlobalTxOrigin,
	"tx.gasprice": GlobalTxGasPrice,

	"abi":                     GlobalAbi,
	"abi.encode":              GlobalAbiEncode,
	"abi.encodePacked":        GlobalAbiEncodePacked,
	"abi.encodeWithSelector":  GlobalAbiEncodeWithSelector,
	"abi.encodeWithSignature": GlobalAbiEncodeWithSignature,
	"abi.encodeCall":          GlobalAbiEncodeCall,
	"abi.decode":              GlobalAbiDecode,

	"this":  GlobalThis,
	"super": GlobalSuper,
	"now":   GlobalNow,

	"require":      GlobalRequire,
	"revert":       GlobalRevert,
	"assert":       GlobalAssert,
	"selfdestruct": GlobalSelfdestruct,
	"suicide":      GlobalSuicide,

	"blockhash":  GlobalBlockhash,
	"gasleft":    GlobalGasleft,
	"keccak256":  GlobalKeccak256,
	"sha256":     GlobalSha256,
	"ripemd160":  GlobalRipemd160,
	"ecrecover":  GlobalEcrecover,
	"addmod":     GlobalAddmod,
	"mulmod":     GlobalMulmod,
	"type":       GlobalType,
}

// LookupGlobal resolves a dotted name ("msg.sender", "require", ...)
// to its GlobalSymbol. Reports GlobalUnknown, false if the name is not
// one of the compiler's built-ins.
func LookupGlobal(name string) (GlobalSymbol, bool) {
	g, ok := globalNames[name]
	return g, ok
}

// baseGlobalNames are the magic-variable roots a MemberAccess's Left
// expression may resolve to, keyed by GlobalSymbol so internal/binder
// can build the dotted "base.member" string that a MemberAccess itself
// never reports a referencedDeclaration for (the compiler only negates
// the leaf Identifier's id, e.g. `msg` in `msg.sender`).
var baseGlobalNames = map[GlobalSymbol]string{
	GlobalMsg:   "msg",
	GlobalBlock: "block",
	GlobalTx:    "tx",
	GlobalAbi:   "abi",
}

// BaseName returns the dotted-path root name for g, if g is one of the
// magic-variable roots (msg, block, tx, abi) a member access can chain
// off of.
func BaseName(g GlobalSymbol) (string, bool) {
	name, ok := baseGlobalNames[g]
	return name, ok
}
