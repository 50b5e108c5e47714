package ir

import (
	"encoding/hex"
	"strings"

	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/internal/schema"
	"github.com/solidity-ir/engine/internal/srcrange"
)

// Builder constructs the IR tree for one compilation unit's set of
// source files out of their decoded schema trees, registering every
// declaration's identity with the shared resolver and scheduling the
// post-process callbacks internal/binder consumes. One Builder is
// used per CU; per spec.md §4.3 the resolver itself is the only piece
// shared across CUs.
type Builder struct {
	res    *resolver.Resolver
	reg    *Registry
	cu     string
	file   string
	source []byte

	traversal int
	trace     []string
}

// NewBuilder returns a Builder for one file within one CU, sharing res
// and reg with every other file in the same CU ingest so cross-file
// identifiers can be bound once post-process runs. Pass the same
// *Registry to every Builder constructed for the same CU; pass a fresh
// one (or NewRegistry()) when only a single file's tree is needed, as
// in isolated tests.
func NewBuilder(res *resolver.Resolver, reg *Registry, cu, file string, source []byte) *Builder {
	return &Builder{res: res, reg: reg, cu: cu, file: file, source: source}
}

func (b *Builder) slice(rng srcrange.Range) string {
	start := int(rng.Start)
	end := int(rng.End())
	if start < 0 || end > len(b.source) || start > end {
		return ""
	}
	return string(b.source[start:end])
}

func toRange(s schema.Src) srcrange.Range {
	return srcrange.Range{Start: s.Offset, Length: s.Length}
}

// nextKey mints the next (file, traversalIndex) canonical key,
// assigned in construction (depth-first, pre-order) traversal order,
// per spec.md §4.3.
func (b *Builder) nextKey() resolver.Key {
	k := resolver.Key{File: b.file, TraversalIndex: b.traversal}
	b.traversal++
	return k
}

// bind registers a freshly built node's identity, returns its
// resolver.NodeRef handle, and records kind in b.trace at the same
// traversal index so BuildSourceUnit can zip this file's node-kind
// sequence against whatever an earlier CU recorded for it once the
// whole tree is built (see reconcileTrace and spec.md §4.3(b)).
func (b *Builder) bind(id int64, kind Kind) resolver.NodeRef {
	ref := resolver.NodeRef{File: b.file, ID: id}
	key := b.nextKey()
	b.res.BindIdentity(key, ref)
	b.trace = append(b.trace, kind.String())
	return ref
}

// registerDecl makes d discoverable by the compiler's raw node id
// across every file in the CU, for internal/binder to resolve
// referencedDeclaration ids against.
func (b *Builder) registerDecl(id int64, d *Declaration) {
	if b.reg != nil {
		b.reg.Register(id, d)
	}
}

// BuildSourceUnit is the entry point: decode and construct the whole
// tree for one file's SourceUnit node.
func (b *Builder) BuildSourceUnit(raw []byte) (*SourceUnit, error) {
	node, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	su, ok := node.(*schema.SourceUnit)
	if !ok {
		return nil, ierrors.New(ierrors.SchemaViolation, b.cu, "top-level node is not a SourceUnit")
	}

	out := &SourceUnit{
		AbsolutePath:    su.AbsolutePath,
		License:         su.License,
		ExportedSymbols: su.ExportedSymbols,
	}
	out.Kind = KindSourceUnit
	out.Range = toRange(su.Src)
	out.Source = b.slice(out.Range)
	out.SourceUnit = su.AbsolutePath
	out.Handle = b.bind(su.ID, out.Kind)
	if b.reg != nil {
		b.reg.Register(su.ID, out)
		b.reg.RegisterSourceUnit(out)
	}

	for _, rawChild := range su.Nodes {
		child, err := b.buildTopLevel(rawChild)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		setParent(out, child)
		out.appendChild(child)
		out.Nodes = append(out.Nodes, child)
	}
	b.indexIntervals(out)
	if err := b.res.ReconcileTrace(b.file, b.trace); err != nil {
		return nil, err
	}
	return out, nil
}

// indexIntervals walks the freshly built tree once and inserts every
// non-zero-length node into su's interval tree, per spec.md §4.7/§3's
// "for every IR node inserted into the interval tree, the interval is
// the node's byte range" invariant. Structured-documentation nodes are
// inserted like any other node: their range legally precedes their
// owning declaration's, which the tree (keyed purely on Start) handles
// without special-casing. The same top-down walk stamps every node's
// Depth and SourceUnit, which the bottom-up construction cannot know
// while a subtree is still detached from its parent.
func (b *Builder) indexIntervals(su *SourceUnit) {
	su.Intervals = srcrange.New[Any]()
	su.Lines = srcrange.NewLineIndex(b.source)

	var insert func(n Any, depth int)
	insert = func(n Any, depth int) {
		if n == nil || isNilAny(n) {
			return
		}
		base := n.Base()
		base.Depth = depth
		base.SourceUnit = su.AbsolutePath
		if base.Range.Length > 0 {
			su.Intervals.Insert(base.Range, n)
		}
		for _, c := range base.Children() {
			insert(c, depth+1)
		}
	}
	insert(su, 0)
}

// isNilAny guards the typed-nil-interface footgun the same way
// internal/visit's isNilConcrete does, for the handful of Any-typed
// slots (ExternalReference.Declaration aside) that may hold a nil
// concrete pointer behind a non-nil interface.
func isNilAny(n Any) bool {
	switch v := n.(type) {
	case *Declaration:
		return v == nil
	case *Expression:
		return v == nil
	case *Statement:
		return v == nil
	case *TypeName:
		return v == nil
	case *YulNode:
		return v == nil
	case *IdentifierPath:
		return v == nil
	case *ModifierInvocation:
		return v == nil
	case *ImportDirective:
		return v == nil
	case *PragmaDirective:
		return v == nil
	case *UsingForDirective:
		return v == nil
	case *TryClause:
		return v == nil
	case *StructuredDocumentation:
		return v == nil
	default:
		return false
	}
}

// buildTopLevel handles every node kind legal directly under a
// SourceUnit: directives, contract definitions, and (≥0.7.1)
// free-standing function/variable declarations.
func (b *Builder) buildTopLevel(raw []byte) (Any, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	switch n := disc.(type) {
	case *schema.PragmaDirective:
		return b.buildPragma(n), nil
	case *schema.ImportDirective:
		return b.buildImport(n), nil
	case *schema.UsingForDirective:
		return b.buildUsingFor(n)
	case *schema.ContractDefinition:
		return b.buildContract(n)
	case *schema.FunctionDefinition:
		d, err := b.buildFunction(n)
		if err == nil {
			d.FreeStanding = true
		}
		return d, err
	case *schema.VariableDeclaration:
		d, err := b.buildVariable(n)
		if err == nil {
			d.FreeStanding = true
		}
		return d, err
	case *schema.StructDefinition:
		return b.buildStruct(n)
	case *schema.EnumDefinition:
		return b.buildEnum(n)
	case *schema.ErrorDefinition:
		return b.buildError(n)
	case *schema.UserDefinedValueTypeDefinition:
		return b.buildUserDefinedValueType(n)
	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected top-level nodeType %q", disc.Kind())
	}
}

func (b *Builder) buildPragma(n *schema.PragmaDirective) *PragmaDirective {
	p := &PragmaDirective{Literals: n.Literals}
	p.Kind = KindPragmaDirective
	p.Range = toRange(n.Src)
	p.Source = b.slice(p.Range)
	p.Handle = b.bind(n.ID, p.Kind)
	return p
}

func (b *Builder) buildImport(n *schema.ImportDirective) *ImportDirective {
	im := &ImportDirective{
		File:         n.File,
		AbsolutePath: n.AbsolutePath,
		UnitAlias:    n.UnitAlias,
	}
	for _, a := range n.SymbolAliases {
		local := a.Foreign.Name
		if a.Local != nil {
			local = *a.Local
		}
		im.SymbolAliases = append(im.SymbolAliases, ImportSymbolAlias{
			ForeignName: a.Foreign.Name,
			LocalName:   local,
		})
	}
	im.Kind = KindImportDirective
	im.Range = toRange(n.Src)
	im.Source = b.slice(im.Range)
	im.Handle = b.bind(n.ID, im.Kind)
	if b.reg != nil {
		b.reg.Register(n.ID, im)
	}
	return im
}

// buildUsingFor builds a `using Lib for T;` / `using {f, g} for T;`
// directive. Exactly one of n.LibraryName / n.FunctionList is set by
// the compiler; n.TypeName is nil for the `for *` wildcard form.
func (b *Builder) buildUsingFor(n *schema.UsingForDirective) (*UsingForDirective, error) {
	u := &UsingForDirective{Global: n.Global}
	u.Kind = KindUsingForDirective
	u.Range = toRange(n.Src)
	u.Handle = b.bind(n.ID, u.Kind)

	if n.LibraryName != nil {
		lib, err := b.buildTypeName(*n.LibraryName)
		if err != nil {
			return nil, err
		}
		u.Library = lib
		b.linkChildren(u, lib)
	}
	for _, fn := range n.FunctionList {
		if fn.Function == nil {
			continue
		}
		path, err := b.buildIdentifierPath(fn.Function)
		if err != nil {
			return nil, err
		}
		u.Functions = append(u.Functions, path)
		b.linkChildren(u, path)
	}
	if n.TypeName != nil {
		applied, err := b.buildTypeName(*n.TypeName)
		if err != nil {
			return nil, err
		}
		u.AppliedTo = applied
		b.linkChildren(u, applied)
	}

	u.Source = b.slice(u.Range)
	return u, nil
}

func (b *Builder) buildContract(n *schema.ContractDefinition) (*Declaration, error) {
	d := &Declaration{
		Name:                    n.Name,
		ContractKind:            n.ContractKind,
		Abstract:                n.Abstract,
		LinearizedBaseContracts: n.LinearizedBaseContracts,
		UsedErrors:              n.UsedErrors,
		UsedEvents:              n.UsedEvents,
	}
	d.Kind = KindContractDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}

	for _, rawBase := range n.BaseContracts {
		base, err := b.buildInheritanceSpecifier(rawBase)
		if err != nil {
			return nil, err
		}
		d.BaseContracts = append(d.BaseContracts, base)
		setParent(d, base)
		d.appendChild(base)
	}

	for _, rawMember := range n.Nodes {
		member, err := b.buildContractMember(rawMember)
		if err != nil {
			return nil, err
		}
		if member == nil {
			continue
		}
		setParent(d, member)
		d.appendChild(member)
		d.Members = append(d.Members, member)
	}
	return d, nil
}

// buildInheritanceSpecifier unwraps one entry of a ContractDefinition's
// `is Base(args)` list down to the base contract's TypeName; the
// specifier node itself carries no independent semantics spec.md
// tracks (constructor arguments are ordinary call-site expressions,
// not part of the declared type), so only its id is bound to keep
// traversal-index numbering aligned with the compiler's own walk.
func (b *Builder) buildInheritanceSpecifier(raw []byte) (*TypeName, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	spec, ok := disc.(*schema.InheritanceSpecifier)
	if !ok {
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected base-contract nodeType %q", disc.Kind())
	}
	b.bind(spec.ID, KindInheritanceSpecifier)
	return b.buildTypeName(spec.BaseName)
}

func (b *Builder) buildContractMember(raw []byte) (Any, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	switch n := disc.(type) {
	case *schema.FunctionDefinition:
		return b.buildFunction(n)
	case *schema.ModifierDefinition:
		return b.buildModifier(n)
	case *schema.VariableDeclaration:
		return b.buildVariable(n)
	case *schema.StructDefinition:
		return b.buildStruct(n)
	case *schema.EnumDefinition:
		return b.buildEnum(n)
	case *schema.EventDefinition:
		return b.buildEvent(n)
	case *schema.ErrorDefinition:
		return b.buildError(n)
	case *schema.UsingForDirective:
		return b.buildUsingFor(n)
	case *schema.UserDefinedValueTypeDefinition:
		return b.buildUserDefinedValueType(n)
	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected contract member nodeType %q", disc.Kind())
	}
}

func (b *Builder) buildFunction(n *schema.FunctionDefinition) (*Declaration, error) {
	d := &Declaration{
		Name:            n.Name,
		FunctionKind:    n.Kind,
		StateMutability: n.StateMutability,
		Visibility:      n.Visibility,
		Virtual:         n.Virtual,
		Implemented:     n.Implemented,
		BaseFunctions:   n.BaseFunctions,
	}
	d.Kind = KindFunctionDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}

	params, err := b.buildParameterList(n.Parameters)
	if err != nil {
		return nil, err
	}
	d.Parameters = params
	for _, p := range params {
		setParent(d, p)
		d.appendChild(p)
	}

	rets, err := b.buildParameterList(n.ReturnParameters)
	if err != nil {
		return nil, err
	}
	d.ReturnParameters = rets
	for _, p := range rets {
		setParent(d, p)
		d.appendChild(p)
	}

	for _, m := range n.Modifiers {
		mi, err := b.buildModifierInvocation(m)
		if err != nil {
			return nil, err
		}
		setParent(d, mi)
		d.appendChild(mi)
		d.Modifiers = append(d.Modifiers, mi)
	}

	if n.Body != nil {
		body, err := b.buildStatement(*n.Body)
		if err != nil {
			return nil, err
		}
		d.Body = body
		setParent(d, body)
		d.appendChild(body)
		b.attachEnclosingStatement(body, body)
	}
	b.applyFunctionSelector(d, n.FunctionSelector)
	return d, nil
}

func (b *Builder) buildModifier(n *schema.ModifierDefinition) (*Declaration, error) {
	d := &Declaration{
		Name:       n.Name,
		Visibility: n.Visibility,
		Virtual:    n.Virtual,
	}
	d.Kind = KindModifierDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}

	params, err := b.buildParameterList(n.Parameters)
	if err != nil {
		return nil, err
	}
	d.Parameters = params
	for _, p := range params {
		setParent(d, p)
		d.appendChild(p)
	}

	if n.Body != nil {
		body, err := b.buildStatement(*n.Body)
		if err != nil {
			return nil, err
		}
		d.Body = body
		setParent(d, body)
		d.appendChild(body)
		b.attachEnclosingStatement(body, body)
	}
	return d, nil
}

func (b *Builder) buildModifierInvocation(raw schema.ModifierInvocation) (*ModifierInvocation, error) {
	mi := &ModifierInvocation{}
	mi.Kind = KindModifierInvocation
	mi.Range = toRange(raw.Src)
	mi.Source = b.slice(mi.Range)
	mi.Handle = b.bind(raw.ID, mi.Kind)

	path, err := b.buildIdentifierPathRaw(raw.ModifierName)
	if err != nil {
		return nil, err
	}
	mi.Name = path
	setParent(mi, path)
	mi.appendChild(path)

	for _, a := range raw.Arguments {
		arg, err := b.buildExpression(a)
		if err != nil {
			return nil, err
		}
		setParent(mi, arg)
		mi.appendChild(arg)
		mi.Arguments = append(mi.Arguments, arg)
	}
	return mi, nil
}

func (b *Builder) buildParameterList(pl schema.ParameterList) ([]*Declaration, error) {
	out := make([]*Declaration, 0, len(pl.Parameters))
	for _, v := range pl.Parameters {
		d, err := b.buildVariable(&v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (b *Builder) buildVariable(n *schema.VariableDeclaration) (*Declaration, error) {
	d := &Declaration{
		Name:            n.Name,
		Constant:        n.Constant,
		StateVariable:   n.StateVariable,
		Indexed:         n.Indexed,
		Mutability:      n.Mutability,
		Visibility:      n.Visibility,
		StorageLocation: n.StorageLocation,
		TypeIdentifier:  n.TypeDescriptions.TypeIdentifier,
		TypeString:      n.TypeDescriptions.TypeString,
	}
	d.Kind = KindVariableDeclaration
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}

	if n.TypeName != nil {
		tn, err := b.buildTypeName(*n.TypeName)
		if err != nil {
			return nil, err
		}
		d.TypeName = tn
		setParent(d, tn)
		d.appendChild(tn)
	}
	if n.Value != nil {
		v, err := b.buildExpression(*n.Value)
		if err != nil {
			return nil, err
		}
		d.InitialValue = v
		setParent(d, v)
		d.appendChild(v)
	}
	return d, nil
}

func (b *Builder) buildStruct(n *schema.StructDefinition) (*Declaration, error) {
	d := &Declaration{Name: n.Name, Visibility: n.Visibility}
	d.Kind = KindStructDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}
	for _, m := range n.Members {
		md, err := b.buildVariable(&m)
		if err != nil {
			return nil, err
		}
		setParent(d, md)
		d.appendChild(md)
		d.Members = append(d.Members, md)
	}
	return d, nil
}

func (b *Builder) buildEnum(n *schema.EnumDefinition) (*Declaration, error) {
	d := &Declaration{Name: n.Name}
	d.Kind = KindEnumDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}
	for _, v := range n.Members {
		vd := &Declaration{Name: v.Name}
		vd.Kind = KindEnumValue
		vd.Range = toRange(v.Src)
		vd.Source = b.slice(vd.Range)
		vd.Handle = b.bind(v.ID, vd.Kind)
		b.registerDecl(v.ID, vd)
		if v.NameLocation != nil {
			vd.NameLocation = parseNameLocationString(*v.NameLocation)
		}
		setParent(d, vd)
		d.appendChild(vd)
		d.Members = append(d.Members, vd)
	}
	return d, nil
}

func (b *Builder) buildEvent(n *schema.EventDefinition) (*Declaration, error) {
	d := &Declaration{Name: n.Name, Anonymous: n.Anonymous}
	d.Kind = KindEventDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}
	params, err := b.buildParameterList(n.Parameters)
	if err != nil {
		return nil, err
	}
	d.Parameters = params
	for _, p := range params {
		setParent(d, p)
		d.appendChild(p)
	}
	b.applyEventSelector(d, n.Name, n.EventSelector)
	return d, nil
}

func (b *Builder) buildError(n *schema.ErrorDefinition) (*Declaration, error) {
	d := &Declaration{Name: n.Name}
	d.Kind = KindErrorDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachDoc(d, n.Documentation); err != nil {
		return nil, err
	}
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}
	params, err := b.buildParameterList(n.Parameters)
	if err != nil {
		return nil, err
	}
	d.Parameters = params
	for _, p := range params {
		setParent(d, p)
		d.appendChild(p)
	}
	b.applyFunctionSelector(d, n.ErrorSelector)
	return d, nil
}

func (b *Builder) buildUserDefinedValueType(n *schema.UserDefinedValueTypeDefinition) (*Declaration, error) {
	d := &Declaration{Name: n.Name}
	d.Kind = KindUserDefinedValueTypeDefinition
	d.Range = toRange(n.Src)
	d.Source = b.slice(d.Range)
	d.Handle = b.bind(n.ID, d.Kind)
	b.registerDecl(n.ID, d)
	if err := b.attachNameLocation(d, n.NameLocation); err != nil {
		return nil, err
	}
	tn, err := b.buildTypeName(n.UnderlyingType)
	if err != nil {
		return nil, err
	}
	d.Underlying = tn
	setParent(d, tn)
	d.appendChild(tn)
	return d, nil
}

// attachDoc builds the StructuredDocumentation IR node when the
// compiler reported documentation as a node of its own
// (raw.HasNode) and appends it as d's first child, per spec.md §3's
// "structured-documentation nodes ... legally precede their owning
// declaration" invariant and SPEC_FULL.md §9 Open Question #1's
// canonical-order decision — attachDoc always runs before any other
// child is appended to d, so a plain appendChild is enough to make it
// first. The older bare-string encoding carries no node of its own to
// build; d.Documentation stays nil in that case, matching
// internal/resolver's DriftDocumentation tolerance for exactly this
// asymmetry between compiler versions.
func (b *Builder) attachDoc(d *Declaration, raw *schema.Documentation) error {
	if raw == nil || !raw.HasNode {
		return nil
	}
	doc := &StructuredDocumentation{Text: raw.Text}
	doc.Kind = KindStructuredDocumentation
	doc.Range = toRange(raw.Src)
	doc.Source = b.slice(doc.Range)
	doc.Handle = b.bind(raw.ID, doc.Kind)
	d.Documentation = doc
	setParent(d, doc)
	d.appendChild(doc)
	return nil
}

// applyFunctionSelector prefers the compiler-reported selector hex
// string (present for function/error definitions on modern compiler
// versions) and falls back to recomputing it via Keccak-256 for older
// ASTs that omit it (for errors, and for external/public functions),
// exercising the same signature hashing
// original_source/wake relies on.
func (b *Builder) applyFunctionSelector(d *Declaration, hexSelector string) {
	if hexSelector != "" {
		raw, err := hex.DecodeString(hexSelector)
		if err == nil && len(raw) == 4 {
			copy(d.Selector4[:], raw)
			d.SelectorSet = true
			return
		}
	}
	if d.Kind == KindFunctionDefinition && d.Visibility != "external" && d.Visibility != "public" {
		return
	}
	d.Selector4 = FunctionSelector(d.Name, canonicalParamTypes(d.Parameters))
	d.SelectorSet = true
}

func (b *Builder) applyEventSelector(d *Declaration, name, hexSelector string) {
	if hexSelector != "" {
		raw, err := hex.DecodeString(hexSelector)
		if err == nil && len(raw) == 32 {
			copy(d.Selector32[:], raw)
			d.SelectorSet = true
			return
		}
	}
	d.Selector32 = EventSelector(name, canonicalParamTypes(d.Parameters))
	d.SelectorSet = true
}

// canonicalParamTypes approximates the ABI canonical type name for
// each parameter from the compiler's human-readable type string, by
// taking the first whitespace-separated token (drops the
// "storage"/"memory"/"calldata" suffix the compiler appends for
// reference types, which the ABI signature never includes).
func canonicalParamTypes(params []*Declaration) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		canonical := p.TypeString
		if fields := strings.Fields(canonical); len(fields) > 0 {
			canonical = fields[0]
		}
		out = append(out, canonical)
	}
	return out
}

func (b *Builder) attachNameLocation(d *Declaration, raw *string) error {
	if raw != nil {
		d.NameLocation = parseNameLocationString(*raw)
		return nil
	}
	loc, err := DeriveNameLocation(d.Kind, d.Source, d.Range.Start)
	if err != nil {
		// Name-location recovery failing is not fatal to IR
		// construction; detectors that need it will see a nil
		// NameLocation and degrade to the full declaration range.
		return nil
	}
	d.NameLocation = loc
	return nil
}

func parseNameLocationString(s string) *NameLocation {
	var off, length, file int64
	_, err := parseTriple(s, &off, &length, &file)
	if err != nil {
		return nil
	}
	return &NameLocation{Offset: uint32(off), Length: uint32(length)}
}

func parseTriple(s string, off, length, file *int64) (int, error) {
	var src schema.Src
	if err := src.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return 0, err
	}
	*off = int64(src.Offset)
	*length = int64(src.Length)
	*file = int64(src.FileID)
	return 3, nil
}

// attachEnclosingStatement walks a freshly built statement subtree,
// stamping every Expression's Statement field with the nearest
// enclosing Statement, per spec.md §6's "statement (containing
// statement, if any)" accessor requirement.
func (b *Builder) attachEnclosingStatement(enclosing Any, node Any) {
	if node == nil {
		return
	}
	for _, c := range node.Base().Children() {
		if expr, ok := c.(*Expression); ok {
			expr.Statement = enclosing
			b.attachEnclosingStatement(enclosing, c)
			continue
		}
		if stmt, ok := c.(*Statement); ok {
			b.attachEnclosingStatement(stmt, c)
			continue
		}
		b.attachEnclosingStatement(enclosing, c)
	}
}
