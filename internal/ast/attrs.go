package ast

// BlockAttr is the resolver's static scope-analysis output for one
// Block. It replaces the teacher's name-keyed SymbolTable with slot
// arrays: every local the block declares gets a stable index, and every
// free name the block references resolves to exactly one enclosing
// block's slot at resolve time, so the evaluator never hashes a name at
// run time.
//
// The resolver fills this in during one walk of the block that declares
// and binds each statement in turn; see internal/resolver. It is nil on
// a freshly parsed Block until resolution runs.
type BlockAttr struct {
	// LocalInfo lists this block's locals in declaration order; slot i
	// is LocalInfo[i].
	LocalInfo []string

	// NameToLocalIndex maps a local's name to its slot in LocalInfo.
	NameToLocalIndex map[string]int

	// NonlocalIndexes lists the free names this block refers to, each
	// resolved to a slot in some enclosing block's frame.
	NonlocalIndexes []NonlocalRef

	// NameToNonlocalIndex maps a free name to its slot in
	// NonlocalIndexes.
	NameToNonlocalIndex map[string]int

	// Parent is the lexically enclosing block: the synthetic builtins
	// block for a Program, the block a function literal appears in for
	// that function's body. It is nil only for a block with no enclosing
	// scope, such as the builtins block itself.
	Parent *Block
}

// NonlocalRef is one entry in a block's free-name table: the name binds
// to slot Index of whichever enclosing frame instantiates OwnerBlock.
// The evaluator walks the frame's parent chain comparing frame.Block to
// OwnerBlock, rather than counting a fixed depth, since the same block
// can be captured by closures at different nesting depths.
type NonlocalRef struct {
	OwnerBlock *Block
	Index      int
}

// NewBlockAttr builds an empty BlockAttr with its lookup maps ready to
// use. The resolver calls this for every block it enters, including a
// synthetic builtins scope that sits above a program's root block.
func NewBlockAttr() *BlockAttr {
	return &BlockAttr{
		NameToLocalIndex:    map[string]int{},
		NameToNonlocalIndex: map[string]int{},
	}
}

func newBlockAttr() *BlockAttr { return NewBlockAttr() }

// DeclareLocal reserves the next slot for name and returns its index.
// Callers (the resolver) are responsible for rejecting a duplicate name
// in the same block before calling this.
func (b *BlockAttr) DeclareLocal(name string) int {
	idx := len(b.LocalInfo)
	b.LocalInfo = append(b.LocalInfo, name)
	b.NameToLocalIndex[name] = idx
	return idx
}

// DeclareNonlocal reserves the next free-name slot for name, resolved to
// the given enclosing-frame coordinates.
func (b *BlockAttr) DeclareNonlocal(name string, owner *Block, index int) int {
	idx := len(b.NonlocalIndexes)
	b.NonlocalIndexes = append(b.NonlocalIndexes, NonlocalRef{OwnerBlock: owner, Index: index})
	b.NameToNonlocalIndex[name] = idx
	return idx
}

// BlockAttrSnapshot captures a BlockAttr's extent at a point in time, so
// a resolver call that declares or binds names against an
// already-committed BlockAttr (the REPL's incremental growth path) can
// be rolled back to exactly that point if it later fails partway
// through.
type BlockAttrSnapshot struct {
	locals    int
	nonlocals int
}

// Snapshot captures b's current extent.
func (b *BlockAttr) Snapshot() BlockAttrSnapshot {
	return BlockAttrSnapshot{locals: len(b.LocalInfo), nonlocals: len(b.NonlocalIndexes)}
}

// TruncateTo undoes every DeclareLocal/DeclareNonlocal call made against
// b since snap was taken, restoring LocalInfo, NameToLocalIndex,
// NonlocalIndexes, and NameToNonlocalIndex to snap's extent.
func (b *BlockAttr) TruncateTo(snap BlockAttrSnapshot) {
	for _, name := range b.LocalInfo[snap.locals:] {
		delete(b.NameToLocalIndex, name)
	}
	b.LocalInfo = b.LocalInfo[:snap.locals]

	for name, idx := range b.NameToNonlocalIndex {
		if idx >= snap.nonlocals {
			delete(b.NameToNonlocalIndex, name)
		}
	}
	b.NonlocalIndexes = b.NonlocalIndexes[:snap.nonlocals]
}

// VarAttr is the resolver's verdict on one Var reference: where to find
// its value at run time. IsLocal selects LocalInfo/NameToLocalIndex vs.
// NonlocalIndexes on the enclosing Block's BlockAttr; Index is the slot
// within whichever table applies.
type VarAttr struct {
	IsLocal bool
	Index   int
}
