package expr

// The syntax trees are closed, kind-tagged unions. Every evaluator
// switches exhaustively on the kind; there is no open polymorphism.

// numKind tags the variants of a numeric node.
type numKind uint8

const (
	numLit  numKind = iota // literal constant
	numVar                 // coordinate variable (x or y slot)
	numNeg                 // unary minus
	numBin                 // binary arithmetic
	numCall                // built-in function call
)

// numOp enumerates binary arithmetic operators.
type numOp uint8

const (
	opAdd numOp = iota
	opSub
	opMul
	opDiv
	opMod
	opPow
)

// varSlot selects which coordinate a variable node reads.
type varSlot uint8

const (
	slotX varSlot = iota // x (or the single transform input, spelled x or n)
	slotY                // y
)

// numNode is one node of a numeric expression tree. Which fields are
// meaningful depends on kind; the zero value of the rest is ignored.
type numNode struct {
	kind numKind
	lit  float64   // numLit
	slot varSlot   // numVar
	op   numOp     // numBin
	l, r *numNode  // numBin (r also the exponent for opPow)
	neg  *numNode  // numNeg
	fn   string    // numCall
	args []*numNode
}

// boolKind tags the variants of a boolean node.
type boolKind uint8

const (
	boolLit   boolKind = iota // literal true/false
	boolNot                   // !
	boolLogic                 // && or ||
	boolCmp                   // numeric comparison
)

// logicOp enumerates boolean connectives.
type logicOp uint8

const (
	opAnd logicOp = iota
	opOr
)

// cmpOp enumerates comparison operators.
type cmpOp uint8

const (
	cmpEq cmpOp = iota
	cmpNeq
	cmpLT
	cmpLE
	cmpGT
	cmpGE
)

// boolNode is one node of a boolean expression tree.
type boolNode struct {
	kind  boolKind
	lit   bool      // boolLit
	inner *boolNode // boolNot
	op    logicOp   // boolLogic
	l, r  *boolNode // boolLogic
	cmp   cmpOp     // boolCmp
	ln    *numNode  // boolCmp left operand
	rn    *numNode  // boolCmp right operand
}

// isBareVar reports whether the tree is exactly one variable read —
// the shape of the identity transform, however it was spelled.
func (n *numNode) isBareVar() bool {
	return n != nil && n.kind == numVar
}
