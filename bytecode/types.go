package bytecode

import "fmt"

// CodeOffset is the position of an instruction within a function body.
type CodeOffset uint32

// LocalIndex identifies a function-local variable slot.
type LocalIndex uint32

// Constant is an opaque literal operand for Load. Its value never affects
// the dead-store analysis, only its identity as "some constant".
type Constant struct {
	Value interface{}
}

// Instruction is one IR operation. Only Assign and Load are restricted
// definitions (see package dse); every other shape implements Instruction
// via Other and is opaque to the dead-store analysis.
type Instruction interface {
	// isInstruction is unexported so Instruction can only be implemented
	// by the variants defined in this package.
	isInstruction()
}

// Assign represents `Dst = Src`. When Dst == Src this is a self-assignment,
// which is always a removable dead store regardless of liveness.
type Assign struct {
	Dst LocalIndex
	Src LocalIndex
}

func (Assign) isInstruction() {}

// IsSelf reports whether this assignment writes a local to itself.
func (a Assign) IsSelf() bool { return a.Dst == a.Src }

func (a Assign) String() string {
	if a.IsSelf() {
		return fmt.Sprintf("t%d = t%d (self)", a.Dst, a.Src)
	}
	return fmt.Sprintf("t%d = t%d", a.Dst, a.Src)
}

// Load represents `Dst = Const`, i.e. a constant materialization into a
// local slot.
type Load struct {
	Dst   LocalIndex
	Const Constant
}

func (Load) isInstruction() {}

func (l Load) String() string {
	return fmt.Sprintf("t%d = load %v", l.Dst, l.Const.Value)
}

// Other is a catch-all for any instruction outside {Assign, Load}: calls,
// branches, returns, stores to globals, and so on. Reads/Writes are
// informational only (e.g. for pretty-printing or future passes); the
// dead-store analysis never treats an Other as a removable definition,
// deliberately, since it may carry side effects this package does not
// model.
type Other struct {
	Opcode string
	Reads  []LocalIndex
	Writes []LocalIndex
}

func (Other) isInstruction() {}

func (o Other) String() string {
	return fmt.Sprintf("%s reads=%v writes=%v", o.Opcode, o.Reads, o.Writes)
}

// LocalType describes the declared type of one local slot. The contents
// are opaque to this package; they exist so Function.Locals has a stable
// shape for later passes (e.g. an emitter) even though dse does not
// consult it.
type LocalType struct {
	Name string
}

// AnnotationBundle is a small keyed store of per-offset analysis facts
// attached to a Function (liveness, borrow info, etc). Because code
// offsets shift whenever a pass removes or reorders instructions, the
// bundle is invalidated (cleared) by any pass that rewrites Code.
type AnnotationBundle struct {
	facts map[string]interface{}
}

// NewAnnotationBundle returns an empty bundle.
func NewAnnotationBundle() *AnnotationBundle {
	return &AnnotationBundle{facts: make(map[string]interface{})}
}

// Set stores fact under key, overwriting any previous value.
func (b *AnnotationBundle) Set(key string, fact interface{}) {
	if b.facts == nil {
		b.facts = make(map[string]interface{})
	}
	b.facts[key] = fact
}

// Get retrieves the fact stored under key, if any.
func (b *AnnotationBundle) Get(key string) (interface{}, bool) {
	if b == nil || b.facts == nil {
		return nil, false
	}
	v, ok := b.facts[key]
	return v, ok
}

// Clear empties the bundle. Called unconditionally by any pass that
// renumbers offsets.
func (b *AnnotationBundle) Clear() {
	b.facts = make(map[string]interface{})
}

// Len reports how many facts are currently stored. Mainly useful in tests
// asserting invalidation (spec property: "annotation bundle is empty").
func (b *AnnotationBundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.facts)
}

// Function is a single function body: an ordered instruction sequence plus
// the metadata the surrounding pipeline needs.
type Function struct {
	// Name identifies the function for diagnostics.
	Name string
	// Locals describes the declared local slots. This pass never
	// renumbers or prunes it; a later code emitter drops unused locals.
	Locals []LocalType
	// Code is the instruction sequence. Offsets are positions in this
	// slice.
	Code []Instruction
	// Native functions have no body to optimize and are always skipped.
	Native bool
	// Annotations holds per-offset analysis facts (e.g. the liveness
	// annotation produced upstream). Cleared whenever Code is rewritten.
	Annotations *AnnotationBundle
}

// IsNative reports whether this function has no body to transform.
func (f *Function) IsNative() bool {
	return f.Native
}

// At returns the instruction at offset, and whether offset was in range.
func (f *Function) At(offset CodeOffset) (Instruction, bool) {
	if int(offset) >= len(f.Code) {
		return nil, false
	}
	return f.Code[offset], true
}

// Len returns the number of instructions in the body.
func (f *Function) Len() int {
	return len(f.Code)
}
