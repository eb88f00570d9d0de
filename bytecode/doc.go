// Package bytecode models a minimal stack-less instruction set for a
// single function body: the IR surface that the dse and liveness packages
// consume.
//
// A function body is a flat, immutable (from the pass's perspective)
// sequence of Instruction values, indexed by CodeOffset. Only two shapes
// carry analyzable definitions of locals: Assign and Load. Everything else
// — calls, branches, returns, and any opcode this package does not know
// about — is represented as Other and is never treated as a removable
// definition, even when it happens to write a local.
package bytecode
