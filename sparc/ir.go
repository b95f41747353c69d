/*
 * Copyright 2023 Gofirm Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sparc

import (
    `fmt`
    `strings`

    `github.com/gofirm/gofirm/ir`
)

// Ref is the stable arena index of a target node within its Graph.
type Ref int32

// RefNone marks an operand slot that is still unresolved. Phi operands
// and block predecessors hold it until the fix-up phase patches them.
const RefNone Ref = -1

// Flags records per-instruction scheduling and side effect attributes.
type Flags uint8

const (
    FlagModifyFlags Flags = 1 << iota  // clobbers the integer condition codes
    FlagPinned                         // keeps its order relative to other memory ops
    FlagFloats                         // control-flow independent, schedulable anywhere
)

func (self Flags) String() string {
    var r []string
    if self & FlagModifyFlags != 0 { r = append(r, "icc") }
    if self & FlagPinned      != 0 { r = append(r, "pinned") }
    if self & FlagFloats      != 0 { r = append(r, "floats") }
    return strings.Join(r, "|")
}

// AluOp selects the operation of the two ALU instruction forms.
type AluOp uint8

const (
    AluAdd AluOp = iota
    AluSub
    AluAnd
    AluOr
    AluXor
    AluSll
    AluSrl
    AluSra
    AluMul
    AluMulh
    AluDiv
)

func (self AluOp) String() string {
    switch self {
        case AluAdd  : return "add"
        case AluSub  : return "sub"
        case AluAnd  : return "and"
        case AluOr   : return "or"
        case AluXor  : return "xor"
        case AluSll  : return "sll"
        case AluSrl  : return "srl"
        case AluSra  : return "sra"
        case AluMul  : return "smul"
        case AluMulh : return "smulh"
        case AluDiv  : return "sdiv"
        default      : panic("unreachable")
    }
}

// ConvKind selects the operation of a floating point conversion.
type ConvKind uint8

const (
    FsTOd ConvKind = iota
    FdTOs
    FsTOi
    FdTOi
    FiTOs
    FiTOd
)

func (self ConvKind) String() string {
    switch self {
        case FsTOd : return "fstod"
        case FdTOs : return "fdtos"
        case FsTOi : return "fstoi"
        case FdTOi : return "fdtoi"
        case FiTOs : return "fitos"
        case FiTOd : return "fitod"
        default    : panic("unreachable")
    }
}

/* result slots of multi-value target nodes */

const (
    LdRes int64 = 0
    LdM   int64 = 1
)

const (
    DivRes int64 = 0
)

const (
    MulLow int64 = 0
)

const (
    MulhLow int64 = 0
)

const (
    SubSPStack int64 = 0
    SubSPM     int64 = 1
)

const (
    AddSPStack int64 = 0
    AddSPM     int64 = 1
)

type node struct {
    idx   Ref
    blk   Ref
    src   int32
    dbg   *ir.DebugInfo
    flags Flags
}

func (self *node) base() *node {
    return self
}

func (self *node) Idx() Ref {
    return self.idx
}

func (self *node) BlockRef() Ref {
    return self.blk
}

func (self *node) Source() int32 {
    return self.src
}

func (self *node) Debug() *ir.DebugInfo {
    return self.dbg
}

func (self *node) Attr() Flags {
    return self.flags
}

// Node is a single SPARC instruction or structural node. The set of
// implementations is closed; nodes are created through the Graph
// constructor methods only.
type Node interface {
    fmt.Stringer
    base() *node
    irnode()

    // Idx returns the arena index of the node.
    Idx() Ref

    // BlockRef returns the block the node is scheduled into, or RefNone
    // for blockless nodes.
    BlockRef() Ref

    // Source returns the arena index of the source node the instruction
    // was derived from, or -1 for synthesized nodes.
    Source() int32

    // Debug returns the source position carried over from the source
    // node, if any.
    Debug() *ir.DebugInfo

    // Attr returns the flag set of the node.
    Attr() Flags

    // Operands exposes every operand slot as a patchable reference.
    // Structural inputs (memory chains, block predecessors) are included.
    Operands() []*Ref
}

func (*MovImm)    irnode() {}
func (*MovReg)    irnode() {}
func (*HiImm)     irnode() {}
func (*LoImm)     irnode() {}
func (*AluReg)    irnode() {}
func (*AluImm)    irnode() {}
func (*Minus)     irnode() {}
func (*Not)       irnode() {}
func (*Ld)        irnode() {}
func (*St)        irnode() {}
func (*Cmp)       irnode() {}
func (*Bicc)      irnode() {}
func (*Ba)        irnode() {}
func (*SwitchJmp) irnode() {}
func (*SymConst)  irnode() {}
func (*FrameAddr) irnode() {}
func (*AddSP)     irnode() {}
func (*SubSP)     irnode() {}
func (*FConv)     irnode() {}
func (*Copy)      irnode() {}
func (*Call)      irnode() {}
func (*Phi)       irnode() {}
func (*Proj)      irnode() {}
func (*Block)     irnode() {}
func (*Start)     irnode() {}
func (*End)       irnode() {}
func (*Return)    irnode() {}
func (*NoMem)     irnode() {}
func (*Sync)      irnode() {}

// MovImm materializes a small constant with a single move.
type MovImm struct {
    node
    V int32
}

func (self *MovImm) String() string {
    return fmt.Sprintf("mov $%d", self.V)
}

func (self *MovImm) Operands() []*Ref {
    return nil
}

// MovReg copies a register.
type MovReg struct {
    node
    X Ref
}

func (self *MovReg) String() string {
    return fmt.Sprintf("mov v%d", self.X)
}

func (self *MovReg) Operands() []*Ref {
    return []*Ref { &self.X }
}

// HiImm loads the upper 22 bits of a constant.
type HiImm struct {
    node
    V int32
}

func (self *HiImm) String() string {
    return fmt.Sprintf("sethi %%hi($%d)", self.V)
}

func (self *HiImm) Operands() []*Ref {
    return nil
}

// LoImm completes a HiImm with the low 10 bits of the constant.
type LoImm struct {
    node
    X Ref
    V int32
}

func (self *LoImm) String() string {
    return fmt.Sprintf("or v%d, %%lo($%d)", self.X, self.V)
}

func (self *LoImm) Operands() []*Ref {
    return []*Ref { &self.X }
}

// AluReg is the reg/reg form of the two-operand ALU instructions.
type AluReg struct {
    node
    Op AluOp
    X  Ref
    Y  Ref
}

func (self *AluReg) String() string {
    return fmt.Sprintf("%s v%d, v%d", self.Op, self.X, self.Y)
}

func (self *AluReg) Operands() []*Ref {
    return []*Ref { &self.X, &self.Y }
}

// AluImm is the reg/imm form of the two-operand ALU instructions. The
// immediate must fit the 13 bit signed field.
type AluImm struct {
    node
    Op AluOp
    X  Ref
    V  int32
}

func (self *AluImm) String() string {
    return fmt.Sprintf("%s v%d, $%d", self.Op, self.X, self.V)
}

func (self *AluImm) Operands() []*Ref {
    return []*Ref { &self.X }
}

// Minus negates a register.
type Minus struct {
    node
    X Ref
}

func (self *Minus) String() string {
    return fmt.Sprintf("neg v%d", self.X)
}

func (self *Minus) Operands() []*Ref {
    return []*Ref { &self.X }
}

// Not inverts every bit of a register.
type Not struct {
    node
    X Ref
}

func (self *Not) String() string {
    return fmt.Sprintf("not v%d", self.X)
}

func (self *Not) Operands() []*Ref {
    return []*Ref { &self.X }
}

// Ld loads a Mode sized value from memory. Slot LdRes carries the value,
// slot LdM the memory chain.
type Ld struct {
    node
    Ptr  Ref
    Mem  Ref
    Mode *ir.Mode
}

func (self *Ld) String() string {
    return fmt.Sprintf("ld%s [v%d], mem v%d", loadSuffix(self.Mode), self.Ptr, self.Mem)
}

func (self *Ld) Operands() []*Ref {
    return []*Ref { &self.Ptr, &self.Mem }
}

// St stores a Mode sized value to memory. Its single result is the
// memory chain, so consumers use the node itself.
type St struct {
    node
    Ptr  Ref
    Val  Ref
    Mem  Ref
    Mode *ir.Mode
}

func (self *St) String() string {
    return fmt.Sprintf("st%s v%d, [v%d], mem v%d", storeSuffix(self.Mode), self.Val, self.Ptr, self.Mem)
}

func (self *St) Operands() []*Ref {
    return []*Ref { &self.Ptr, &self.Val, &self.Mem }
}

// Cmp subtracts its operands into the condition codes. Unsigned records
// how a following branch must read them.
type Cmp struct {
    node
    X        Ref
    Y        Ref
    Unsigned bool
}

func (self *Cmp) String() string {
    return fmt.Sprintf("cmp v%d, v%d", self.X, self.Y)
}

func (self *Cmp) Operands() []*Ref {
    return []*Ref { &self.X, &self.Y }
}

// Bicc branches on the condition codes produced by X. Successor blocks
// select their edge by projecting with ProjCondFalse / ProjCondTrue
// numbers from the source graph.
type Bicc struct {
    node
    X   Ref
    Rel ir.Relation
}

func (self *Bicc) String() string {
    return fmt.Sprintf("b%s v%d", branchSuffix(self.Rel), self.X)
}

func (self *Bicc) Operands() []*Ref {
    return []*Ref { &self.X }
}

// Ba branches unconditionally.
type Ba struct {
    node
}

func (self *Ba) String() string {
    return "ba"
}

func (self *Ba) Operands() []*Ref {
    return nil
}

// SwitchJmp dispatches through a jump table of NCases consecutive
// entries. Sel is the rebased selector, Default the rebased fallback
// label.
type SwitchJmp struct {
    node
    Sel     Ref
    NCases  int64
    Default int64
}

func (self *SwitchJmp) String() string {
    return fmt.Sprintf("switch v%d [%d], default $%d", self.Sel, self.NCases, self.Default)
}

func (self *SwitchJmp) Operands() []*Ref {
    return []*Ref { &self.Sel }
}

// SymConst loads the address of a linker symbol.
type SymConst struct {
    node
    Ent *ir.Entity
}

func (self *SymConst) String() string {
    return fmt.Sprintf("set %s", self.Ent)
}

func (self *SymConst) Operands() []*Ref {
    return nil
}

// FrameAddr computes the address of a stack frame entity relative to the
// frame base.
type FrameAddr struct {
    node
    Base Ref
    Ent  *ir.Entity
}

func (self *FrameAddr) String() string {
    return fmt.Sprintf("add v%d, #%s", self.Base, self.Ent)
}

func (self *FrameAddr) Operands() []*Ref {
    return []*Ref { &self.Base }
}

// AddSP releases stack space. Slot AddSPStack carries the new stack
// pointer, slot AddSPM the memory chain.
type AddSP struct {
    node
    SP  Ref
    Sz  Ref
    Mem Ref
}

func (self *AddSP) String() string {
    return fmt.Sprintf("addsp v%d, v%d", self.SP, self.Sz)
}

func (self *AddSP) Operands() []*Ref {
    return []*Ref { &self.SP, &self.Sz, &self.Mem }
}

// SubSP claims stack space. Slot SubSPStack carries the new stack
// pointer, slot SubSPM the memory chain.
type SubSP struct {
    node
    SP  Ref
    Sz  Ref
    Mem Ref
}

func (self *SubSP) String() string {
    return fmt.Sprintf("subsp v%d, v%d", self.SP, self.Sz)
}

func (self *SubSP) Operands() []*Ref {
    return []*Ref { &self.SP, &self.Sz, &self.Mem }
}

// FConv converts between floating point formats or between floating
// point and integer. Mode is the attribute mode of the conversion: the
// destination mode, except for int-to-float where it is the source mode.
type FConv struct {
    node
    Kind ConvKind
    X    Ref
    Mode *ir.Mode
}

func (self *FConv) String() string {
    return fmt.Sprintf("%s v%d", self.Kind, self.X)
}

func (self *FConv) Operands() []*Ref {
    return []*Ref { &self.X }
}

// Copy duplicates a value into a fresh register.
type Copy struct {
    node
    X    Ref
    Mode *ir.Mode
}

func (self *Copy) String() string {
    return fmt.Sprintf("copy v%d", self.X)
}

func (self *Copy) Operands() []*Ref {
    return []*Ref { &self.X }
}

// Call transfers control to Ent. In carries the memory chain first, the
// arguments after it.
type Call struct {
    node
    Ent *ir.Entity
    In  []Ref
}

func (self *Call) String() string {
    return fmt.Sprintf("call %s, %s", self.Ent, refs(self.In))
}

func (self *Call) Operands() []*Ref {
    return refsliceref(self.In)
}

// Phi merges one value per predecessor of its block. Operand order
// matches the predecessor order of the block.
type Phi struct {
    node
    Mode *ir.Mode
    Req  RegReq
    In   []Ref
}

func (self *Phi) String() string {
    return fmt.Sprintf("phi %s", refs(self.In))
}

func (self *Phi) Operands() []*Ref {
    return refsliceref(self.In)
}

// Proj selects result Slot out of the multi-value node Pred. Reg pins
// the value to a fixed register when the producer demands it.
type Proj struct {
    node
    Pred Ref
    Slot int64
    Mode *ir.Mode
    Reg  Register
}

func (self *Proj) String() string {
    return fmt.Sprintf("proj #%d of v%d", self.Slot, self.Pred)
}

func (self *Proj) Operands() []*Ref {
    return []*Ref { &self.Pred }
}

// Block is a basic block. Preds are the jump instructions transferring
// control into it, in the order Phi operands refer to.
type Block struct {
    node
    Preds []Ref
}

func (self *Block) String() string {
    return fmt.Sprintf("block %s", refs(self.Preds))
}

func (self *Block) Operands() []*Ref {
    return refsliceref(self.Preds)
}

// Start marks the entry of the function.
type Start struct {
    node
}

func (self *Start) String() string {
    return "start"
}

func (self *Start) Operands() []*Ref {
    return nil
}

// End anchors the function: keep-alive edges end up here.
type End struct {
    node
    In []Ref
}

func (self *End) String() string {
    return fmt.Sprintf("end %s", refs(self.In))
}

func (self *End) Operands() []*Ref {
    return refsliceref(self.In)
}

// Return leaves the function. In carries the memory chain first, the
// return values after it.
type Return struct {
    node
    In []Ref
}

func (self *Return) String() string {
    return fmt.Sprintf("ret %s", refs(self.In))
}

func (self *Return) Operands() []*Ref {
    return refsliceref(self.In)
}

// NoMem is the empty memory chain.
type NoMem struct {
    node
}

func (self *NoMem) String() string {
    return "nomem"
}

func (self *NoMem) Operands() []*Ref {
    return nil
}

// Sync merges memory chains.
type Sync struct {
    node
    In []Ref
}

func (self *Sync) String() string {
    return fmt.Sprintf("sync %s", refs(self.In))
}

func (self *Sync) Operands() []*Ref {
    return refsliceref(self.In)
}

func loadSuffix(m *ir.Mode) string {
    switch {
        case m.Bits == 8 && m.Signed  : return "sb"
        case m.Bits == 8              : return "ub"
        case m.Bits == 16 && m.Signed : return "sh"
        case m.Bits == 16             : return "uh"
        default                       : return ""
    }
}

func storeSuffix(m *ir.Mode) string {
    switch m.Bits {
        case 8  : return "b"
        case 16 : return "h"
        default : return ""
    }
}

func branchSuffix(rel ir.Relation) string {
    switch rel {
        case ir.RelFalse : return "n"
        case ir.RelEq    : return "e"
        case ir.RelLt    : return "l"
        case ir.RelGt    : return "g"
        case ir.RelLe    : return "le"
        case ir.RelGe    : return "ge"
        case ir.RelLg    : return "ne"
        default          : return "a"
    }
}
