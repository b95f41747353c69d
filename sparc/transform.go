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

// Package sparc implements instruction selection for 32 bit SPARC: it
// lowers a target independent SSA graph into a graph of SPARC machine
// instructions ready for register allocation.
package sparc

import (
    `math`

    `github.com/oleiade/lane`

    `github.com/gofirm/gofirm/ir`
)

// matchFlags alter how binop chooses between the reg/reg and reg/imm
// instruction forms.
type matchFlags uint8

const (
    matchCommutative matchFlags = 1 << iota  // an immediate may fold from either side
    matchSizeNeutral                         // recorded, not yet acted on
)

type regCtor func(blk Ref, x Ref, y Ref) Ref
type immCtor func(blk Ref, x Ref, v int32) Ref

// transformer is the per-call lowering context: the source graph, the
// target arena under construction, the memoization cache and the
// worklist of deferred nodes. Nothing is shared between calls, so
// concurrent Transform invocations on different graphs are safe.
type transformer struct {
    src *ir.Graph
    dst *Graph
    tv  []Ref
    wl  *lane.Queue
    fix []fixup
    swb map[int32]int64
}

// fixup records an operand slot left open by the pre-pass, to be patched
// with the lowered form of n once every deferred node went through.
type fixup struct {
    p *Ref
    n *ir.Node
}

// Transform lowers a source graph into a SPARC instruction graph. Source
// constructs the backend does not implement, floating point arithmetic
// first of all, are reported as an UnsupportedError. A malformed source
// graph panics instead: that is a bug in whatever built the graph, not a
// property of the program being compiled.
func Transform(g *ir.Graph) (out *Graph, err error) {
    defer func() {
        if r := recover(); r != nil {
            if e, ok := r.(UnsupportedError); ok {
                out, err = nil, e
            } else {
                panic(r)
            }
        }
    }()

    /* lower everything, then resolve the deferred slots */
    self := newTransformer(g)
    self.prepare()
    self.run()
    self.patch()

    /* the output must be structurally sound regardless of input */
    if e := self.dst.Verify(); e != nil {
        panic("verify failed after lowering: " + e.Error())
    }
    return self.dst, nil
}

func newTransformer(g *ir.Graph) *transformer {
    return &transformer {
        src : g,
        dst : NewGraph(g.Name),
        tv  : makeRefs(len(g.Nodes)),
        wl  : lane.NewQueue(),
        swb : make(map[int32]int64),
    }
}

/** Lowering Phases **/

// prepare pre-creates every block and Phi as a placeholder so that the
// main pass can look them up without walking into cycles. Their operand
// slots stay open until patch resolves them.
func (self *transformer) prepare() {
    for _, n := range self.src.Nodes {
        if n.Op == ir.OpBlock {
            self.prepBlock(n)
        }
    }
    for _, n := range self.src.Nodes {
        if n.Op == ir.OpPhi {
            self.prepPhi(n)
        }
    }
    self.dst.cursrc = -1
    self.dst.curdbg = nil
}

func (self *transformer) prepBlock(n *ir.Node) {
    self.dst.cursrc = n.Idx
    self.dst.curdbg = n.Dbg
    self.tv[n.Idx] = self.dst.NewBlock(makeRefs(len(n.In))...)

    /* predecessors are filled in by the fix-up phase */
    p := self.dst.At(self.tv[n.Idx]).(*Block)
    for i, v := range n.In {
        self.defer_(&p.Preds[i], v)
    }
}

// prepPhi places the Phi placeholder. Sub-word integer Phis widen to the
// machine word: the operands are registers already, so the merged value
// is simply the register contents.
func (self *transformer) prepPhi(n *ir.Node) {
    mode := n.Mode
    req := ReqNone
    self.dst.cursrc = n.Idx
    self.dst.curdbg = n.Dbg

    /* values in gp registers are 32 bit at most */
    if needsGPReg(mode) {
        if mode.Bits > 32 {
            panic(UnsupportedError { Note: "Phi mode wider than the machine word", Op: n.Op, Mode: mode })
        }
        mode = ir.ModeIu
        req = ReqGP
    }

    /* operands are filled in by the fix-up phase */
    r := self.dst.NewPhi(self.blockOf(n), mode, req, makeRefs(len(n.In)))
    p := self.dst.At(r).(*Phi)
    self.tv[n.Idx] = r

    for i, v := range n.In {
        self.defer_(&p.In[i], v)
    }
}

// defer_ leaves slot p open and queues n for lowering.
func (self *transformer) defer_(p *Ref, n *ir.Node) {
    self.fix = append(self.fix, fixup { p: p, n: n })
    self.wl.Enqueue(n)
}

// run drains the worklist. Start and End anchor the graph; everything
// else is reached through operand edges or was queued by the pre-pass.
func (self *transformer) run() {
    self.wl.Enqueue(self.src.Start)
    self.wl.Enqueue(self.src.End)
    for !self.wl.Empty() {
        self.lower(self.wl.Dequeue().(*ir.Node))
    }
}

// patch resolves the slots the pre-pass left open. Every deferred node
// was on the worklist, so a missing lowering here is impossible unless
// the pass itself is broken.
func (self *transformer) patch() {
    for _, f := range self.fix {
        if r := self.tv[f.n.Idx]; r != RefNone {
            *f.p = r
        } else {
            panic("unresolved operand after lowering: " + f.n.String())
        }
    }
}

// lower returns the target form of n, lowering it on first demand. Each
// source node is lowered exactly once: later calls return the cached
// representative.
func (self *transformer) lower(n *ir.Node) Ref {
    if r := self.tv[n.Idx]; r != RefNone {
        return r
    }
    r := self.gen(n)
    self.tv[n.Idx] = r
    return r
}

func (self *transformer) gen(n *ir.Node) Ref {
    scur, sdbg := self.dst.cursrc, self.dst.curdbg
    self.dst.cursrc, self.dst.curdbg = n.Idx, n.Dbg
    defer func() {
        self.dst.cursrc, self.dst.curdbg = scur, sdbg
    }()

    switch n.Op {
        case ir.OpAdd       : return self.genAdd(n)
        case ir.OpSub       : return self.genSub(n)
        case ir.OpMul       : return self.genMul(n)
        case ir.OpMulh      : return self.genMulh(n)
        case ir.OpDiv       : return self.genDiv(n)
        case ir.OpAnd       : return self.genAnd(n)
        case ir.OpOr        : return self.genOr(n)
        case ir.OpEor       : return self.genEor(n)
        case ir.OpShl       : return self.genShl(n)
        case ir.OpShr       : return self.genShr(n)
        case ir.OpShrs      : return self.genShrs(n)
        case ir.OpMinus     : return self.genMinus(n)
        case ir.OpNot       : return self.genNot(n)
        case ir.OpAbs       : return self.genAbs(n)
        case ir.OpConst     : return self.genConst(n)
        case ir.OpSymConst  : return self.genSymConst(n)
        case ir.OpConv      : return self.genConv(n)
        case ir.OpLoad      : return self.genLoad(n)
        case ir.OpStore     : return self.genStore(n)
        case ir.OpCmp       : return self.genCmp(n)
        case ir.OpCond      : return self.genCond(n)
        case ir.OpJmp       : return self.genJmp(n)
        case ir.OpPhi       : panic("unreachable")
        case ir.OpProj      : return self.genProj(n)
        case ir.OpAddSP     : return self.genAddSP(n)
        case ir.OpSubSP     : return self.genSubSP(n)
        case ir.OpFrameAddr : return self.genFrameAddr(n)
        case ir.OpCopy      : return self.genCopy(n)
        case ir.OpCall      : return self.genCall(n)
        case ir.OpUnknown   : return self.genUnknown(n)
        case ir.OpNoMem     : return self.dst.NoMem()
        case ir.OpSync      : return self.genSync(n)
        case ir.OpStart     : return self.genStart(n)
        case ir.OpReturn    : return self.genReturn(n)
        case ir.OpEnd       : return self.genEnd(n)
        case ir.OpBlock     : panic("unreachable")
        default             : panic("invalid instruction: " + n.String())
    }
}

/** Lowering Helpers **/

func (self *transformer) blockOf(n *ir.Node) Ref {
    return self.tv[n.Block.Idx]
}

func (self *transformer) lowerEach(in []*ir.Node) []Ref {
    r := make([]Ref, len(in))
    for i, v := range in {
        r[i] = self.lower(v)
    }
    return r
}

// projNum maps a source projection number onto the target one. Case
// selectors of a lowered switch rebase by the smallest case label;
// everything else passes through unchanged.
func (self *transformer) projNum(n *ir.Node) int64 {
    if base, ok := self.swb[n.In[0].Idx]; ok {
        return n.Proj - base
    } else {
        return n.Proj
    }
}

// binopArgs returns the value operands of a two operand node. Division
// carries its memory chain in front, which the lowered form drops.
func binopArgs(n *ir.Node) (*ir.Node, *ir.Node) {
    if n.Op == ir.OpDiv {
        return n.In[1], n.In[2]
    } else {
        return n.In[0], n.In[1]
    }
}

// immEncodable reports whether a source node is a constant small enough
// for the 13 bit signed immediate field.
func immEncodable(n *ir.Node) bool {
    return n.Op == ir.OpConst && fitsImm13(n.Value)
}

func fitsImm13(v int64) bool {
    return v >= -4096 && v <= 4095
}

// upperBitsClean reports whether the upper bits of a value already hold
// a correct extension of mode. Conservative: nothing proves cleanliness
// yet, so every caller extends.
// TODO: thread a producer analysis through here, the Conv and Cmp paths
// emit shift pairs that a cleanliness check would elide.
func upperBitsClean(x Ref, mode *ir.Mode) bool {
    return false
}

/** Value Materialization **/

// makeConst materializes an integer constant: a single mov when the
// value fits the immediate field, the sethi/or pair otherwise. The
// result does not depend on control flow, so the materializing nodes
// float.
func (self *transformer) makeConst(blk Ref, v int32) Ref {
    if fitsImm13(int64(v)) {
        r := self.dst.NewMovImm(blk, v)
        self.dst.AddFlags(r, FlagFloats)
        return r
    }
    hi := self.dst.NewHiImm(blk, v)
    self.dst.AddFlags(hi, FlagFloats)
    return self.dst.NewLoImm(blk, hi, v)
}

/** Sub-word Extensions **/

// zeroExtend clears everything above the low bits: a mask for bytes, a
// shift pair for half words.
func (self *transformer) zeroExtend(blk Ref, x Ref, bits uint8) Ref {
    switch bits {
        case 8  : return self.dst.NewAndImm(blk, x, 0xff)
        case 16 : return self.dst.NewSrlImm(blk, self.dst.NewSllImm(blk, x, 16), 16)
        default : panic(UnsupportedError { Note: "zero extension is only implemented for 8 and 16 bits" })
    }
}

func (self *transformer) signExtend(blk Ref, x Ref, bits uint8) Ref {
    if bits >= 32 {
        panic(UnsupportedError { Note: "sign extension width out of range" })
    }
    w := int32(32 - bits)
    return self.dst.NewSraImm(blk, self.dst.NewSllImm(blk, x, w), w)
}

// extend widens a sub-word value to the machine word according to the
// signedness of its mode. Full word values pass through.
func (self *transformer) extend(blk Ref, x Ref, mode *ir.Mode) Ref {
    if mode.Bits == 32 {
        return x
    }
    if mode.Signed {
        return self.signExtend(blk, x, mode.Bits)
    }
    return self.zeroExtend(blk, x, mode.Bits)
}

/** Binary Operations **/

// binop lowers a two operand node through a constructor pair, folding a
// constant operand into the immediate form when it fits the 13 bit
// field. The right operand folds first; commutative ops may fold the
// left one into a swapped immediate form. Neither operand is lowered
// before the folding decision that makes it dead.
func (self *transformer) binop(n *ir.Node, flags matchFlags, mkreg regCtor, mkimm immCtor) Ref {
    blk := self.blockOf(n)
    x, y := binopArgs(n)

    /* immediate on the right folds directly */
    if immEncodable(y) {
        return mkimm(blk, self.lower(x), int32(y.Value))
    }

    /* commutative ops fold an immediate on the left the same way */
    ry := self.lower(y)
    if flags & matchCommutative != 0 && immEncodable(x) {
        return mkimm(blk, ry, int32(x.Value))
    }
    return mkreg(blk, self.lower(x), ry)
}

func (self *transformer) genAdd(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point add", Op: n.Op, Mode: n.Mode })
    }
    return self.binop(n, matchCommutative | matchSizeNeutral, self.dst.NewAddReg, self.dst.NewAddImm)
}

func (self *transformer) genSub(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point sub", Op: n.Op, Mode: n.Mode })
    }
    return self.binop(n, matchSizeNeutral, self.dst.NewSubReg, self.dst.NewSubImm)
}

// genMul lowers a multiplication. The low word is the result; the
// instruction clobbers the condition codes on the way.
func (self *transformer) genMul(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point mul", Op: n.Op, Mode: n.Mode })
    }
    mul := self.binop(n, matchCommutative | matchSizeNeutral, self.dst.NewMulReg, self.dst.NewMulImm)
    self.dst.AddFlags(mul, FlagModifyFlags)
    return self.dst.NewProj(mul, ir.ModeIu, MulLow)
}

func (self *transformer) genMulh(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point mulh", Op: n.Op, Mode: n.Mode })
    }
    mul := self.binop(n, matchCommutative | matchSizeNeutral, self.dst.NewMulhReg, self.dst.NewMulhImm)
    return self.dst.NewProj(mul, ir.ModeIu, MulhLow)
}

func (self *transformer) genDiv(n *ir.Node) Ref {
    if l, _ := binopArgs(n); l.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point div", Op: n.Op, Mode: l.Mode })
    }
    return self.binop(n, matchSizeNeutral, self.dst.NewDivReg, self.dst.NewDivImm)
}

func (self *transformer) genAnd(n *ir.Node) Ref {
    return self.binop(n, matchCommutative, self.dst.NewAndReg, self.dst.NewAndImm)
}

func (self *transformer) genOr(n *ir.Node) Ref {
    return self.binop(n, matchCommutative, self.dst.NewOrReg, self.dst.NewOrImm)
}

func (self *transformer) genEor(n *ir.Node) Ref {
    return self.binop(n, matchCommutative, self.dst.NewXorReg, self.dst.NewXorImm)
}

func (self *transformer) genShl(n *ir.Node) Ref {
    return self.binop(n, matchSizeNeutral, self.dst.NewSllReg, self.dst.NewSllImm)
}

func (self *transformer) genShr(n *ir.Node) Ref {
    return self.binop(n, matchSizeNeutral, self.dst.NewSrlReg, self.dst.NewSrlImm)
}

func (self *transformer) genShrs(n *ir.Node) Ref {
    return self.binop(n, matchSizeNeutral, self.dst.NewSraReg, self.dst.NewSraImm)
}

/** Unary Operations **/

func (self *transformer) genMinus(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point minus", Op: n.Op, Mode: n.Mode })
    }
    return self.dst.NewMinus(self.blockOf(n), self.lower(n.In[0]))
}

func (self *transformer) genNot(n *ir.Node) Ref {
    return self.dst.NewNot(self.blockOf(n), self.lower(n.In[0]))
}

// genAbs synthesizes absolute value without a conditional move:
//
//     mov   x, t
//     sra   t, 31, m        m is 0 or all ones, the sign mask
//     xor   x, m, v
//     sub   v, m, r         r = (x ^ m) - m = |x|
//
// The minimum word value wraps onto itself, as two's complement has it.
func (self *transformer) genAbs(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point abs", Op: n.Op, Mode: n.Mode })
    }

    blk := self.blockOf(n)
    x := self.lower(n.In[0])

    mov := self.dst.NewMovReg(blk, x)
    sra := self.dst.NewSraImm(blk, mov, 31)
    xor := self.dst.NewXorReg(blk, x, sra)
    return self.dst.NewSubReg(blk, xor, sra)
}

/** Constants and Addresses **/

func (self *transformer) genConst(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point constant", Op: n.Op, Mode: n.Mode })
    }
    if n.Mode.IsRef() && n.Mode.Bits != 32 {
        panic("reference constant wider than the machine word: " + n.String())
    }
    return self.makeConst(self.blockOf(n), int32(n.Value))
}

func (self *transformer) genSymConst(n *ir.Node) Ref {
    r := self.dst.NewSymConst(self.blockOf(n), n.Ent)
    self.dst.AddFlags(r, FlagFloats)
    return r
}

func (self *transformer) genFrameAddr(n *ir.Node) Ref {
    return self.dst.NewFrameAddr(self.blockOf(n), self.lower(n.In[0]), n.Ent)
}

/** Memory Operations **/

func (self *transformer) genLoad(n *ir.Node) Ref {
    mode := n.LoadMode
    if mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point load", Op: n.Op, Mode: mode })
    }

    blk := self.blockOf(n)
    r := self.dst.NewLd(blk, self.lower(n.In[1]), self.lower(n.In[0]), mode)

    if n.Pinned {
        self.dst.AddFlags(r, FlagPinned)
    }
    return r
}

func (self *transformer) genStore(n *ir.Node) Ref {
    val := n.In[2]
    if val.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point store", Op: n.Op, Mode: val.Mode })
    }
    blk := self.blockOf(n)
    return self.dst.NewSt(blk, self.lower(n.In[1]), self.lower(val), self.lower(n.In[0]), val.Mode)
}

func (self *transformer) genSync(n *ir.Node) Ref {
    return self.dst.NewSync(self.blockOf(n), self.lowerEach(n.In))
}

/** Stack Manipulation **/

/* the IR names its stack ops for a downward growing stack, the target
 * grows the other way: the adjustment direction inverts */

func (self *transformer) genAddSP(n *ir.Node) Ref {
    blk := self.blockOf(n)
    sp := self.lower(n.In[0])
    sz := self.lower(n.In[1])
    return self.dst.NewSubSP(blk, sp, sz, self.dst.NoMem())
}

func (self *transformer) genSubSP(n *ir.Node) Ref {
    blk := self.blockOf(n)
    sp := self.lower(n.In[0])
    sz := self.lower(n.In[1])
    return self.dst.NewAddSP(blk, sp, sz, self.dst.NoMem())
}

/** Comparison and Control Flow **/

// genCmp lowers a comparison. Sub-word operands are extended first so
// the condition codes see the value, not whatever the upper register
// bits happen to hold.
func (self *transformer) genCmp(n *ir.Node) Ref {
    x, y := n.In[0], n.In[1]
    mode := x.Mode

    if mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point compare", Op: n.Op, Mode: mode })
    }
    if y.Mode != mode {
        panic("compared operands must share a mode: " + n.String())
    }

    blk := self.blockOf(n)
    rx := self.extend(blk, self.lower(x), mode)
    ry := self.extend(blk, self.lower(y), mode)
    return self.dst.NewCmp(blk, rx, ry, !mode.Signed)
}

// genCond lowers a conditional jump: a branch on condition codes for a
// boolean selector, a jump table dispatch for an integer one.
func (self *transformer) genCond(n *ir.Node) Ref {
    sel := n.In[0]

    /* multi-way jumps carry an integer selector */
    if sel.Mode != ir.ModeB {
        return self.genSwitch(n)
    }
    if sel.Op != ir.OpProj {
        panic("boolean selector must be a comparison projection: " + sel.String())
    }
    return self.dst.NewBicc(self.blockOf(n), self.lower(sel.In[0]), ir.Relation(sel.Proj))
}

// genSwitch lowers a multi-way jump. The jump table wants labels from
// zero, so the selector is rebased by the smallest case label and the
// case projections renumber on their way through the cache. The default
// edge takes no table entry and stays out of the label range.
func (self *transformer) genSwitch(n *ir.Node) Ref {
    blk := self.blockOf(n)
    sel := self.lower(n.In[0])

    /* find the label range across the case projections */
    min, max := int64(math.MaxInt64), int64(math.MinInt64)
    for _, u := range n.Users {
        if u.Op != ir.OpProj {
            panic("multi-way jump target must be a projection: " + u.String())
        }
        if u.Proj == n.Default {
            continue
        }
        if u.Proj < min {
            min = u.Proj
        }
        if u.Proj > max {
            max = u.Proj
        }
    }

    /* nothing but a default edge is not a switch */
    if min > max {
        panic("multi-way jump with no case targets: " + n.String())
    }

    self.swb[n.Idx] = min
    sub := self.dst.NewSubReg(blk, sel, self.makeConst(blk, int32(min)))
    return self.dst.NewSwitchJmp(blk, sub, max - min + 1, n.Default - min)
}

func (self *transformer) genJmp(n *ir.Node) Ref {
    return self.dst.NewBa(self.blockOf(n))
}

/** Mode Conversions **/

// genConv lowers a mode conversion. Conversions not changing the
// interpretation are dropped; integer narrowing and widening reduce to
// an extension of the smaller mode; everything touching floating point
// maps onto the fpu conversion ops.
func (self *transformer) genConv(n *ir.Node) Ref {
    op := n.In[0]
    sm := op.Mode
    dm := n.Mode

    if sm == dm {
        return self.lower(op)
    }

    blk := self.blockOf(n)
    x := self.lower(op)

    if sm.IsFloat() || dm.IsFloat() {
        if sm.Bits > 64 || dm.Bits > 64 {
            panic(UnsupportedError { Note: "quad precision conversion", Op: n.Op, Mode: dm })
        }
        switch {
            case sm.IsFloat() && dm.IsFloat() : return self.genConvF2F(blk, x, sm, dm)
            case sm.IsFloat()                 : return self.genConvF2I(blk, x, n)
            default                           : return self.genConvI2F(blk, x, n, sm)
        }
    }

    /* both sides live in gp registers: converting is extending the
     * smaller of the two modes */
    if sm.Bits == dm.Bits {
        return x
    }

    min := sm
    if dm.Bits < sm.Bits {
        min = dm
    }
    if upperBitsClean(x, min) {
        return x
    }
    if min.Signed {
        return self.signExtend(blk, x, min.Bits)
    }
    return self.zeroExtend(blk, x, min.Bits)
}

func (self *transformer) genConvF2F(blk Ref, x Ref, sm *ir.Mode, dm *ir.Mode) Ref {
    if sm.Bits > dm.Bits {
        return self.dst.NewFConv(blk, FdTOs, x, dm)
    } else {
        return self.dst.NewFConv(blk, FsTOd, x, dm)
    }
}

func (self *transformer) genConvF2I(blk Ref, x Ref, n *ir.Node) Ref {
    switch dm := n.Mode; dm.Bits {
        case 32 : return self.dst.NewFConv(blk, FsTOi, x, dm)
        case 64 : return self.dst.NewFConv(blk, FdTOi, x, dm)
        default : panic(UnsupportedError { Note: "float to int conversion of unusual width", Op: n.Op, Mode: dm })
    }
}

/* the int-to-float form records the source mode as its attribute: the
 * width being converted from is what the fpu needs to know */
func (self *transformer) genConvI2F(blk Ref, x Ref, n *ir.Node, sm *ir.Mode) Ref {
    switch n.Mode.Bits {
        case 32 : return self.dst.NewFConv(blk, FiTOs, x, sm)
        case 64 : return self.dst.NewFConv(blk, FiTOd, x, sm)
        default : panic(UnsupportedError { Note: "int to float conversion of unusual width", Op: n.Op, Mode: n.Mode })
    }
}

/** Miscellaneous Values **/

// genUnknown materializes garbage of the right register class. Integer
// and reference unknowns become a floating zero; anything else has no
// register class here.
func (self *transformer) genUnknown(n *ir.Node) Ref {
    if n.Mode.IsFloat() {
        panic(UnsupportedError { Note: "floating point unknown value", Op: n.Op, Mode: n.Mode })
    }
    if needsGPReg(n.Mode) {
        return self.makeConst(self.blockOf(n), 0)
    }
    panic(UnsupportedError { Note: "unknown value of unexpected mode", Op: n.Op, Mode: n.Mode })
}

func (self *transformer) genCopy(n *ir.Node) Ref {
    mode := n.Mode
    if needsGPReg(mode) {
        mode = ir.ModeIu
    }
    return self.dst.NewCopy(self.blockOf(n), self.lower(n.In[0]), mode)
}

func (self *transformer) genCall(n *ir.Node) Ref {
    r := self.dst.NewCall(self.blockOf(n), n.Ent, self.lowerEach(n.In))
    self.dst.AddFlags(r, FlagModifyFlags)
    return r
}

/** Structural Nodes **/

func (self *transformer) genStart(n *ir.Node) Ref {
    return self.dst.NewStart(self.blockOf(n))
}

func (self *transformer) genEnd(n *ir.Node) Ref {
    return self.dst.NewEnd(self.blockOf(n), self.lowerEach(n.In))
}

func (self *transformer) genReturn(n *ir.Node) Ref {
    return self.dst.NewReturn(self.blockOf(n), self.lowerEach(n.In))
}

/** Projections **/

// genProj renumbers a source projection onto the result slots of the
// lowered producer. Producers whose lowering changed shape get special
// treatment; the rest keep their slots, with values in gp registers
// retuned to the machine word mode.
func (self *transformer) genProj(n *ir.Node) Ref {
    switch pred := n.In[0]; pred.Op {
        case ir.OpLoad  : return self.genProjLoad(n, pred)
        case ir.OpStore : return self.genProjStore(n, pred)
        case ir.OpDiv   : return self.genProjDiv(n, pred)
        case ir.OpAddSP : return self.genProjAddSP(n, pred)
        case ir.OpSubSP : return self.genProjSubSP(n, pred)
        case ir.OpCmp   : panic(UnsupportedError { Note: "projecting a comparison as a value", Op: n.Op })
        case ir.OpStart : return self.dupProj(n)
        default         : return self.genProjAny(n)
    }
}

func (self *transformer) genProjAny(n *ir.Node) Ref {
    if needsGPReg(n.Mode) {
        r := self.lower(n.In[0])
        return self.dst.NewProj(r, ir.ModeIu, self.projNum(n))
    }
    return self.dupProj(n)
}

// dupProj carries a projection over unchanged, keeping slot and mode.
func (self *transformer) dupProj(n *ir.Node) Ref {
    r := self.lower(n.In[0])
    return self.dst.NewProj(r, n.Mode, self.projNum(n))
}

func (self *transformer) genProjLoad(n *ir.Node, pred *ir.Node) Ref {
    ld := self.lower(pred)
    switch n.Proj {
        case ir.ProjLoadRes : return self.dst.NewProj(ld, ir.ModeIu, LdRes)
        case ir.ProjLoadM   : return self.dst.NewProj(ld, ir.ModeM, LdM)
        default             : panic(UnsupportedError { Note: "unknown load projection", Op: n.Op })
    }
}

// genProjStore returns the store itself: its only result is the memory
// chain.
func (self *transformer) genProjStore(n *ir.Node, pred *ir.Node) Ref {
    if n.Proj == ir.ProjStoreM {
        return self.lower(pred)
    }
    panic(UnsupportedError { Note: "unknown store projection", Op: n.Op })
}

// genProjDiv maps the quotient onto the single result of the lowered
// division. The memory chain is gone: the lowered form traps instead of
// faulting through memory, so nothing may ask for it.
func (self *transformer) genProjDiv(n *ir.Node, pred *ir.Node) Ref {
    div := self.lower(pred)
    if n.Proj == ir.ProjDivRes {
        return self.dst.NewProj(div, n.Mode, DivRes)
    }
    panic(UnsupportedError { Note: "unknown division projection", Op: n.Op })
}

/* stack adjustments invert on the way down, so their projections land
 * on the slots of the opposite node kind */

func (self *transformer) genProjAddSP(n *ir.Node, pred *ir.Node) Ref {
    sub := self.lower(pred)
    switch n.Proj {
        case ir.ProjAddSPSP  : return self.dst.NewFixedProj(sub, ir.ModeIu, SubSPStack, RegSP)
        case ir.ProjAddSPRes : return self.dst.NewProj(sub, ir.ModeIu, SubSPStack)
        case ir.ProjAddSPM   : return self.dst.NewProj(sub, ir.ModeM, SubSPM)
        default              : panic(UnsupportedError { Note: "unknown stack adjustment projection", Op: n.Op })
    }
}

func (self *transformer) genProjSubSP(n *ir.Node, pred *ir.Node) Ref {
    add := self.lower(pred)
    switch n.Proj {
        case ir.ProjSubSPSP : return self.dst.NewFixedProj(add, ir.ModeIu, AddSPStack, RegSP)
        case ir.ProjSubSPM  : return self.dst.NewProj(add, ir.ModeM, AddSPM)
        default             : panic(UnsupportedError { Note: "unknown stack adjustment projection", Op: n.Op })
    }
}
