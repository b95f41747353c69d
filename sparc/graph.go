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
    `io`
    `strings`

    `github.com/gofirm/gofirm/ir`
)

// Graph is an arena of target nodes, usually the output of Transform.
// Nodes are addressed by Ref; a fresh graph carries only the NoMem
// placeholder.
type Graph struct {
    Name   string
    nodes  []Node
    nomem  Ref
    cursrc int32
    curdbg *ir.DebugInfo
}

func NewGraph(name string) *Graph {
    self := &Graph { Name: name, cursrc: -1 }
    self.nomem = self.push(RefNone, &NoMem {})
    return self
}

func (self *Graph) push(blk Ref, p Node) Ref {
    n := p.base()
    n.idx = Ref(len(self.nodes))
    n.blk = blk
    n.src = self.cursrc
    n.dbg = self.curdbg
    self.nodes = append(self.nodes, p)
    return n.idx
}

// At returns the node a reference points to.
func (self *Graph) At(r Ref) Node {
    return self.nodes[r]
}

// Len returns the number of nodes in the arena.
func (self *Graph) Len() int {
    return len(self.nodes)
}

// Walk visits every node in arena order.
func (self *Graph) Walk(fn func(Ref, Node)) {
    for i, p := range self.nodes {
        fn(Ref(i), p)
    }
}

// AddFlags merges f into the flag set of a node.
func (self *Graph) AddFlags(r Ref, f Flags) {
    self.nodes[r].base().flags |= f
}

// NoMem returns the empty memory chain of the graph.
func (self *Graph) NoMem() Ref {
    return self.nomem
}

func (self *Graph) NewBlock(preds ...Ref) Ref {
    return self.push(RefNone, &Block { Preds: preds })
}

func (self *Graph) NewMovImm(blk Ref, v int32) Ref {
    return self.push(blk, &MovImm { V: v })
}

func (self *Graph) NewMovReg(blk Ref, x Ref) Ref {
    return self.push(blk, &MovReg { X: x })
}

func (self *Graph) NewHiImm(blk Ref, v int32) Ref {
    return self.push(blk, &HiImm { V: v })
}

func (self *Graph) NewLoImm(blk Ref, x Ref, v int32) Ref {
    return self.push(blk, &LoImm { X: x, V: v })
}

func (self *Graph) newAluReg(blk Ref, op AluOp, x Ref, y Ref) Ref {
    return self.push(blk, &AluReg { Op: op, X: x, Y: y })
}

func (self *Graph) newAluImm(blk Ref, op AluOp, x Ref, v int32) Ref {
    return self.push(blk, &AluImm { Op: op, X: x, V: v })
}

func (self *Graph) NewAddReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluAdd, x, y) }
func (self *Graph) NewSubReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluSub, x, y) }
func (self *Graph) NewAndReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluAnd, x, y) }
func (self *Graph) NewOrReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluOr, x, y) }
func (self *Graph) NewXorReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluXor, x, y) }
func (self *Graph) NewSllReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluSll, x, y) }
func (self *Graph) NewSrlReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluSrl, x, y) }
func (self *Graph) NewSraReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluSra, x, y) }
func (self *Graph) NewMulReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluMul, x, y) }
func (self *Graph) NewMulhReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluMulh, x, y) }
func (self *Graph) NewDivReg(blk Ref, x Ref, y Ref) Ref { return self.newAluReg(blk, AluDiv, x, y) }

func (self *Graph) NewAddImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluAdd, x, v) }
func (self *Graph) NewSubImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluSub, x, v) }
func (self *Graph) NewAndImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluAnd, x, v) }
func (self *Graph) NewOrImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluOr, x, v) }
func (self *Graph) NewXorImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluXor, x, v) }
func (self *Graph) NewSllImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluSll, x, v) }
func (self *Graph) NewSrlImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluSrl, x, v) }
func (self *Graph) NewSraImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluSra, x, v) }
func (self *Graph) NewMulImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluMul, x, v) }
func (self *Graph) NewMulhImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluMulh, x, v) }
func (self *Graph) NewDivImm(blk Ref, x Ref, v int32) Ref { return self.newAluImm(blk, AluDiv, x, v) }

func (self *Graph) NewMinus(blk Ref, x Ref) Ref {
    return self.push(blk, &Minus { X: x })
}

func (self *Graph) NewNot(blk Ref, x Ref) Ref {
    return self.push(blk, &Not { X: x })
}

func (self *Graph) NewLd(blk Ref, ptr Ref, mem Ref, mode *ir.Mode) Ref {
    return self.push(blk, &Ld { Ptr: ptr, Mem: mem, Mode: mode })
}

func (self *Graph) NewSt(blk Ref, ptr Ref, val Ref, mem Ref, mode *ir.Mode) Ref {
    return self.push(blk, &St { Ptr: ptr, Val: val, Mem: mem, Mode: mode })
}

func (self *Graph) NewCmp(blk Ref, x Ref, y Ref, unsigned bool) Ref {
    r := self.push(blk, &Cmp { X: x, Y: y, Unsigned: unsigned })
    self.AddFlags(r, FlagModifyFlags)
    return r
}

func (self *Graph) NewBicc(blk Ref, x Ref, rel ir.Relation) Ref {
    return self.push(blk, &Bicc { X: x, Rel: rel })
}

func (self *Graph) NewBa(blk Ref) Ref {
    return self.push(blk, &Ba {})
}

func (self *Graph) NewSwitchJmp(blk Ref, sel Ref, ncases int64, deflt int64) Ref {
    return self.push(blk, &SwitchJmp { Sel: sel, NCases: ncases, Default: deflt })
}

func (self *Graph) NewSymConst(blk Ref, ent *ir.Entity) Ref {
    return self.push(blk, &SymConst { Ent: ent })
}

func (self *Graph) NewFrameAddr(blk Ref, base Ref, ent *ir.Entity) Ref {
    return self.push(blk, &FrameAddr { Base: base, Ent: ent })
}

func (self *Graph) NewAddSP(blk Ref, sp Ref, sz Ref, mem Ref) Ref {
    return self.push(blk, &AddSP { SP: sp, Sz: sz, Mem: mem })
}

func (self *Graph) NewSubSP(blk Ref, sp Ref, sz Ref, mem Ref) Ref {
    return self.push(blk, &SubSP { SP: sp, Sz: sz, Mem: mem })
}

func (self *Graph) NewFConv(blk Ref, kind ConvKind, x Ref, mode *ir.Mode) Ref {
    return self.push(blk, &FConv { Kind: kind, X: x, Mode: mode })
}

func (self *Graph) NewCopy(blk Ref, x Ref, mode *ir.Mode) Ref {
    return self.push(blk, &Copy { X: x, Mode: mode })
}

func (self *Graph) NewCall(blk Ref, ent *ir.Entity, in []Ref) Ref {
    return self.push(blk, &Call { Ent: ent, In: in })
}

func (self *Graph) NewPhi(blk Ref, mode *ir.Mode, req RegReq, in []Ref) Ref {
    return self.push(blk, &Phi { Mode: mode, Req: req, In: in })
}

// NewProj places the projection in the block of its producer.
func (self *Graph) NewProj(pred Ref, mode *ir.Mode, slot int64) Ref {
    return self.push(self.nodes[pred].base().blk, &Proj { Pred: pred, Slot: slot, Mode: mode })
}

// NewFixedProj additionally pins the projected value to a physical
// register.
func (self *Graph) NewFixedProj(pred Ref, mode *ir.Mode, slot int64, reg Register) Ref {
    return self.push(self.nodes[pred].base().blk, &Proj { Pred: pred, Slot: slot, Mode: mode, Reg: reg })
}

func (self *Graph) NewStart(blk Ref) Ref {
    return self.push(blk, &Start {})
}

func (self *Graph) NewEnd(blk Ref, in []Ref) Ref {
    return self.push(blk, &End { In: in })
}

func (self *Graph) NewReturn(blk Ref, in []Ref) Ref {
    return self.push(blk, &Return { In: in })
}

func (self *Graph) NewSync(blk Ref, in []Ref) Ref {
    return self.push(blk, &Sync { In: in })
}

// Dot writes the graph in Graphviz format, one box per instruction,
// operand edges solid and block membership dashed.
func (self *Graph) Dot(w io.Writer) error {
    buf := []string {
        "digraph " + self.Name + " {",
        `    node [ fontname = "monospace" shape = "box" ]`,
    }

    /* node labels */
    for i, p := range self.nodes {
        if f := p.base().flags; f != 0 {
            buf = append(buf, fmt.Sprintf(`    v%d [ label = "v%d = %s [%s]" ]`, i, i, p, f))
        } else {
            buf = append(buf, fmt.Sprintf(`    v%d [ label = "v%d = %s" ]`, i, i, p))
        }
    }

    /* operand and membership edges */
    for i, p := range self.nodes {
        for _, op := range p.Operands() {
            if *op != RefNone {
                buf = append(buf, fmt.Sprintf(`    v%d -> v%d`, i, *op))
            }
        }
        if blk := p.base().blk; blk != RefNone {
            buf = append(buf, fmt.Sprintf(`    v%d -> v%d [ style = "dashed" ]`, i, blk))
        }
    }

    /* assemble the final graph */
    buf = append(buf, "}", "")
    _, err := io.WriteString(w, strings.Join(buf, "\n"))
    return err
}
