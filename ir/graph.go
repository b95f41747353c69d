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

package ir

import (
    `fmt`
    `io`
    `strings`
)

// Graph is an arena of Nodes forming one function body in SSA form. A
// fresh graph carries the entry block with its Start node, the end block
// with its End node, and the NoMem placeholder; everything else is added
// through the constructor methods.
type Graph struct {
    Name  string
    Nodes []*Node
    Entry *Node
    Start *Node
    End   *Node
    NoMem *Node
}

func NewGraph(name string) *Graph {
    self := &Graph { Name: name }
    self.Entry = self.NewBlock()
    self.Start = self.newNode(OpStart, ModeT, self.Entry)
    self.NoMem = self.newNode(OpNoMem, ModeM, self.Entry)
    self.End   = self.newNode(OpEnd, ModeX, self.NewBlock())
    return self
}

func (self *Graph) newNode(op Op, mode *Mode, block *Node, in ...*Node) *Node {
    p := &Node {
        Idx   : int32(len(self.Nodes)),
        Op    : op,
        Mode  : mode,
        Block : block,
        In    : in,
    }

    /* phi construction may leave slots open until the back edge exists */
    for _, v := range in {
        if v != nil {
            v.Users = append(v.Users, p)
        }
    }

    self.Nodes = append(self.Nodes, p)
    return p
}

func (self *Graph) NewBlock(preds ...*Node) *Node {
    return self.newNode(OpBlock, ModeBB, nil, preds...)
}

func (self *Graph) NewAdd(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpAdd, mode, blk, x, y)
}

func (self *Graph) NewSub(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpSub, mode, blk, x, y)
}

func (self *Graph) NewMul(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpMul, mode, blk, x, y)
}

func (self *Graph) NewMulh(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpMulh, mode, blk, x, y)
}

func (self *Graph) NewAnd(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpAnd, mode, blk, x, y)
}

func (self *Graph) NewOr(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpOr, mode, blk, x, y)
}

func (self *Graph) NewEor(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpEor, mode, blk, x, y)
}

func (self *Graph) NewShl(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpShl, mode, blk, x, y)
}

func (self *Graph) NewShr(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpShr, mode, blk, x, y)
}

func (self *Graph) NewShrs(blk *Node, x *Node, y *Node, mode *Mode) *Node {
    return self.newNode(OpShrs, mode, blk, x, y)
}

// NewDiv builds a signed division. The node itself has mode T: the
// quotient is reached through a ProjDivRes projection, the memory chain
// through ProjDivM.
func (self *Graph) NewDiv(blk *Node, mem *Node, x *Node, y *Node) *Node {
    return self.newNode(OpDiv, ModeT, blk, mem, x, y)
}

func (self *Graph) NewMinus(blk *Node, x *Node, mode *Mode) *Node {
    return self.newNode(OpMinus, mode, blk, x)
}

func (self *Graph) NewNot(blk *Node, x *Node, mode *Mode) *Node {
    return self.newNode(OpNot, mode, blk, x)
}

func (self *Graph) NewAbs(blk *Node, x *Node, mode *Mode) *Node {
    return self.newNode(OpAbs, mode, blk, x)
}

func (self *Graph) NewConst(blk *Node, mode *Mode, value int64) *Node {
    p := self.newNode(OpConst, mode, blk)
    p.Value = value
    return p
}

func (self *Graph) NewSymConst(blk *Node, mode *Mode, ent *Entity) *Node {
    p := self.newNode(OpSymConst, mode, blk)
    p.Ent = ent
    return p
}

func (self *Graph) NewConv(blk *Node, x *Node, mode *Mode) *Node {
    return self.newNode(OpConv, mode, blk, x)
}

// NewLoad builds a load of a loadMode sized value. Pinned loads keep
// their order relative to other memory operations.
func (self *Graph) NewLoad(blk *Node, mem *Node, ptr *Node, loadMode *Mode, pinned bool) *Node {
    p := self.newNode(OpLoad, ModeT, blk, mem, ptr)
    p.LoadMode = loadMode
    p.Pinned = pinned
    return p
}

func (self *Graph) NewStore(blk *Node, mem *Node, ptr *Node, val *Node) *Node {
    return self.newNode(OpStore, ModeT, blk, mem, ptr, val)
}

// NewCmp builds a comparison of x and y. Individual relations are
// selected by projecting with a Relation value.
func (self *Graph) NewCmp(blk *Node, x *Node, y *Node) *Node {
    return self.newNode(OpCmp, ModeT, blk, x, y)
}

// NewCond builds a conditional jump on sel. A boolean selector makes a
// two-way branch with ProjCondFalse / ProjCondTrue successors; a selector
// of integer mode makes a multi-way jump whose case labels are the Proj
// numbers of its successors and whose fallback is the Default field.
func (self *Graph) NewCond(blk *Node, sel *Node) *Node {
    return self.newNode(OpCond, ModeT, blk, sel)
}

func (self *Graph) NewJmp(blk *Node) *Node {
    return self.newNode(OpJmp, ModeX, blk)
}

func (self *Graph) NewPhi(blk *Node, mode *Mode, in ...*Node) *Node {
    return self.newNode(OpPhi, mode, blk, in...)
}

// NewProj selects result num out of the multi-value node pred. The
// projection lives in the block of its producer.
func (self *Graph) NewProj(pred *Node, mode *Mode, num int64) *Node {
    p := self.newNode(OpProj, mode, pred.Block, pred)
    p.Proj = num
    return p
}

func (self *Graph) NewAddSP(blk *Node, sp *Node, sz *Node) *Node {
    return self.newNode(OpAddSP, ModeT, blk, sp, sz)
}

func (self *Graph) NewSubSP(blk *Node, sp *Node, sz *Node) *Node {
    return self.newNode(OpSubSP, ModeT, blk, sp, sz)
}

func (self *Graph) NewFrameAddr(blk *Node, base *Node, ent *Entity) *Node {
    p := self.newNode(OpFrameAddr, ModeP, blk, base)
    p.Ent = ent
    return p
}

func (self *Graph) NewCopy(blk *Node, x *Node) *Node {
    return self.newNode(OpCopy, x.Mode, blk, x)
}

func (self *Graph) NewCall(blk *Node, mem *Node, ent *Entity, args ...*Node) *Node {
    p := self.newNode(OpCall, ModeT, blk, append([]*Node { mem }, args...)...)
    p.Ent = ent
    return p
}

func (self *Graph) NewUnknown(mode *Mode) *Node {
    return self.newNode(OpUnknown, mode, self.Entry)
}

func (self *Graph) NewSync(blk *Node, in ...*Node) *Node {
    return self.newNode(OpSync, ModeM, blk, in...)
}

// NewReturn ends a function body. The node wires itself as a predecessor
// of the end block.
func (self *Graph) NewReturn(blk *Node, mem *Node, vals ...*Node) *Node {
    p := self.newNode(OpReturn, ModeX, blk, append([]*Node { mem }, vals...)...)
    self.End.Block.AddPred(p)
    return p
}

// Keep marks a node as alive even without data users by attaching it to
// the End node.
func (self *Graph) Keep(n *Node) {
    self.End.In = append(self.End.In, n)
    n.Users = append(n.Users, self.End)
}

// Walk visits every node in arena order.
func (self *Graph) Walk(fn func(*Node)) {
    for _, n := range self.Nodes {
        fn(n)
    }
}

// Dot writes the graph in Graphviz format, one box per node, operand
// edges solid and block membership dashed.
func (self *Graph) Dot(w io.Writer) error {
    buf := []string {
        "digraph " + self.Name + " {",
        `    node [ fontname = "monospace" shape = "box" ]`,
    }

    /* node labels */
    for _, n := range self.Nodes {
        buf = append(buf, fmt.Sprintf(`    n%d [ label = "%s" ]`, n.Idx, dotLabel(n)))
    }

    /* operand and membership edges */
    for _, n := range self.Nodes {
        for i, v := range n.In {
            if v != nil {
                buf = append(buf, fmt.Sprintf(`    n%d -> n%d [ label = "%d" ]`, n.Idx, v.Idx, i))
            }
        }
        if n.Block != nil {
            buf = append(buf, fmt.Sprintf(`    n%d -> n%d [ style = "dashed" ]`, n.Idx, n.Block.Idx))
        }
    }

    /* assemble the final graph */
    buf = append(buf, "}", "")
    _, err := io.WriteString(w, strings.Join(buf, "\n"))
    return err
}

func dotLabel(n *Node) string {
    switch n.Op {
        case OpConst     : return fmt.Sprintf("%s %s(%d)", n, n.Mode, n.Value)
        case OpSymConst  : return fmt.Sprintf("%s &%s", n, n.Ent)
        case OpFrameAddr : return fmt.Sprintf("%s &%s", n, n.Ent)
        case OpProj      : return fmt.Sprintf("%s #%d", n, n.Proj)
        default          : return n.String()
    }
}
