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
)

// Node is one operation of a source graph. Nodes are arena-allocated by
// their Graph and addressed through the stable Idx. Once the front end
// has finished building a graph the nodes are read-only: the lowering
// pass never mutates them.
type Node struct {
    Idx   int32
    Op    Op
    Mode  *Mode
    Block *Node
    In    []*Node
    Users []*Node
    Dbg   *DebugInfo

    /* per-opcode attributes */
    Value    int64     // OpConst
    Ent      *Entity   // OpSymConst, OpFrameAddr, OpCall
    Proj     int64     // OpProj: result slot of In[0], or the Relation for Cmp selectors
    Default  int64     // OpCond: default label of a multi-way jump
    LoadMode *Mode     // OpLoad: mode of the loaded value
    Pinned   bool      // OpLoad: keep the instruction ordered with other memory ops
}

func (self *Node) String() string {
    return fmt.Sprintf("%s_%d", self.Op, self.Idx)
}

// Pred returns the producer a projection selects its result from.
func (self *Node) Pred() *Node {
    return self.In[0]
}

// SetIn replaces operand i, keeping the user lists in sync. It exists for
// front ends that close Phi and Block cycles after the fact; the lowering
// pass never calls it.
func (self *Node) SetIn(i int, v *Node) {
    if old := self.In[i]; old != nil {
        old.delUser(self)
    }
    self.In[i] = v
    if v != nil {
        v.Users = append(v.Users, self)
    }
}

// AddPred appends a control-flow predecessor to a block. Blocks that
// close loops receive their back edge this way.
func (self *Node) AddPred(p *Node) {
    self.In = append(self.In, p)
    p.Users = append(p.Users, self)
}

func (self *Node) delUser(u *Node) {
    for i, v := range self.Users {
        if v == u {
            self.Users = append(self.Users[:i], self.Users[i + 1:]...)
            return
        }
    }
}
