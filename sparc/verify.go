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
)

// Verify checks the structural soundness of a graph: every operand slot
// resolved and in range, every Phi as wide as its block, every branch
// fed by condition codes, every block entered by control transfers only.
func (self *Graph) Verify() error {
    for i, p := range self.nodes {
        if err := self.verifyNode(Ref(i), p); err != nil {
            return err
        }
    }
    return nil
}

func (self *Graph) verifyNode(i Ref, p Node) error {
    for _, op := range p.Operands() {
        if *op == RefNone {
            return fmt.Errorf("v%d: unresolved operand", i)
        }
        if *op < 0 || int(*op) >= len(self.nodes) {
            return fmt.Errorf("v%d: operand v%d out of range", i, *op)
        }
    }

    switch v := p.(type) {
        case *Phi   : return self.verifyPhi(i, v)
        case *Bicc  : return self.verifyBicc(i, v)
        case *Block : return self.verifyBlock(i, v)
        default     : return nil
    }
}

func (self *Graph) verifyPhi(i Ref, v *Phi) error {
    if v.blk == RefNone {
        return fmt.Errorf("v%d: phi without a block", i)
    }
    if blk, ok := self.nodes[v.blk].(*Block); !ok {
        return fmt.Errorf("v%d: phi not placed in a block", i)
    } else if len(v.In) != len(blk.Preds) {
        return fmt.Errorf("v%d: phi with %d operands in a block with %d predecessors", i, len(v.In), len(blk.Preds))
    }
    return nil
}

func (self *Graph) verifyBicc(i Ref, v *Bicc) error {
    if _, ok := self.nodes[v.X].(*Cmp); !ok {
        return fmt.Errorf("v%d: branch does not read a comparison", i)
    }
    return nil
}

func (self *Graph) verifyBlock(i Ref, v *Block) error {
    for _, p := range v.Preds {
        switch self.nodes[p].(type) {
            case *Ba, *Proj, *Return:
                break
            default:
                return fmt.Errorf("v%d: block entered by non-control node v%d", i, p)
        }
    }
    return nil
}
