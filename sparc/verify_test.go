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
    `testing`

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`

    `github.com/gofirm/gofirm/ir`
)

func TestVerify_UnresolvedOperand(t *testing.T) {
    p := NewGraph("unresolved")
    blk := p.NewBlock()
    p.NewMovReg(blk, RefNone)
    assert.Error(t, p.Verify())
}

func TestVerify_OperandOutOfRange(t *testing.T) {
    p := NewGraph("range")
    blk := p.NewBlock()
    p.NewMovReg(blk, Ref(99))
    assert.Error(t, p.Verify())
}

func TestVerify_PhiArity(t *testing.T) {
    p := NewGraph("phi_arity")
    head := p.NewBlock()
    ba := p.NewBa(head)
    blk := p.NewBlock(ba)
    mov := p.NewMovImm(blk, 0)
    p.NewPhi(blk, ir.ModeIu, ReqGP, []Ref { mov, mov })
    require.Error(t, p.Verify())

    /* with matching arity the graph is sound */
    q := NewGraph("phi_ok")
    head = q.NewBlock()
    ba = q.NewBa(head)
    blk = q.NewBlock(ba)
    mov = q.NewMovImm(blk, 0)
    q.NewPhi(blk, ir.ModeIu, ReqGP, []Ref { mov })
    assert.NoError(t, q.Verify())
}

func TestVerify_BlocklessPhi(t *testing.T) {
    p := NewGraph("blockless_phi")
    p.NewPhi(RefNone, ir.ModeIu, ReqGP, nil)
    assert.Error(t, p.Verify())
}

func TestVerify_BranchReadsComparison(t *testing.T) {
    p := NewGraph("branch")
    blk := p.NewBlock()
    mov := p.NewMovImm(blk, 1)
    p.NewBicc(blk, mov, ir.RelEq)
    assert.Error(t, p.Verify())
}

func TestVerify_BlockEnteredByControl(t *testing.T) {
    p := NewGraph("entry")
    blk := p.NewBlock()
    mov := p.NewMovImm(blk, 1)
    p.NewBlock(mov)
    assert.Error(t, p.Verify())
}
