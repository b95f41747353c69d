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

// Op identifies the operation a Node performs. The set is closed: the
// lowering pass treats any value outside this enumeration as a malformed
// graph.
type Op uint8

const (
    OpInvalid Op = iota
    OpAdd
    OpSub
    OpMul
    OpMulh
    OpDiv
    OpAnd
    OpOr
    OpEor
    OpShl
    OpShr
    OpShrs
    OpMinus
    OpNot
    OpAbs
    OpConst
    OpSymConst
    OpConv
    OpLoad
    OpStore
    OpCmp
    OpCond
    OpJmp
    OpPhi
    OpProj
    OpAddSP
    OpSubSP
    OpFrameAddr
    OpCopy
    OpCall
    OpUnknown
    OpNoMem
    OpSync
    OpStart
    OpReturn
    OpEnd
    OpBlock
)

var _OpNames = [...]string {
    OpInvalid   : "Invalid",
    OpAdd       : "Add",
    OpSub       : "Sub",
    OpMul       : "Mul",
    OpMulh      : "Mulh",
    OpDiv       : "Div",
    OpAnd       : "And",
    OpOr        : "Or",
    OpEor       : "Eor",
    OpShl       : "Shl",
    OpShr       : "Shr",
    OpShrs      : "Shrs",
    OpMinus     : "Minus",
    OpNot       : "Not",
    OpAbs       : "Abs",
    OpConst     : "Const",
    OpSymConst  : "SymConst",
    OpConv      : "Conv",
    OpLoad      : "Load",
    OpStore     : "Store",
    OpCmp       : "Cmp",
    OpCond      : "Cond",
    OpJmp       : "Jmp",
    OpPhi       : "Phi",
    OpProj      : "Proj",
    OpAddSP     : "AddSP",
    OpSubSP     : "SubSP",
    OpFrameAddr : "FrameAddr",
    OpCopy      : "Copy",
    OpCall      : "Call",
    OpUnknown   : "Unknown",
    OpNoMem     : "NoMem",
    OpSync      : "Sync",
    OpStart     : "Start",
    OpReturn    : "Return",
    OpEnd       : "End",
    OpBlock     : "Block",
}

func (self Op) String() string {
    if int(self) < len(_OpNames) {
        return _OpNames[self]
    } else {
        return fmt.Sprintf("Op(%d)", uint8(self))
    }
}
