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
    `github.com/gofirm/gofirm/ir`
)

// RegReq is the register-class requirement a node places on its primary
// result. A register allocator downstream assigns within the class.
type RegReq uint8

const (
    ReqNone RegReq = iota
    ReqGP
    ReqFlags
)

func (self RegReq) String() string {
    switch self {
        case ReqNone  : return "none"
        case ReqGP    : return "gp"
        case ReqFlags : return "flags"
        default       : panic("unreachable")
    }
}

// Register names a fixed physical register a projection may be pinned
// to. Most values leave the choice to the allocator.
type Register uint8

const (
    RegNone Register = iota
    RegSP
)

func (self Register) String() string {
    switch self {
        case RegNone : return "none"
        case RegSP   : return "%sp"
        default      : panic("unreachable")
    }
}

// needsGPReg reports whether values of mode m live in a general purpose
// register once lowered.
func needsGPReg(m *ir.Mode) bool {
    return m.IsInt() || m.IsRef()
}

// Requirements returns the register-class requirement of the primary
// result of a node. Memory chains and control transfers require nothing;
// multi-value producers report requirements through their projections.
func Requirements(p Node) RegReq {
    switch v := p.(type) {
        case *MovImm    : return ReqGP
        case *MovReg    : return ReqGP
        case *HiImm     : return ReqGP
        case *LoImm     : return ReqGP
        case *AluReg    : return ReqGP
        case *AluImm    : return ReqGP
        case *Minus     : return ReqGP
        case *Not       : return ReqGP
        case *SymConst  : return ReqGP
        case *FrameAddr : return ReqGP
        case *FConv     : return ReqGP
        case *Copy      : return copyReq(v)
        case *Cmp       : return ReqFlags
        case *Phi       : return v.Req
        case *Proj      : return projReq(v)
        default         : return ReqNone
    }
}

func copyReq(v *Copy) RegReq {
    if needsGPReg(v.Mode) {
        return ReqGP
    } else {
        return ReqNone
    }
}

func projReq(v *Proj) RegReq {
    if v.Mode.IsData() {
        return ReqGP
    } else {
        return ReqNone
    }
}
