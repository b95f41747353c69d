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

// ModeKind classifies the value category of a Mode.
type ModeKind uint8

const (
    KindInt ModeKind = iota
    KindRef
    KindFloat
    KindMem
    KindBool
    KindTuple
    KindCtrl
)

// Mode describes the machine-level type of a value: its category, bit
// width and signedness. Modes are canonical: two values share a mode by
// sharing the pointer, and the package-level instances below cover every
// mode the lowering accepts.
type Mode struct {
    Name   string
    Kind   ModeKind
    Bits   uint8
    Signed bool
}

var (
    ModeBs = &Mode { Name: "Bs", Kind: KindInt, Bits: 8, Signed: true }
    ModeBu = &Mode { Name: "Bu", Kind: KindInt, Bits: 8 }
    ModeHs = &Mode { Name: "Hs", Kind: KindInt, Bits: 16, Signed: true }
    ModeHu = &Mode { Name: "Hu", Kind: KindInt, Bits: 16 }
    ModeIs = &Mode { Name: "Is", Kind: KindInt, Bits: 32, Signed: true }
    ModeIu = &Mode { Name: "Iu", Kind: KindInt, Bits: 32 }
    ModeLs = &Mode { Name: "Ls", Kind: KindInt, Bits: 64, Signed: true }
    ModeLu = &Mode { Name: "Lu", Kind: KindInt, Bits: 64 }
    ModeF  = &Mode { Name: "F", Kind: KindFloat, Bits: 32, Signed: true }
    ModeD  = &Mode { Name: "D", Kind: KindFloat, Bits: 64, Signed: true }
    ModeP  = &Mode { Name: "P", Kind: KindRef, Bits: 32 }
    ModeM  = &Mode { Name: "M", Kind: KindMem }
    ModeB  = &Mode { Name: "b", Kind: KindBool }
    ModeT  = &Mode { Name: "T", Kind: KindTuple }
    ModeX  = &Mode { Name: "X", Kind: KindCtrl }
    ModeBB = &Mode { Name: "BB", Kind: KindCtrl }
)

func (self *Mode) IsInt() bool {
    return self.Kind == KindInt
}

func (self *Mode) IsRef() bool {
    return self.Kind == KindRef
}

func (self *Mode) IsFloat() bool {
    return self.Kind == KindFloat
}

// IsData reports whether values of this mode occupy a register.
func (self *Mode) IsData() bool {
    return self.Kind == KindInt || self.Kind == KindRef || self.Kind == KindFloat
}

func (self *Mode) String() string {
    return self.Name
}
