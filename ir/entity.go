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

// Entity is a linker-level symbol: a global variable, a function, or a
// slot on the stack frame.
type Entity struct {
    Name   string
    Offset int32
}

func (self *Entity) String() string {
    return self.Name
}

// DebugInfo is the source position attached to a node. The lowering pass
// treats it as opaque and copies it onto every instruction derived from
// the node.
type DebugInfo struct {
    File string
    Line int32
}

func (self *DebugInfo) String() string {
    return fmt.Sprintf("%s:%d", self.File, self.Line)
}
