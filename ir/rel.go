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

// Relation is the comparison relation selected by a projection of a Cmp
// node. It is a bit set over { less, equal, greater }, so compound
// relations are unions of the primitive ones.
type Relation uint8

const (
    RelFalse Relation = 0
    RelEq    Relation = 1
    RelLt    Relation = 2
    RelGt    Relation = 4
    RelLe    Relation = RelLt | RelEq
    RelGe    Relation = RelGt | RelEq
    RelLg    Relation = RelLt | RelGt
    RelLeg   Relation = RelLt | RelEq | RelGt
)

func (self Relation) String() string {
    switch self {
        case RelFalse : return "false"
        case RelEq    : return "=="
        case RelLt    : return "<"
        case RelGt    : return ">"
        case RelLe    : return "<="
        case RelGe    : return ">="
        case RelLg    : return "!="
        case RelLeg   : return "ordered"
        default       : return fmt.Sprintf("Relation(%d)", uint8(self))
    }
}
