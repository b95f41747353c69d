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

    `github.com/gofirm/gofirm/ir`
)

// UnsupportedError reports a well-formed source construct this backend
// does not implement, floating point arithmetic being the most common.
// Malformed graphs are not reported this way: those panic.
type UnsupportedError struct {
    Note string
    Op   ir.Op
    Mode *ir.Mode
}

func (self UnsupportedError) Error() string {
    switch {
        case self.Op != ir.OpInvalid && self.Mode != nil : return fmt.Sprintf("sparc: unsupported %s of mode %s: %s", self.Op, self.Mode, self.Note)
        case self.Op != ir.OpInvalid                     : return fmt.Sprintf("sparc: unsupported %s: %s", self.Op, self.Note)
        default                                          : return "sparc: unsupported: " + self.Note
    }
}
