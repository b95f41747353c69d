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
    `strings`
)

func refs(v []Ref) string {
    r := make([]string, len(v))
    for i, x := range v {
        if x == RefNone {
            r[i] = "?"
        } else {
            r[i] = fmt.Sprintf("v%d", x)
        }
    }
    return "{" + strings.Join(r, ", ") + "}"
}

func refsliceref(v []Ref) (r []*Ref) {
    r = make([]*Ref, len(v))
    for i := range v {
        r[i] = &v[i]
    }
    return
}

func makeRefs(n int) []Ref {
    r := make([]Ref, n)
    for i := range r {
        r[i] = RefNone
    }
    return r
}
