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

package gofirm

import (
	"github.com/gofirm/gofirm/ir"
	"github.com/gofirm/gofirm/sparc"
)

// Lower translates one function graph into SPARC machine instructions
// ready for register allocation.
//
// Constructs the backend does not implement, floating point arithmetic
// first of all, are reported as an UnsupportedError; a malformed input
// graph panics instead.
//
// Lower keeps no state between calls: concurrent calls on different
// graphs are safe.
func Lower(fn *ir.Graph, options ...Option) (*sparc.Graph, error) {
	o := Options{}
	for _, setter := range options {
		setter(&o)
	}

	g, err := sparc.Transform(fn)
	if err != nil {
		return nil, err
	}

	if o.GraphDump != nil {
		if err = g.Dot(o.GraphDump); err != nil {
			return nil, err
		}
	}
	if o.Drawing != nil {
		g.DrawSVG(o.Drawing)
	}
	return g, nil
}
