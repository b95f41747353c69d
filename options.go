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
	"io"
)

// Options controls the optional behaviour of Lower.
type Options struct {
	GraphDump io.Writer
	Drawing   io.Writer
}

// Option is the property setter function for Options.
type Option func(*Options)

// WithGraphDump writes a Graphviz rendition of the lowered graph to w
// after a successful Lower.
//
// The dump is meant for humans chasing a miscompile, not for machine
// consumption: its exact shape may change between releases.
func WithGraphDump(w io.Writer) Option {
	if w == nil {
		panic("gofirm: nil graph dump writer")
	} else {
		return func(o *Options) { o.GraphDump = w }
	}
}

// WithDrawing writes an SVG rendition of the lowered graph to w after a
// successful Lower, one column of instructions per basic block.
//
// Like WithGraphDump this is a debugging aid with no stability promise.
func WithDrawing(w io.Writer) Option {
	if w == nil {
		panic("gofirm: nil drawing writer")
	} else {
		return func(o *Options) { o.Drawing = w }
	}
}
