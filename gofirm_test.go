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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofirm/gofirm/ir"
)

func testAddGraph() *ir.Graph {
	g := ir.NewGraph("add4")
	mem := g.NewProj(g.Start, ir.ModeM, ir.ProjStartM)
	x := g.NewProj(g.Start, ir.ModeIs, 2)
	sum := g.NewAdd(g.Entry, x, g.NewConst(g.Entry, ir.ModeIs, 4), ir.ModeIs)
	g.NewReturn(g.Entry, mem, sum)
	return g
}

func TestLower(t *testing.T) {
	g, err := Lower(testAddGraph())
	require.NoError(t, err)
	assert.NotZero(t, g.Len())
}

func TestLower_Unsupported(t *testing.T) {
	s := ir.NewGraph("fadd")
	mem := s.NewProj(s.Start, ir.ModeM, ir.ProjStartM)
	x := s.NewProj(s.Start, ir.ModeF, 2)
	y := s.NewProj(s.Start, ir.ModeF, 3)
	s.NewReturn(s.Entry, mem, s.NewAdd(s.Entry, x, y, ir.ModeF))

	_, err := Lower(s)
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
	assert.NotEmpty(t, err.Error())
	assert.False(t, IsUnsupported(errors.New("unrelated")))
}

func TestLower_GraphDump(t *testing.T) {
	var buf bytes.Buffer
	_, err := Lower(testAddGraph(), WithGraphDump(&buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "digraph")
}

func TestLower_Drawing(t *testing.T) {
	var buf bytes.Buffer
	_, err := Lower(testAddGraph(), WithDrawing(&buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestOptions_NilWriter(t *testing.T) {
	assert.Panics(t, func() { WithGraphDump(nil) })
	assert.Panics(t, func() { WithDrawing(nil) })
}
