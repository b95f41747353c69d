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
    `math`
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/stretchr/testify/require`

    `github.com/gofirm/gofirm/ir`
)

/* evalRef interprets a constant-rooted instruction tree, mirroring what
 * the instructions do on the machine */

func evalRef(t *testing.T, p *Graph, r Ref) int32 {
    switch v := p.At(r).(type) {
        case *MovImm : return v.V
        case *MovReg : return evalRef(t, p, v.X)
        case *HiImm  : return v.V &^ 0x3ff
        case *LoImm  : return evalRef(t, p, v.X) | (v.V & 0x3ff)
        case *AluImm : return evalAlu(t, v.Op, evalRef(t, p, v.X), v.V)
        case *AluReg : return evalAlu(t, v.Op, evalRef(t, p, v.X), evalRef(t, p, v.Y))
        case *Minus  : return -evalRef(t, p, v.X)
        case *Not    : return ^evalRef(t, p, v.X)
        case *Proj   : return evalRef(t, p, v.Pred)
        default      : t.Fatalf("cannot evaluate %s", v); return 0
    }
}

func evalAlu(t *testing.T, op AluOp, x int32, y int32) int32 {
    switch op {
        case AluAdd  : return x + y
        case AluSub  : return x - y
        case AluAnd  : return x & y
        case AluOr   : return x | y
        case AluXor  : return x ^ y
        case AluSll  : return x << (uint32(y) & 31)
        case AluSrl  : return int32(uint32(x) >> (uint32(y) & 31))
        case AluSra  : return x >> (uint32(y) & 31)
        case AluMul  : return x * y
        case AluMulh : return int32((int64(x) * int64(y)) >> 32)
        case AluDiv  : return x / y
        default      : t.Fatalf("cannot evaluate alu op %s", op); return 0
    }
}

func lowerValue(t *testing.T, build func(g *ir.Graph, mem *ir.Node) *ir.Node) int32 {
    g := ir.NewGraph("eval")
    mem := g.NewProj(g.Start, ir.ModeM, ir.ProjStartM)
    v := build(g, mem)
    g.NewReturn(g.Entry, mem, v)
    p := mustLower(t, g)
    return evalRef(t, p, findReturn(t, p).In[1])
}

func TestEval_Constants(t *testing.T) {
    vals := []int32 {
        0, 1, -1, 42, 4095, -4096, 4096, -4097,
        0x3ff, 0x400, -0x400, math.MaxInt32, math.MinInt32,
    }
    f := gofakeit.New(12345)
    for i := 0; i < 128; i++ {
        vals = append(vals, f.Int32())
    }
    for _, v := range vals {
        got := lowerValue(t, func(g *ir.Graph, mem *ir.Node) *ir.Node {
            return g.NewConst(g.Entry, ir.ModeIs, int64(v))
        })
        require.Equal(t, v, got, "materializing %d", v)
    }
}

func TestEval_Extensions(t *testing.T) {
    f := gofakeit.New(67890)
    for i := 0; i < 64; i++ {
        v := f.Int32()
        cases := []struct {
            name string
            dst  *ir.Mode
            want int32
        } {
            { "sext8",  ir.ModeBs, int32(int8(v)) },
            { "zext8",  ir.ModeBu, v & 0xff },
            { "sext16", ir.ModeHs, int32(int16(v)) },
            { "zext16", ir.ModeHu, v & 0xffff },
        }
        for _, tc := range cases {
            got := lowerValue(t, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewConv(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(v)), tc.dst)
            })
            require.Equal(t, tc.want, got, "%s of %d", tc.name, v)
        }
    }
}

func TestEval_Abs(t *testing.T) {
    cases := []struct {
        v    int32
        want int32
    } {
        { 5, 5 },
        { -5, 5 },
        { 0, 0 },
        { math.MaxInt32, math.MaxInt32 },
        { math.MinInt32 + 1, math.MaxInt32 },

        /* the minimum word value has no positive counterpart and wraps
         * onto itself */
        { math.MinInt32, math.MinInt32 },
    }
    for _, tc := range cases {
        got := lowerValue(t, func(g *ir.Graph, mem *ir.Node) *ir.Node {
            return g.NewAbs(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(tc.v)), ir.ModeIs)
        })
        require.Equal(t, tc.want, got, "abs of %d", tc.v)
    }
}

func TestEval_Arithmetic(t *testing.T) {
    f := gofakeit.New(24680)
    for i := 0; i < 64; i++ {
        a := f.Int32()
        b := int32(f.Number(-4096, 4095))
        s := int32(f.Number(0, 31))
        d := int32(f.Number(1, 4095))

        cases := []struct {
            name string
            want int32
            build func(g *ir.Graph, mem *ir.Node) *ir.Node
        } {
            { "add", a + b, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewAdd(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "sub", a - b, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewSub(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "and", a & b, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewAnd(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "or", a | b, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewOr(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "eor", a ^ b, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewEor(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "shl", a << s, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewShl(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(s)), ir.ModeIs)
            } },
            { "shr", int32(uint32(a) >> s), func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewShr(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(s)), ir.ModeIs)
            } },
            { "shrs", a >> s, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewShrs(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(s)), ir.ModeIs)
            } },
            { "mul", a * b, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewMul(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "mulh", int32((int64(a) * int64(b)) >> 32), func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewMulh(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(b)), ir.ModeIs)
            } },
            { "div", a / d, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                div := g.NewDiv(g.Entry, mem, g.NewConst(g.Entry, ir.ModeIs, int64(a)), g.NewConst(g.Entry, ir.ModeIs, int64(d)))
                return g.NewProj(div, ir.ModeIs, ir.ProjDivRes)
            } },
            { "minus", -a, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewMinus(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), ir.ModeIs)
            } },
            { "not", ^a, func(g *ir.Graph, mem *ir.Node) *ir.Node {
                return g.NewNot(g.Entry, g.NewConst(g.Entry, ir.ModeIs, int64(a)), ir.ModeIs)
            } },
        }
        for _, tc := range cases {
            got := lowerValue(t, tc.build)
            require.Equal(t, tc.want, got, "%s with a=%d b=%d s=%d d=%d", tc.name, a, b, s, d)
        }
    }
}
