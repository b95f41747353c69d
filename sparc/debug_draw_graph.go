/*
 * Copyright 2024 Gofirm Authors
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
    `io`

    `github.com/ajstarks/svgo`
)

type _DrawPoint struct {
    x int
    y int
}

// DrawSVG renders the graph with one column of instructions per block,
// blockless nodes in a trailing column, and operand edges drawn from
// consumer to producer. Purely a debugging aid.
func (self *Graph) DrawSVG(w io.Writer) {
    maxi := len("floating")
    cols := make([]Ref, 0, 8)
    rows := make(map[Ref][]Ref)
    free := make([]Ref, 0, 4)

    /* partition the arena into block columns */
    for i, p := range self.nodes {
        if _, ok := p.(*Block); ok {
            cols = append(cols, Ref(i))
            continue
        }
        if s := fmt.Sprintf("v%d = %s", i, p); len(s) > maxi {
            maxi = len(s)
        }
        if blk := p.base().blk; blk == RefNone {
            free = append(free, Ref(i))
        } else {
            rows[blk] = append(rows[blk], Ref(i))
        }
    }

    /* tallest column decides the height */
    high := len(free)
    for _, v := range rows {
        if len(v) > high {
            high = len(v)
        }
    }

    colw := maxi * 9 + 60
    pos := make(map[Ref]_DrawPoint)

    p := svg.New(w)
    p.Start((len(cols) + 1) * colw + 100, high * 24 + 150)
    if _, err := io.WriteString(w, `<rect width="100%" height="100%" fill="white" />` + "\n"); err != nil {
        panic(err)
    }

    draw := func(ci int, title string, members []Ref) {
        x := 50 + ci * colw
        p.Text(x, 70, title, "fill:gray;font-size:16px;font-family:monospace")
        p.Line(x - 10, 80, x - 10, high * 24 + 110, "stroke:lightgray")
        for j, r := range members {
            y := 100 + j * 24
            s := fmt.Sprintf("v%d = %s", r, self.nodes[r])
            if f := self.nodes[r].base().flags; f != 0 {
                s += " ;" + f.String()
            }
            p.Text(x, y, s, "fill:black;font-size:16px;font-family:monospace")
            pos[r] = _DrawPoint { x: x, y: y }
        }
    }

    for i, b := range cols {
        draw(i, fmt.Sprintf("block v%d", b), rows[b])
    }
    draw(len(cols), "floating", free)

    /* operand edges, consumer to producer */
    for i := range self.nodes {
        pt, ok := pos[Ref(i)]
        if !ok {
            continue
        }
        for _, op := range self.nodes[i].Operands() {
            if q, ok := pos[*op]; ok {
                p.Line(pt.x - 6, pt.y - 6, q.x - 6, q.y - 6, "stroke:lightsteelblue")
                p.Circle(q.x - 6, q.y - 6, 3, "fill:white;stroke:black")
            }
        }
    }
    p.End()
}
