package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) newlines() []int {
	if p.n != nil || len(p.d) == 0 {
		return p.n
	}
	p.n = make([]int, 0, bytes.Count(p.d, []byte{'\n'}))
	for i, c := range p.d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p.n
}

// LineCol returns the 0 based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	nls := p.newlines()
	N := len(nls)
	di := sort.Search(N, func(i int) bool {
		return nls[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - nls[di-1] - 1
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line()+1, p.Col()+1)
}
