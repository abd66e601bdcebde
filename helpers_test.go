package inplace

import (
	"errors"
	"strconv"
)

var errInjected = errors.New("injected failure")

// life records hook calls made on tracked elements. Tests reset it first.
var life struct {
	inits     int
	clones    int
	destroyed []string
	failInit  int // fail the n-th Init, 0 never
	failClone int // fail the n-th Clone, 0 never
}

func resetLife() {
	life.inits, life.clones = 0, 0
	life.destroyed = nil
	life.failInit, life.failClone = 0, 0
}

// tracked implements every element hook.
type tracked struct {
	name string
}

func (t *tracked) Init() error {
	life.inits++
	if life.inits == life.failInit {
		return errInjected
	}
	t.name = "init-" + strconv.Itoa(life.inits)
	return nil
}

func (t tracked) Clone() (tracked, error) {
	life.clones++
	if life.clones == life.failClone {
		return tracked{}, errInjected
	}
	return tracked{name: t.name}, nil
}

func (t *tracked) Destroy() {
	life.destroyed = append(life.destroyed, t.name)
}

func names(ts []tracked) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.name
	}
	return out
}

func mk(ns ...string) []tracked {
	out := make([]tracked, len(ns))
	for i, n := range ns {
		out[i] = tracked{name: n}
	}
	return out
}

// deep owns a byte slice that Clone duplicates.
type deep struct {
	b []byte
}

func (d deep) Clone() (deep, error) {
	return deep{b: append([]byte(nil), d.b...)}, nil
}

type (
	trackedVec = Vector[tracked, [4]tracked]
	intVec     = Vector[int, [8]int]
	strVec     = Vector[string, [4]string]
)
