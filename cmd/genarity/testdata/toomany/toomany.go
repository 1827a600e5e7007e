package toomany

import (
	"github.com/rogpeppe/asyncfn/asyncfn"
	"github.com/rogpeppe/asyncfn/future"
	"github.com/rogpeppe/asyncfn/staticfn"
)

func f13(_, _, _, _, _, _, _, _, _, _, _, _, _ int) *future.Future[int] {
	return future.Ready(13)
}

var (
	_ = asyncfn.Of12(f13)
	_ = staticfn.Of12(f13)
)
