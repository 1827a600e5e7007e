package maxarity

import (
	"github.com/rogpeppe/asyncfn/asyncfn"
	"github.com/rogpeppe/asyncfn/future"
	"github.com/rogpeppe/asyncfn/staticfn"
)

func f12(_, _, _, _, _, _, _, _, _, _, _, _ int) *future.Future[int] {
	return future.Ready(12)
}

var (
	_ = asyncfn.Of12(f12)
	_ = staticfn.Of12(f12)
)
