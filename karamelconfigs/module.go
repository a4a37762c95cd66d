package karamelconfigs

import (
	"github.com/erhanbaris/karamel-sub001/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
