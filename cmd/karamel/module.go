package main

import (
	"github.com/erhanbaris/karamel-sub001/karamel"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Karamel karamel.Module
}
