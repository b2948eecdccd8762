package app

import (
	"github.com/vk/stepgrid/internal/registry"
	"github.com/vk/stepgrid/modules/day01"
	"github.com/vk/stepgrid/modules/day02"
	"github.com/vk/stepgrid/modules/day03"
	"github.com/vk/stepgrid/modules/day04"
	"github.com/vk/stepgrid/modules/day05"
	"github.com/vk/stepgrid/modules/day06"
	"github.com/vk/stepgrid/modules/day07"
	"github.com/vk/stepgrid/modules/day08"
)

// coreModules is the definitive list of all puzzles that are compiled into
// the stepgrid binary.
var coreModules = []registry.Module{
	&day01.Module{},
	&day02.Module{},
	&day03.Module{},
	&day04.Module{},
	&day05.Module{},
	&day06.Module{},
	&day07.Module{},
	&day08.Module{},
}
