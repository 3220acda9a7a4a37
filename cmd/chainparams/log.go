package main

import (
	"github.com/cashnode/cashd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CPRM")
