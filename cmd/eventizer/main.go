package main

import (
	"eventizer/cmd/eventizer/commands"
	"eventizer/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
