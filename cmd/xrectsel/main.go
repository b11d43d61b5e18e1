package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	xlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/sirupsen/logrus"
	"github.com/xaionaro-go/xrectsel/cmd/xrectsel/commands"
)

func main() {
	ll := xlogrus.DefaultLogrusLogger()
	ll.SetOutput(os.Stderr)
	ll.SetLevel(logrus.TraceLevel)
	ll.Formatter.(*logrus.TextFormatter).FullTimestamp = true
	l := xlogrus.New(ll)

	ctx := context.Background()
	ctx = logger.CtxWithLogger(ctx, l)
	logger.Default = func() logger.Logger {
		return l
	}

	err := commands.Root.ExecuteContext(ctx)
	belt.Flush(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", commands.ProgramName, err)
		os.Exit(1)
	}
}
