// Package main runs the minimum-jerk arm trajectory planning server.
package main

import (
	"context"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"go.viam.com/armplan/session"
	"go.viam.com/armplan/web"
)

var logger = golog.NewDebugLogger("armplan_server")

const defaultPort = 8080

// Arguments for the command.
type Arguments struct {
	Port  utils.NetPortFlag `flag:"0"`
	DoF   int               `flag:"dof,default=6,usage=number of joints to track"`
	Pprof bool              `flag:"pprof,usage=enable pprof handlers"`
}

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.Port == 0 {
		argsParsed.Port = utils.NetPortFlag(defaultPort)
	}

	sess := session.New(argsParsed.DoF, logger)
	server := web.NewServer(sess, logger)
	return server.Serve(ctx, web.Options{
		Port:  int(argsParsed.Port),
		Pprof: argsParsed.Pprof,
	})
}
