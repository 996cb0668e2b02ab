// Command goinput-demo is a small deployment CLI built on goinput.
//
//	goinput-demo --dry-run deploy --env=prod --replicas=3 --tags='!team:core|tier:1' --digest=release-42
//	goinput-demo scale=5 --force
//	goinput-demo --help
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/napalu/goinput"
	"github.com/napalu/goinput/internal/log"
	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
)

const digestModule = "goinput-demo/digest"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser, err := newParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_ = parser.Run(ctx, os.Args, nil, "goinput-demo")
}

func newParser() (*goinput.Parser, error) {
	return goinput.NewParserWith(
		goinput.WithInfo(goinput.Info{
			Name:        "goinput-demo",
			Description: "deploys and scales an imaginary service",
			Usage:       "goinput-demo [global flags] <command> [flags]",
			Version:     "0.3.0",
			Repository:  "https://github.com/napalu/goinput",
		}),
		goinput.WithCommandAcceptsOptions(true),
		goinput.WithExport(digestModule, "Sum", thread.Func(digest)),

		goinput.WithGlobal("--dry-run", goinput.NewGlobal(
			goinput.SetGlobalVoid(true),
			goinput.WithGlobalDescription("print what would happen without doing it"),
			goinput.WithGlobalCallback(goinput.Sync(func(c *goinput.Call) (types.Value, error) {
				c.Session.Set("dry-run", true)
				return types.Undefined(), nil
			})))),
		goinput.WithGlobal("--region", goinput.NewGlobal(
			goinput.WithGlobalType(types.String),
			goinput.WithGlobalDescription("region to operate in"),
			goinput.WithOnlyFor("deploy"),
			goinput.WithGlobalCallback(goinput.Sync(func(c *goinput.Call) (types.Value, error) {
				c.Session.Set("region", c.Value.String())
				return types.Undefined(), nil
			})))),

		goinput.WithCommand(goinput.NewCommand(
			goinput.WithCommandDescription("deploy a release"),
			goinput.WithRequiredFlags("env"),
			goinput.WithCommandCallback(goinput.Sync(deploy))), "deploy"),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("env"),
			goinput.WithShortFlag("e"),
			goinput.WithType(types.String),
			goinput.WithDescription("target environment"),
			goinput.ForCommands("deploy"))),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("replicas"),
			goinput.WithShortFlag("r"),
			goinput.WithType(types.Number),
			goinput.WithDescription("number of instances"),
			goinput.ForCommands("deploy"))),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("tags"),
			goinput.WithType(types.KVP),
			goinput.WithDescription("labels as !key:value|key:value"),
			goinput.ForCommands("deploy"))),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("digest"),
			goinput.WithType(types.String),
			goinput.WithDescription("release name whose digest is computed on a worker"),
			goinput.WithCallback(goinput.Threaded(digestModule, "Sum", nil)),
			goinput.ForCommands("deploy"))),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("notify"),
			goinput.WithDependentFlags("channel"),
			goinput.WithPrecedence(1),
			goinput.WithDescription("announce the deployment once everything else ran"),
			goinput.WithCallback(goinput.Sync(func(c *goinput.Call) (types.Value, error) {
				log.FromContext(c.Context).Info("notification queued", "command", c.Command)
				return types.BoolOf(true), nil
			})),
			goinput.ForCommands("deploy"))),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("channel"),
			goinput.WithDescription("where to announce"),
			goinput.ForCommands("deploy"))),

		goinput.WithCommand(goinput.NewCommand(
			goinput.WithCommandDescription("set the instance count, given as scale=<n>"),
			goinput.WithCommandType(types.Number),
			goinput.WithCommandCallback(goinput.Sync(scale))), "scale"),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("force"),
			goinput.SetVoid(true),
			goinput.WithConflicts("--wait"),
			goinput.WithDescription("skip health checks"),
			goinput.ForCommands("scale"))),
		goinput.WithFlag(goinput.NewFlag(
			goinput.WithLongFlag("wait"),
			goinput.WithMultiType(types.Number, types.Void),
			goinput.WithDescription("wait for the new instances, optionally for n seconds"),
			goinput.ForCommands("scale"))),
	)
}

func digest(ctx context.Context, in types.Value) (types.Value, error) {
	sum := sha256.Sum256([]byte(in.String()))
	return types.StringOf(hex.EncodeToString(sum[:8])), nil
}

func deploy(c *goinput.Call) (types.Value, error) {
	prefix := ""
	if c.Session.Has("dry-run") {
		prefix = "[dry-run] "
	}
	region := "default"
	if r, ok := c.Session.Get("region"); ok {
		region = r.(string)
	}

	var parts []string
	for _, key := range c.Flags.Keys() {
		v, _ := c.Flags.Get(key)
		parts = append(parts, key+"="+v.String())
	}
	fmt.Printf("%sdeploying to %s: %s\n", prefix, region, strings.Join(parts, " "))

	return types.Undefined(), nil
}

func scale(c *goinput.Call) (types.Value, error) {
	n, ok := c.Value.Int()
	if !ok {
		return types.Undefined(), fmt.Errorf("scale requires an instance count, e.g. scale=3")
	}
	fmt.Printf("scaling to %d instances (flags: %s)\n", n, strings.Join(c.Flags.Keys(), ", "))

	return types.Undefined(), nil
}
