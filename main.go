package main

import (
	"fmt"
	"github.com/ejacobg/graphwalk/ancestor"
	"github.com/ejacobg/graphwalk/graph"
	"github.com/ejacobg/graphwalk/social"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"io"
	"math/rand"
	"os"
	"sort"
)

var (
	appName = "graphwalk"
	appSha  = "populated-at-link-time"
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":    appName,
		"sha":    appSha,
		"host":   host,
		"run_id": uuid.New().String(),
	})

	if err := makeApp(rootLogger, logger).Run(os.Args); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		os.Exit(1)
	}
}

func makeApp(rootLogger *logrus.Logger, logger *logrus.Entry) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "explore family trees and social networks"
	app.Version = appSha
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "The logging level (one of: trace, debug, info, warn, error)",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		level, err := logrus.ParseLevel(ctx.GlobalString("log-level"))
		if err != nil {
			return err
		}
		rootLogger.SetLevel(level)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "social",
			Usage: "populate a random social graph and print the shortest friendship paths for a user",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "users", Value: 10, Usage: "The number of users to create"},
				cli.IntFlag{Name: "avg", Value: 2, Usage: "The average number of friendships per user"},
				cli.IntFlag{Name: "user", Value: 1, Usage: "The user whose extended network is printed"},
				cli.Int64Flag{Name: "seed", Usage: "Seed for the random number generator (defaults to the current time)"},
			},
			Action: func(ctx *cli.Context) error {
				return runSocial(ctx, logger.WithField("command", "social"))
			},
		},
		{
			Name:  "ancestor",
			Usage: "print the earliest ancestor of an individual",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "pairs", Usage: "Comma-separated parent:child pairs, e.g. 1:3,2:3,3:6"},
				cli.IntFlag{Name: "target", Usage: "The individual whose earliest ancestor is looked up"},
			},
			Action: func(ctx *cli.Context) error {
				return runAncestor(ctx, logger.WithField("command", "ancestor"))
			},
		},
	}

	return app
}

func runSocial(ctx *cli.Context, logger *logrus.Entry) error {
	cfg := social.Config{
		Logger: logger.WithField("component", "social-graph"),
	}
	if seed := ctx.Int64("seed"); seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(seed))
	}

	sg := social.NewGraph(cfg)
	if err := sg.PopulateGraph(ctx.Int("users"), ctx.Int("avg")); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"users":       len(sg.Users()),
		"friendships": sg.FriendshipCount(),
	}).Info("populated social graph")

	paths, err := sg.GetAllSocialPaths(ctx.Int("user"))
	if err != nil {
		return err
	}

	printFriendships(ctx.App.Writer, sg.Friendships())
	printPaths(ctx.App.Writer, ctx.Int("user"), paths)
	return nil
}

func runAncestor(ctx *cli.Context, logger *logrus.Entry) error {
	edges, err := ancestor.ParsePairs(ctx.String("pairs"))
	if err != nil {
		return err
	}

	resolver := ancestor.Resolver{Logger: logger.WithField("component", "ancestor-resolver")}
	id, err := resolver.Resolve(edges, ctx.Int("target"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, id)
	return err
}

func printFriendships(w io.Writer, table map[int][]int) {
	fmt.Fprintln(w, "Friendships:")
	for _, id := range sortedKeys(table) {
		fmt.Fprintf(w, "  %d: %v\n", id, table[id])
	}
}

func printPaths(w io.Writer, userID int, paths map[int]graph.Path[int]) {
	fmt.Fprintf(w, "Extended network of user %d:\n", userID)
	for _, id := range sortedKeys(paths) {
		fmt.Fprintf(w, "  %d: %v\n", id, paths[id])
	}
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
