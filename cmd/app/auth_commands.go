package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/drinks/cmd/app/commands"
	"github.com/allisson/drinks/internal/app"
	"github.com/allisson/drinks/internal/config"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "verify-token",
			Usage: "Verify a bearer token against the configured identity provider",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Encoded JWT, with or without the 'Bearer ' prefix",
				},
				&cli.StringFlag{
					Name:    "permission",
					Aliases: []string{"p"},
					Usage:   "Permission the token must grant (e.g. post:drinks)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				verifier, err := container.TokenVerifier()
				if err != nil {
					return err
				}

				return commands.RunVerifyToken(
					ctx,
					verifier,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("permission"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "routes",
			Usage: "List API routes and the permission each one requires",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				routePolicy, err := container.RoutePolicy()
				if err != nil {
					return err
				}

				return commands.RunListRoutes(routePolicy, commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
