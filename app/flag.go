package app

import "github.com/urfave/cli/v2"

var (
	storeFlag = &cli.StringFlag{
		Name:    "store",
		Usage:   "Override the data store backend: bolt, sqlite, redis or memory",
		EnvVars: []string{"STINT_STORE"},
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip confirmation prompts",
	}

	twentyFourHourFlag = &cli.BoolFlag{
		Name:  "24hr",
		Usage: "Use the 24 hour clock when printing dates",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Select every item",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started after this date (e.g. '2 days ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions started before this date (e.g. 'yesterday')",
	}

	projectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Only include sessions assigned to this project id",
	}
)
