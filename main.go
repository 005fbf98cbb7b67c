package main

import (
	"log"
	"os"

	"github.com/dtnitsch/chat-word-frequency/internal/analyze"
	"github.com/dtnitsch/chat-word-frequency/internal/assign"
	"github.com/dtnitsch/chat-word-frequency/internal/global"
	"github.com/dtnitsch/chat-word-frequency/internal/percategory"
	"github.com/dtnitsch/chat-word-frequency/models"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("chatfreq: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "chatfreq",
		Usage: "word frequency reports over a categorized chat corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config `FILE`",
				Value: models.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug details",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "global",
				Usage:  "write the words shared by many categories",
				Action: global.GlobalAction,
				Flags: []cli.Flag{
					inputFlag(),
					thresholdFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "global report `FILE`",
						Value:   models.DefaultGlobalOutput,
					},
				},
			},
			{
				Name:   "per-category",
				Usage:  "write the top words of every category, excluding shared words",
				Action: percategory.PerCategoryAction,
				Flags: []cli.Flag{
					inputFlag(),
					topFlag(),
					&cli.StringFlag{
						Name:  "global-file",
						Usage: "global report `FILE` holding the words to exclude",
						Value: models.DefaultGlobalOutput,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "per-category report `FILE`",
						Value:   models.DefaultPerCategoryOutput,
					},
				},
			},
			{
				Name:   "run",
				Usage:  "run the global analysis, then the per-category report",
				Action: analyze.RunAction,
				Flags: []cli.Flag{
					inputFlag(),
					thresholdFlag(),
					topFlag(),
					&cli.StringFlag{
						Name:  "global-output",
						Usage: "global report `FILE`",
						Value: models.DefaultGlobalOutput,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "per-category report `FILE`",
						Value:   models.DefaultPerCategoryOutput,
					},
					&cli.BoolFlag{
						Name:  "summary",
						Usage: "print a per-category summary table",
					},
				},
			},
			{
				Name:   "assign",
				Usage:  "reassign chat categories from the category keyword lists",
				Action: assign.AssignAction,
				Flags: []cli.Flag{
					inputFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "updated corpus `FILE`",
						Value:   models.DefaultAssignOutput,
					},
				},
			},
		},
	}
}

// Flag values are per command, so every command gets its own flag instance.
func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "chat corpus `FILE`",
		Value:   models.DefaultInput,
	}
}

func thresholdFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "threshold",
		Usage: "minimum number of categories a word must appear in to be shared",
		Value: models.DefaultThreshold,
	}
}

func topFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "top",
		Usage: "number of words listed per category",
		Value: models.DefaultTopN,
	}
}
