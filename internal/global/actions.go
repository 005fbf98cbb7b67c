package global

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/chat-word-frequency/internal/common"
	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
	"github.com/dtnitsch/chat-word-frequency/pkg/report"
	"github.com/urfave/cli/v2"
)

// NoChatsMessage is printed when the corpus has no categorized chats.
const NoChatsMessage = "No categories with assigned chats found. Exiting."

// GlobalAction writes the report of words shared across categories.
func GlobalAction(c *cli.Context) error {
	env, err := common.NewEnv(c)
	if err != nil {
		return err
	}

	output := common.StringFlag(c, "output", env.Config.GlobalOutput)
	if _, err := Analyze(env, env.Config.Input, output); err != nil {
		return ExitOnEmpty(err)
	}
	return nil
}

// ExitOnEmpty turns ErrNoCategorizedChats into exit status 1.
func ExitOnEmpty(err error) error {
	if errors.Is(err, frequency.ErrNoCategorizedChats) {
		return cli.Exit(NoChatsMessage, 1)
	}
	return err
}

// Analyze reads the corpus at input and writes the shared-word report to output.
func Analyze(env *common.Env, input, output string) (*frequency.GlobalResult, error) {
	corpus, err := env.LoadCorpus(input)
	if err != nil {
		return nil, err
	}

	result, err := frequency.Analyze(corpus, env.Analytics, env.Config.Threshold)
	if err != nil {
		env.Logger.Error("Nothing to analyze", "input", input, "error", err)
		return nil, err
	}
	env.Logger.Info("Shared words computed",
		"categories", len(result.Counts),
		"distinct_words", result.Index.Len(),
		"shared_words", len(result.Shared),
		"threshold", result.Threshold)

	if err := env.WriteReport(output, report.GlobalReport(result.Threshold, result.Shared)); err != nil {
		return nil, err
	}

	fmt.Fprintf(env.Out, "Common words analysis complete. Results written to %s\n", output)
	return result, nil
}
