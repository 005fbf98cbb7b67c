package assign

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/chat-word-frequency/internal/common"
	"github.com/dtnitsch/chat-word-frequency/pkg/categorize"
	"github.com/urfave/cli/v2"
)

// AssignAction recomputes chat categories from the keyword lists of the
// category dictionary and writes the updated corpus.
func AssignAction(c *cli.Context) error {
	env, err := common.NewEnv(c)
	if err != nil {
		return err
	}

	output := common.StringFlag(c, "output", env.Config.AssignOutput)
	return Assign(env, env.Config.Input, output)
}

// Assign reads the corpus at input, reassigns every chat and writes the result to output.
func Assign(env *common.Env, input, output string) error {
	corpus, err := env.LoadCorpus(input)
	if err != nil {
		return err
	}

	assigner := categorize.NewAssigner(corpus.Categories, env.Logger)
	assigned := assigner.Assign(corpus)
	env.Logger.Info("Categories reassigned", "chats", len(corpus.Chats), "categorized", assigned)

	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode corpus: %w", err)
	}
	if err := env.WriteReport(output, data); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Categories have been reassigned. Updated file written to: %s\n", output)
	return nil
}
