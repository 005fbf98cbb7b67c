package percategory

import (
	"fmt"

	"github.com/dtnitsch/chat-word-frequency/internal/common"
	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
	"github.com/dtnitsch/chat-word-frequency/pkg/report"
	"github.com/urfave/cli/v2"
)

// PerCategoryAction writes the top words of every category, leaving out
// the words listed in the global report.
func PerCategoryAction(c *cli.Context) error {
	env, err := common.NewEnv(c)
	if err != nil {
		return err
	}

	globalFile := common.StringFlag(c, "global-file", env.Config.GlobalOutput)
	output := common.StringFlag(c, "output", env.Config.PerCategoryOutput)

	stop, err := LoadStopWords(env, globalFile)
	if err != nil {
		return err
	}
	_, err = Report(env, env.Config.Input, output, stop)
	return err
}

// LoadStopWords reads the global report. A missing file yields an empty set.
func LoadStopWords(env *common.Env, path string) (report.StopWordSet, error) {
	stop, found, err := report.LoadStopWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load global file %s: %w", path, err)
	}
	if !found {
		env.Logger.Warn("Global file missing", "path", path)
		fmt.Fprintf(env.Out, "Global file %s not found. Proceeding without global exclusion.\n", path)
		return stop, nil
	}
	env.Logger.Info("Stop words loaded", "path", path, "count", stop.Len())
	return stop, nil
}

// Report counts words per category, drops stop words and writes the top
// words of every category to output.
func Report(env *common.Env, input, output string, stop report.StopWordSet) ([]frequency.CategoryTop, error) {
	corpus, err := env.LoadCorpus(input)
	if err != nil {
		return nil, err
	}

	counts := frequency.CountByCategory(corpus, env.Analytics)
	tops := frequency.TopByCategory(counts, stop, env.Config.TopN)
	for _, top := range tops {
		env.Logger.Debug("Category ranked",
			"category", top.Category,
			"chats", top.Chats,
			"distinct_words", top.Distinct,
			"excluded", top.Excluded,
			"reported", len(top.Words))
	}

	if err := env.WriteReport(output, report.PerCategoryReport(tops)); err != nil {
		return nil, err
	}

	fmt.Fprintf(env.Out, "Per-category word frequency analysis (excluding global common words) complete. Results written to %s\n", output)
	return tops, nil
}
