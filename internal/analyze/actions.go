package analyze

import (
	"fmt"
	"strconv"

	"github.com/dtnitsch/chat-word-frequency/internal/common"
	"github.com/dtnitsch/chat-word-frequency/internal/global"
	"github.com/dtnitsch/chat-word-frequency/internal/percategory"
	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
	"github.com/dtnitsch/chat-word-frequency/pkg/report"
	"github.com/urfave/cli/v2"
)

// RunAction runs the global analysis and then the per-category report.
// The shared words go to the second stage directly instead of being read back
// from the global report file.
func RunAction(c *cli.Context) error {
	env, err := common.NewEnv(c)
	if err != nil {
		return err
	}

	globalOutput := common.StringFlag(c, "global-output", env.Config.GlobalOutput)
	output := common.StringFlag(c, "output", env.Config.PerCategoryOutput)

	tops, err := Run(env, env.Config.Input, globalOutput, output)
	if err != nil {
		return global.ExitOnEmpty(err)
	}

	if c.Bool("summary") {
		fmt.Fprintln(env.Out, Summary(tops))
	}
	return nil
}

// Run executes both stages against the same corpus file.
func Run(env *common.Env, input, globalOutput, output string) ([]frequency.CategoryTop, error) {
	result, err := global.Analyze(env, input, globalOutput)
	if err != nil {
		return nil, err
	}
	return percategory.Report(env, input, output, report.StopWordsFromEntries(result.Shared))
}

// Summary renders one table row per category.
func Summary(tops []frequency.CategoryTop) string {
	headers := []string{"Category", "Chats", "Distinct Words", "Excluded", "Reported"}
	aligns := []common.ColumnAlignment{common.AlignLeft, common.AlignRight, common.AlignRight, common.AlignRight, common.AlignRight}

	rows := make([][]string, 0, len(tops))
	for _, top := range tops {
		rows = append(rows, []string{
			top.Category,
			strconv.Itoa(top.Chats),
			strconv.Itoa(top.Distinct),
			strconv.Itoa(top.Excluded),
			strconv.Itoa(len(top.Words)),
		})
	}
	return common.RenderTable(headers, rows, aligns)
}
