package bapps

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/milvus-io/pilot/common"
	"github.com/milvus-io/pilot/configs"
	"github.com/milvus-io/pilot/framework"
	"github.com/milvus-io/pilot/history"
)

// PromptApp wraps go-prompt as application.
type PromptApp struct {
	exited          bool
	currentState    framework.State
	sugguestHistory bool
	historyHelper   *history.Helper
	logger          *zap.Logger
	prompt          *prompt.Prompt
	config          *configs.Config
}

func NewPromptApp(config *configs.Config, opts ...AppOption) BApp {
	opt := newAppOption(opts)

	// use config path to open&store history log
	hh := opt.history
	if hh == nil {
		hh = history.NewHistoryHelper(config.ConfigPath,
			history.WithSize(config.GetHistorySize()),
			history.WithLogger(opt.logger))
	}
	pa := &PromptApp{
		historyHelper: hh,
		config:        config,
		logger:        opt.logger,
	}

	historyItems := hh.List("")
	sort.Slice(historyItems, func(i, j int) bool {
		return historyItems[i].Ts < historyItems[j].Ts
	})

	p := prompt.New(pa.promptExecute, pa.completeInput,
		prompt.OptionTitle("Pilot"),
		prompt.OptionHistory(lo.Map(historyItems, func(hi history.Item, _ int) string { return hi.Cmd })),
		prompt.OptionLivePrefix(pa.livePrefix),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			// setup exit command
			if strings.ToLower(in) == "exit" && breakline {
				return true
			}
			return false
		}),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlR,
			Fn: func(buffer *prompt.Buffer) {
				pa.sugguestHistory = !pa.sugguestHistory
			},
		}),
		// setup InputParser with `TearDown` overrided
		prompt.OptionParser(newRestoringParser()),
	)
	pa.prompt = p
	return pa
}

func (a *PromptApp) Run(start framework.State) {
	a.currentState = start
	// missing arguments are asked for interactively
	start.SetCompletionProvider(NewPromptCompleter())
	a.prompt.Run()
	a.historyHelper.Close()
}

// promptExecute actual execution logic entry.
func (a *PromptApp) promptExecute(in string) {
	in = strings.TrimSpace(in)

	var nextState framework.State
	var err error
	withPager(a.config.GetPager(), a.logger, func() {
		nextState, err = a.currentState.Process(in)
	})
	// back to normal mode
	a.historyHelper.AddLog(in)
	a.sugguestHistory = false

	if errors.Is(err, common.ExitErr) {
		fmt.Println("Bye!")
		a.exited = true
		return
	}
	if err != nil {
		a.logger.Info("command failed", zap.String("line", in), zap.Error(err))
		if !errors.Is(err, framework.ErrCommandFailed) {
			fmt.Println(err.Error())
		}
		return
	}

	nextState.SetupCommands()
	a.currentState = nextState

	if a.currentState.IsEnding() {
		fmt.Println("Bye!")
		a.exited = true
	}
}

// completeInput auto-complete logic entry.
func (a *PromptApp) completeInput(d prompt.Document) []prompt.Suggest {
	input := d.CurrentLineBeforeCursor()
	if a.sugguestHistory {
		return a.historySuggestions(input)
	}
	if input == "" {
		return nil
	}
	r := a.currentState.Suggestions(input)
	s := make([]prompt.Suggest, 0, len(r))
	for usage, short := range r {
		s = append(s, prompt.Suggest{
			Text:        usage,
			Description: short,
		})
	}
	sort.Slice(s, func(i, j int) bool {
		return s[i].Text < s[j].Text
	})
	return s
}

// historySuggestions returns suggestion from command history.
func (a *PromptApp) historySuggestions(input string) []prompt.Suggest {
	items := a.historyHelper.List(input)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Ts > items[j].Ts
	})

	lastIdx := strings.LastIndex(input, " ") + 1
	return lo.Map(items, func(item history.Item, _ int) prompt.Suggest {
		t := time.Unix(item.Ts, 0)
		return prompt.Suggest{
			Text:        item.Cmd[lastIdx:],
			Description: t.Format("2006-01-02 15:04:05"),
		}
	})
}

// livePrefix implements dynamic change prefix.
func (a *PromptApp) livePrefix() (string, bool) {
	if a.exited {
		return "", false
	}
	return fmt.Sprintf("%s > ", a.currentState.Label()), true
}
