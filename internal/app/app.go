package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsarev/lernio/internal/engine"
	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/profile"
	"github.com/tsarev/lernio/internal/store"
	"github.com/tsarev/lernio/internal/tutor"
)

// Options carries everything the chat loop needs. Provider may be the mock
// when no API key is configured; the dynamic engine then answers with the
// busy sentinel instead of failing.
type Options struct {
	Store     *store.Store
	Provider  llm.Provider
	Mode      engine.Mode
	LearnerID string
	EngineCfg engine.Config
	Profiles  profile.Source

	In  io.Reader
	Out io.Writer
}

// App is the line-oriented chat front end over the dispatcher.
type App struct {
	dispatcher *engine.Dispatcher
	learnerID  string
	in         io.Reader
	out        io.Writer
}

// New wires the engines behind a dispatcher.
func New(opts Options) *App {
	st := opts.Store
	cfg := opts.EngineCfg

	profiles := opts.Profiles
	if profiles == nil {
		profiles = profile.NewStaticSource(nil, profile.FromEnv())
	}

	static := engine.NewStaticEngine(st.CatalogRepo(), st.ProgressRepo())
	sessions := engine.NewSessionCache(cfg.SessionMaxEntries, cfg.SessionTTL)
	dynamic := engine.NewDynamicEngine(
		st.PlanRepo(), st.RecordRepo(), st.TurnRepo(),
		tutor.NewTutor(opts.Provider, tutor.DefaultConfig()),
		tutor.NewPlanner(opts.Provider, tutor.DefaultPlannerConfig()),
		tutor.NewSummarizer(opts.Provider, tutor.DefaultSummarizerConfig()),
		profiles,
		sessions,
		cfg,
	)
	guard := engine.NewGuard(cfg.RateLimit, cfg.RateWindow)

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &App{
		dispatcher: engine.NewDispatcher(opts.Mode, static, dynamic, guard),
		learnerID:  opts.LearnerID,
		in:         in,
		out:        out,
	}
}

// Run reads lines until EOF or an exit command. Each delivered reply is
// printed exactly once; silent replies print nothing.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, `Type "start <lesson or topic>" to begin, "next" to continue, "exit" to leave.`)

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "exit" || line == "quit":
			a.deliver(a.dispatcher.Exit(ctx, a.learnerID))
			return nil

		case line == "next":
			a.deliver(a.dispatcher.Advance(ctx, a.learnerID))

		case strings.HasPrefix(line, "start "):
			target := strings.TrimSpace(strings.TrimPrefix(line, "start "))
			a.deliver(a.dispatcher.Start(ctx, a.learnerID, target))

		default:
			a.deliver(a.dispatcher.Answer(ctx, a.learnerID, line))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// deliver prints the reply once. Validation errors already carry their
// correction prompt in the reply; anything else goes to stderr and the
// conversation continues.
func (a *App) deliver(reply engine.Reply, err error) {
	var vErr *engine.ValidationError
	if err != nil && !errors.As(err, &vErr) {
		fmt.Fprintln(os.Stderr, "lernio:", err)
		return
	}
	if reply.Silent || reply.Text == "" {
		return
	}
	fmt.Fprintln(a.out, reply.Text)
	fmt.Fprintln(a.out)
}
