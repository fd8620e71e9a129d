// Command score runs the daily scoring trigger once and reports the outcome
// through its exit status, for use by an external scheduler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/osse101/DailyPoll_Go/internal/bootstrap"
	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/scoring"
)

// Exit statuses
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitNothingToDo   = 2
	ExitAlreadyScored = 3
	ExitPartial       = 4
)

const runTimeout = 5 * time.Minute

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	dateFlag := fs.String("date", "", "question date to score (YYYY-MM-DD), defaults to yesterday in the poll time zone")
	if err := fs.Parse(args); err != nil {
		return ExitFailure
	}

	cfg, err := config.LoadForJob()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return ExitFailure
	}
	bootstrap.SetupStdoutLogger(cfg)

	date, err := targetDate(*dateFlag, time.Now(), cfg.Location)
	if err != nil {
		slog.Error("Invalid -date flag", "error", err)
		return ExitFailure
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		return ExitFailure
	}
	defer repos.Close()

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		return ExitFailure
	}
	defer events.Close(ctx)

	svc := scoring.NewService(repos.Questions, repos.Votes, events.Bus)
	res, err := svc.Score(ctx, date)
	code := ExitCode(err)

	log := slog.With("date", date, "exit_code", code)
	switch code {
	case ExitOK:
		log.Info("Scoring completed", "question_id", res.QuestionID, "winner", res.Winner)
		fmt.Fprintf(out, "%s winner=%s a=%d b=%d\n", date, res.Winner, res.Tally.A, res.Tally.B)
	case ExitAlreadyScored:
		log.Info("Question already scored, nothing to do")
	case ExitNothingToDo:
		log.Warn("Nothing to score", "reason", err)
	default:
		log.Error("Scoring failed", "error", err)
	}
	return code
}

// targetDate parses flagValue, falling back to the scoring target for now
func targetDate(flagValue string, now time.Time, loc *time.Location) (domain.Date, error) {
	if flagValue == "" {
		return scoring.ScoringTarget(now, loc), nil
	}
	return domain.ParseDate(flagValue)
}

// ExitCode maps a scoring error to the process exit status. A partial
// grading failure wins over an already-scored flag wrapped with it.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrPartialGrading):
		return ExitPartial
	case errors.Is(err, domain.ErrAlreadyScored):
		return ExitAlreadyScored
	case errors.Is(err, domain.ErrQuestionNotFound), errors.Is(err, domain.ErrNoVotesRecorded):
		return ExitNothingToDo
	default:
		return ExitFailure
	}
}
