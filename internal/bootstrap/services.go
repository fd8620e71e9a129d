package bootstrap

import (
	"github.com/osse101/DailyPoll_Go/internal/comment"
	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/leaderboard"
	"github.com/osse101/DailyPoll_Go/internal/profile"
	"github.com/osse101/DailyPoll_Go/internal/question"
	"github.com/osse101/DailyPoll_Go/internal/results"
	"github.com/osse101/DailyPoll_Go/internal/scoring"
	"github.com/osse101/DailyPoll_Go/internal/server"
	"github.com/osse101/DailyPoll_Go/internal/voting"
)

// InitializeServices wires every domain service over repos. Events published
// by the services go to publisher.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher event.Publisher) server.Services {
	return server.Services{
		Questions: question.NewService(repos.Questions, publisher, cfg.Location),
		Voting: voting.NewService(repos.Questions, repos.Votes, repos.Profiles, publisher, voting.Config{
			Location:        cfg.Location,
			RequireUsername: cfg.RequireUsername,
		}),
		Scoring:     scoring.NewService(repos.Questions, repos.Votes, publisher),
		Leaderboard: leaderboard.NewService(repos.Questions, repos.Votes, repos.Streaks, repos.Profiles, cfg.Location),
		Results:     results.NewService(repos.Questions, repos.Votes),
		Profiles:    profile.NewService(repos.Profiles),
		Comments:    comment.NewService(repos.Questions, repos.Comments),
	}
}

// ServerConfig extracts the HTTP settings from cfg
func ServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Location:       cfg.Location,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}
}
