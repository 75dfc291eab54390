//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/skillshare-dao/sdao-cli/internal/adapters"
	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/logging"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.NewLogger,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListProposals,
		usecase.NewVoteGuard,
		usecase.NewProposalResolver,
		usecase.NewCreateProposal,
		usecase.NewVote,
		usecase.NewExecuteProposal,
		usecase.NewListCourses,
		usecase.NewPurchaseCourse,
		usecase.NewSubmitCourse,
		usecase.NewDashboard,

		// App
		NewApp,
	)
	return nil, nil
}
