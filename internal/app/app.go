package app

import (
	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ListProposals   *usecase.ListProposals
	CreateProposal  *usecase.CreateProposal
	Vote            *usecase.Vote
	ExecuteProposal *usecase.ExecuteProposal
	ListCourses     *usecase.ListCourses
	PurchaseCourse  *usecase.PurchaseCourse
	SubmitCourse    *usecase.SubmitCourse
	Dashboard       *usecase.Dashboard
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	listProposals *usecase.ListProposals,
	createProposal *usecase.CreateProposal,
	vote *usecase.Vote,
	executeProposal *usecase.ExecuteProposal,
	listCourses *usecase.ListCourses,
	purchaseCourse *usecase.PurchaseCourse,
	submitCourse *usecase.SubmitCourse,
	dashboard *usecase.Dashboard,
) (*App, error) {
	return &App{
		Config:          cfg,
		ListProposals:   listProposals,
		CreateProposal:  createProposal,
		Vote:            vote,
		ExecuteProposal: executeProposal,
		ListCourses:     listCourses,
		PurchaseCourse:  purchaseCourse,
		SubmitCourse:    submitCourse,
		Dashboard:       dashboard,
	}, nil
}
