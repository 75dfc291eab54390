package usecase

import "github.com/skillshare-dao/sdao-cli/internal/domain/models"

// BuiltinCourses is the curated catalog shipped with the client. DAO-approved
// submissions from the replica are merged in after these.
func BuiltinCourses() []*models.Course {
	return []*models.Course{
		{
			Title:       "Web3 Development Fundamentals",
			Instructor:  "Alex Thompson",
			Description: "Master blockchain development fundamentals, smart contracts, and Web3 technologies. Build real-world dApps and understand the core concepts of decentralized applications.",
			PriceETH:    "0.00005",
			Status:      models.CourseStatusApproved,
		},
		{
			Title:       "Smart Contract Security",
			Instructor:  "Maria Chen",
			Description: "Learn to audit Solidity contracts: common vulnerability classes, testing strategies, and the tooling professional auditors rely on.",
			PriceETH:    "0.00008",
			Status:      models.CourseStatusApproved,
		},
		{
			Title:       "DeFi Protocol Design",
			Instructor:  "James Okafor",
			Description: "From AMMs to lending markets: the economic and engineering trade-offs behind the protocols securing billions in value.",
			PriceETH:    "0.0001",
			Status:      models.CourseStatusApproved,
		},
	}
}
