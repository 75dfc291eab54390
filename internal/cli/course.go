package cli

import (
	"github.com/spf13/cobra"
)

// NewCourseCmd creates the course command group
func NewCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Aliases: []string{"courses", "c"},
		Short:   "Browse, buy and submit courses",
		Long:    "Commands for the SkillShare course marketplace",
	}

	cmd.AddCommand(NewCourseListCmd())
	cmd.AddCommand(NewCourseBuyCmd())
	cmd.AddCommand(NewCourseSubmitCmd())

	return cmd
}
