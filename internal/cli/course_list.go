package cli

import (
	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
)

// NewCourseListCmd creates the course list command
func NewCourseListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available courses",
		Long: `List the course catalog: the built-in courses plus DAO-approved
submissions from the replica.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListCourses.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewCoursesRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
