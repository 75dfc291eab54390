package cli

import (
	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// NewCourseSubmitCmd creates the course submit command
func NewCourseSubmitCmd() *cobra.Command {
	var (
		description string
		instructor  string
		price       string
	)

	cmd := &cobra.Command{
		Use:   "submit <title>",
		Short: "Submit a course for DAO approval",
		Long: `Submit a new course to the marketplace. Submissions start as pending
and only appear in the catalog once approved through governance.`,
		Example: `  # Submit a course priced at the default fee
  sdao course submit "Intro to Rollups" --instructor "Dana Kim"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.SubmitCourseParams{
				Title:       args[0],
				Description: description,
				Instructor:  instructor,
				PriceETH:    price,
			}

			course, err := app.SubmitCourse.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewCoursesRenderer(cmd.OutOrStdout())
			return renderer.RenderSubmission(course)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Course description")
	cmd.Flags().StringVarP(&instructor, "instructor", "i", "", "Instructor name")
	cmd.Flags().StringVar(&price, "price", "", "Price in ETH (defaults to 0.00005)")

	return cmd
}
