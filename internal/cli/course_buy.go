package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// NewCourseBuyCmd creates the course buy command
func NewCourseBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <course>",
		Short: "Purchase a course",
		Long: `Purchase a course by paying its listed ETH price from the connected
wallet. The course is matched by fuzzy title search over the catalog.`,
		Example: `  # Buy by partial title
  sdao course buy "web3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !app.Config.NonInteractive {
				if !confirmPrompt(fmt.Sprintf("Buy course matching %q and pay its listed price", args[0])) {
					return fmt.Errorf("aborted")
				}
			}

			params := usecase.PurchaseCourseParams{CourseRef: args[0]}

			result, err := app.PurchaseCourse.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewCoursesRenderer(cmd.OutOrStdout())
			return renderer.RenderPurchase(result)
		},
	}

	return cmd
}
