package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
	"github.com/khrees2412/talentdesk/pkg/models"
)

func addListFlags(cmd *cobra.Command, sortHelp string) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().String("sort", "id", "Sort column: "+sortHelp)
	cmd.Flags().Bool("desc", false, "Sort descending")
}

// loadList applies the --page/--sort/--desc flags to list.
func loadList[T models.Record](ctx context.Context, cmd *cobra.Command, list *view.ListView[T]) error {
	if err := list.Load(ctx); err != nil {
		return err
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 1 {
		if err := list.GoTo(ctx, page); err != nil {
			return err
		}
	}
	col, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	if current, _ := list.Sort(); current != col {
		list.SortBy(col)
	}
	if _, isDesc := list.Sort(); isDesc != desc {
		list.SortBy(col)
	}
	return nil
}

func printPager[T models.Record](list *view.ListView[T]) {
	fmt.Println(ui.Pager(list.Page(), list.Pages(), list.Total()))
}
