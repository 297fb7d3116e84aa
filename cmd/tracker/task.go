package tracker

import (
	"fmt"
	"sort"

	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage one-off to-do items",
}

var (
	taskCategory string
	taskNotes    string
	taskDue      string
)

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			tk, err := service.AddTask(st, service.AddTaskInput{
				Title:    args[0],
				Category: taskCategory,
				Notes:    taskNotes,
				DueDate:  taskDue,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %q in %s (%s)\n", tk.Title, tk.Category, shortID(tk.ID))
			return nil
		})
	},
}

var (
	taskListStatus   string
	taskListCategory string
	taskListSort     string
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			tasks, err := service.ListTasks(st, service.TaskFilter{
				Status:   taskListStatus,
				Category: taskListCategory,
				SortBy:   taskListSort,
			})
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching tasks.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tCATEGORY\tDUE\tSTATUS")
			for _, tk := range tasks {
				due := tk.DueDate
				if due == "" {
					due = "-"
				}
				status := "pending"
				if tk.Completed {
					status = "done"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					shortID(tk.ID), tk.Title, tk.Category, due, status)
			}
			return nil
		})
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task between done and pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			tk, err := service.ToggleTask(st, args[0])
			if err != nil {
				return err
			}
			if tk.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Done: %s\n", tk.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", tk.Title)
			}
			return nil
		})
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteTask(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted task")
			return nil
		})
	},
}

var taskCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage task categories",
}

var (
	categoryColor string
	categoryEmoji string
)

var taskCategoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a task category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.AddTaskCategory(st, args[0], categoryColor, categoryEmoji); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q\n", args[0])
			return nil
		})
	},
}

var taskCategoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List task categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			cats, err := service.ListTaskCategories(st)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(cats))
			for name := range cats {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				c := cats[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", c.Emoji, name, c.Color)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskDeleteCmd, taskCategoryCmd)
	taskCategoryCmd.AddCommand(taskCategoryAddCmd, taskCategoryListCmd)

	taskAddCmd.Flags().StringVar(&taskCategory, "category", "", "Task category (default Personal)")
	taskAddCmd.Flags().StringVar(&taskNotes, "notes", "", "Free-form notes")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date, YYYY-MM-DD")

	taskListCmd.Flags().StringVar(&taskListStatus, "status", "pending", "Filter: pending, completed, all")
	taskListCmd.Flags().StringVar(&taskListCategory, "category", "", "Filter by category")
	taskListCmd.Flags().StringVar(&taskListSort, "sort", "due", "Sort by: due, created")

	taskCategoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "Hex color, e.g. #10b981")
	taskCategoryAddCmd.Flags().StringVar(&categoryEmoji, "emoji", "", "Emoji label")
}
