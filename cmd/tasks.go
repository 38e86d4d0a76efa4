package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"pomoquest/internal/domain"
	"pomoquest/internal/store"
)

var (
	addTitle     string
	addDesc      string
	addCategory  string
	addPriority  string
	addEstimate  int
	listAll      bool
)

// addCmd creates a task. Without flags it opens an interactive form.
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := store.AddTaskRequest{
			Title:              addTitle,
			Description:        addDesc,
			Category:           domain.Category(addCategory),
			Priority:           domain.Priority(addPriority),
			PomodorosEstimated: addEstimate,
		}
		if len(args) == 1 {
			req.Title = args[0]
		}

		if req.Title == "" {
			if err := runAddForm(&req); err != nil {
				return err
			}
		}

		task, err := appStore.AddTask(req)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("✓ Added task: %s\n", task.Title)
		fmt.Printf("  ID: %s\n", task.ID)
		return nil
	},
}

// runAddForm collects the task fields interactively.
func runAddForm(req *store.AddTaskRequest) error {
	categoryOptions := make([]huh.Option[domain.Category], 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), c))
	}

	estimate := strconv.Itoa(1)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&req.Title),
			huh.NewInput().Title("Description").Value(&req.Description),
			huh.NewSelect[domain.Category]().Title("Category").Options(categoryOptions...).Value(&req.Category),
			huh.NewSelect[domain.Priority]().Title("Priority").Options(
				huh.NewOption("high", domain.PriorityHigh),
				huh.NewOption("medium", domain.PriorityMedium),
				huh.NewOption("low", domain.PriorityLow),
			).Value(&req.Priority),
			huh.NewInput().Title("Estimated pomodoros").Value(&estimate),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("task form cancelled: %w", err)
	}
	if n, err := strconv.Atoi(estimate); err == nil && n > 0 {
		req.PomodorosEstimated = n
	}
	return nil
}

// listCmd lists open tasks (or all with --all).
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := appStore.Tasks()
		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Add one with: pomoquest add \"My task\"")
			return nil
		}

		timer := appStore.Timer()
		shown := 0
		for _, t := range tasks {
			if t.Completed && !listAll {
				continue
			}
			shown++

			check := "[ ]"
			if t.Completed {
				check = "[x]"
			}
			current := " "
			if timer.CurrentTaskID != nil && *timer.CurrentTaskID == t.ID {
				current = "▶"
			}
			fmt.Printf("%s %s %s  (%s, %s, %d/%d 🍅)\n", current, check, t.Title,
				t.Category, t.Priority, t.PomodorosCompleted, t.PomodorosEstimated)
			fmt.Printf("      %s\n", t.ID)
		}

		if shown == 0 {
			fmt.Println("All tasks completed. 🎉  (use --all to see them)")
		}
		return nil
	},
}

// completeCmd toggles a task's completed flag.
var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Toggle a task's completed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := appStore.ToggleTaskComplete(args[0])
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}
		if task.Completed {
			fmt.Printf("✓ Completed: %s\n", task.Title)
		} else {
			fmt.Printf("↺ Reopened: %s\n", task.Title)
		}
		return nil
	},
}

// deleteCmd removes a task.
var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appStore.DeleteTask(args[0]); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		fmt.Println("✓ Task deleted")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Task title")
	addCmd.Flags().StringVar(&addDesc, "description", "", "Task description")
	addCmd.Flags().StringVar(&addCategory, "category", string(domain.DefaultCategory), "Task category (work|study|personal|fitness|creative)")
	addCmd.Flags().StringVar(&addPriority, "priority", string(domain.PriorityMedium), "Task priority (high|medium|low)")
	addCmd.Flags().IntVar(&addEstimate, "estimate", 1, "Estimated pomodoros")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include completed tasks")
}
