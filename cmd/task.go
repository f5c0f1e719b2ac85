package cmd

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/cli"
	"daybook/internal/model"
	"daybook/internal/schedule"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagTaskTitle    string
	flagTaskDesc     string
	flagTaskDate     string
	flagTaskTime     string
	flagTaskPriority string
	flagTaskStep     string
	flagTaskAll      bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task (interactive without --title)",
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task between active and done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

func init() {
	taskAddCmd.Flags().StringVarP(&flagTaskTitle, "title", "t", "", "Task title")
	taskAddCmd.Flags().StringVar(&flagTaskDesc, "desc", "", "Task description")
	taskAddCmd.Flags().StringVar(&flagTaskDate, "date", "", "Scheduled date (YYYY-MM-DD, empty = backlog)")
	taskAddCmd.Flags().StringVar(&flagTaskTime, "time", "", "Scheduled time (HH:MM)")
	taskAddCmd.Flags().StringVarP(&flagTaskPriority, "priority", "p", string(model.PriorityNotImportant), "Priority")
	taskAddCmd.Flags().StringVar(&flagTaskStep, "step", "", "Planning step id to link")
	taskListCmd.Flags().BoolVarP(&flagTaskAll, "all", "a", false, "Include done and cancelled tasks")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	a := model.Action{
		ID:          model.NewID("act"),
		Title:       strings.TrimSpace(flagTaskTitle),
		Description: flagTaskDesc,
		Date:        flagTaskDate,
		Time:        flagTaskTime,
		Priority:    model.Priority(flagTaskPriority),
		StepID:      flagTaskStep,
		Status:      model.StatusActive,
	}

	if a.Title == "" {
		snap, err := st.Load()
		if err != nil {
			return err
		}
		if err := taskForm(&a, snap.Doc.Steps); err != nil {
			return err
		}
	}

	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !a.Priority.Valid() {
		return fmt.Errorf("unknown priority %q", a.Priority)
	}
	if a.Date != "" {
		if _, err := schedule.ParseDateKey(a.Date); err != nil {
			return err
		}
	}

	err = st.Update("task.add", func(doc model.Document) (model.Document, error) {
		doc.Actions = schedule.UpsertAction(a, doc.Actions, time.Now())
		return doc, nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added %s (%s)\n", a.Title, cli.ShortID(a.ID))
	return nil
}

func taskForm(a *model.Action, steps []model.Step) error {
	priorityOpts := []huh.Option[model.Priority]{
		huh.NewOption("Can wait", model.PriorityCanWait),
		huh.NewOption("Normal", model.PriorityNotImportant),
		huh.NewOption("Important", model.PriorityImportant),
		huh.NewOption("Critical", model.PriorityCritical),
		huh.NewOption("Urgent", model.PriorityUrgent),
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What needs doing?").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			}).
			Value(&a.Title),
		huh.NewInput().
			Title("Description").
			Value(&a.Description),
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD, empty for backlog").
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				_, err := schedule.ParseDateKey(s)
				return err
			}).
			Value(&a.Date),
		huh.NewInput().
			Title("Time").
			Placeholder("HH:MM, optional").
			Value(&a.Time),
		huh.NewSelect[model.Priority]().
			Title("Priority").
			Options(priorityOpts...).
			Value(&a.Priority),
	}

	if len(steps) > 0 {
		stepOpts := []huh.Option[string]{huh.NewOption("No step", "")}
		for _, s := range steps {
			stepOpts = append(stepOpts, huh.NewOption(s.Title, s.ID))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Planning step").
			Options(stepOpts...).
			Value(&a.StepID))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func runTaskList(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Load()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, a := range snap.Doc.Actions {
		if !flagTaskAll && a.Status != model.StatusActive {
			continue
		}
		date := a.Date
		if date == "" {
			date = cli.MutedText.Render("backlog")
		}
		title := cli.Truncate(a.Title, 40)
		if a.Status == model.StatusDone {
			title = cli.DoneStyle.Render(title)
		}
		rows = append(rows, []string{date, a.Time, title, a.Priority.Label(), string(a.Status), cli.ShortID(a.ID)})
	}

	if len(rows) == 0 {
		fmt.Println("  No tasks.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Time", "Task", "Priority", "Status", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runTaskDone(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var toggled model.Action
	err = st.Update("task.toggle", func(doc model.Document) (model.Document, error) {
		a, err := findAction(doc.Actions, args[0])
		if err != nil {
			return doc, err
		}
		if a.Status == model.StatusCancelled {
			return doc, fmt.Errorf("task %q is cancelled and cannot be toggled", a.Title)
		}
		toggled = schedule.ToggleStatus(a, time.Now())
		doc.Actions = schedule.UpsertAction(toggled, doc.Actions, time.Now())
		return doc, nil
	})
	if err != nil {
		return err
	}

	if toggled.Status == model.StatusDone {
		fmt.Printf("  Done: %s\n", toggled.Title)
	} else {
		fmt.Printf("  Reopened: %s\n", toggled.Title)
	}
	return nil
}

func runTaskRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Update("task.delete", func(doc model.Document) (model.Document, error) {
		a, err := findAction(doc.Actions, args[0])
		if err != nil {
			return doc, err
		}
		doc.Actions = schedule.DeleteAction(a.ID, doc.Actions)
		fmt.Printf("  Deleted %s\n", a.Title)
		return doc, nil
	})
}

// findAction resolves a full id, a short id, or a unique prefix.
func findAction(actions []model.Action, ref string) (model.Action, error) {
	var matches []model.Action
	for _, a := range actions {
		if a.ID == ref {
			return a, nil
		}
		if strings.HasPrefix(cli.ShortID(a.ID), ref) || strings.HasPrefix(a.ID, ref) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Action{}, fmt.Errorf("no task matches %q", ref)
	default:
		return model.Action{}, fmt.Errorf("%d tasks match %q, be more specific", len(matches), ref)
	}
}
