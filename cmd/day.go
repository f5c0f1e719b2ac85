package cmd

import (
	"fmt"
	"time"

	"daybook/internal/cli"
	"daybook/internal/model"
	"daybook/internal/schedule"

	"github.com/spf13/cobra"
)

var (
	flagDayDate   string
	flagDayOffset int
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the day's schedule",
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&flagDayDate, "date", "", "Day to show (YYYY-MM-DD, default today)")
	dayCmd.Flags().IntVarP(&flagDayOffset, "offset", "o", 0, "Days relative to today, e.g. -1 for yesterday")
	rootCmd.AddCommand(dayCmd)
}

func runDay(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now()
	day := now.AddDate(0, 0, flagDayOffset)
	if flagDayDate != "" {
		day, err = schedule.ParseDateKey(flagDayDate)
		if err != nil {
			return err
		}
	}
	dateKey := schedule.DateKey(day)

	snap, err := st.Load()
	if err != nil {
		return err
	}

	p := schedule.PartitionForDate(snap.Doc.Actions, dateKey)
	stats := p.Stats()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  ·  %s", schedule.DisplayLabel(day, now), dateKey)))
	fmt.Println()

	if total := stats.Done + stats.Remaining; total > 0 {
		fmt.Printf("  %s\n\n", cli.RenderProgress(stats.Done, total, 30))
	}

	if len(p.Timed) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Scheduled",
			Headers: []string{"", "Time", "Task", "Priority", "ID"},
			Rows:    actionRows(p.Timed, snap.Doc, true),
		}))
		fmt.Println()
	}

	if len(p.Untimed) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Tasks for the day",
			Headers: []string{"", "Task", "Priority", "ID"},
			Rows:    actionRows(p.Untimed, snap.Doc, false),
		}))
		fmt.Println()
	}

	if len(p.Timed) == 0 && len(p.Untimed) == 0 {
		fmt.Println("  No tasks for this day. Add one with `daybook task add`.")
		fmt.Println()
	}

	if len(p.Undated) > 0 {
		fmt.Println(cli.WarnStyle.Render(fmt.Sprintf("  Backlog (%d undated)", len(p.Undated))))
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"", "Task", "Priority", "ID"},
			Rows:    actionRows(p.Undated, snap.Doc, false),
		}))
	}

	return nil
}

func actionRows(actions []model.Action, doc model.Document, withTime bool) [][]string {
	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		mark := " "
		title := a.Title
		switch a.Status {
		case model.StatusDone:
			mark = "✓"
			title = cli.DoneStyle.Render(title)
		default:
			title = cli.Truncate(title, 40)
		}
		if done, total := a.SubtaskProgress(); total > 0 {
			title += cli.MutedText.Render(fmt.Sprintf(" [%d/%d]", done, total))
		}
		if step, ok := doc.FindStep(a.StepID); ok {
			title += cli.MutedText.Render(" ⚑ " + step.Title)
		}

		row := []string{mark}
		if withTime {
			row = append(row, a.Time)
		}
		row = append(row, title, a.Priority.Label(), cli.ShortID(a.ID))
		rows = append(rows, row)
	}
	return rows
}
