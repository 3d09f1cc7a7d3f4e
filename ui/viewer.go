package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"minitest/report"
)

// FailureViewer displays the cases needing attention in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens a two-pane browser over the recorded failure details: the case
// list on the left, the selected diagnostic on the right.
func (fv *FailureViewer) View(results *report.Results) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failures recorded!")
		return nil
	}

	app := tview.NewApplication()

	// List of cases needing attention (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, failure := range results.Details {
		list.AddItem(listItemText(i, failure), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header view (shows case location)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Diagnostic details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on the left (1/3), details on the right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	failed, invalid := 0, 0
	for _, failure := range results.Details {
		if failure.Result == "fail" {
			failed++
		} else {
			invalid++
		}
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" %s: %d failed, %d invalid | Use ↑↓ to navigate, → to view details, ← to go back, q or Ctrl+C to exit ",
		results.Meta.Project, failed, invalid,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			failure := results.Details[index]
			statsView.SetText(formatFailureStats(failure, index+1))
			detailsView.SetText(formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// listItemText renders one list entry; failed cases carry a red cross,
// never-evaluated ones a gray question mark.
func listItemText(index int, failure report.FailureDetail) string {
	mark := "[gray]?[white]"
	if failure.Result == "fail" {
		mark = "[red]✗[white]"
	}
	return fmt.Sprintf("%s [yellow]%d.[white] %s", mark, index+1, failure.Name)
}

// formatFailureStats formats the stats header line for a failure detail
func formatFailureStats(failure report.FailureDetail, number int) string {
	name := failure.Name
	if name == "" {
		name = fmt.Sprintf("Case %d", number)
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s:%d[white]::[yellow]%s[white]\n", failure.File, failure.Line, name)
}

// formatFailureDetails formats one failure for the details pane using tview
// color tags ([red], [cyan], ...). The free-form message is escaped so
// bracketed text in diagnostics does not leak into the tag parser.
func formatFailureDetails(failure report.FailureDetail) string {
	var builder strings.Builder

	if failure.Result == "fail" {
		fmt.Fprintf(&builder, "[red]✗ Case: %s[white]\n\n", failure.Name)
	} else {
		fmt.Fprintf(&builder, "[gray]? Case: %s[white]\n\n", failure.Name)
	}
	fmt.Fprintf(&builder, "[cyan]Location: %s:%d[white]\n\n", failure.File, failure.Line)
	fmt.Fprintf(&builder, "[yellow]Result:[white] %s\n\n", failure.Result)
	if failure.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	}

	return builder.String()
}
