package tui

import (
	"fmt"
	"strings"
	"time"

	"phosweep/internal/app"
	"phosweep/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseReview
	PhaseConfirm
	PhaseDeleting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ScanProgressMsg struct {
		Current int
		Total   int
		Message string
	}
	ScanDoneMsg struct {
		Result domain.ScanResult
	}
	DeleteProgressMsg struct {
		Current int
		Total   int
		Message string
	}
	DeleteDoneMsg struct {
		Report domain.DeletionReport
	}
	ConfirmMsg struct{ Confirmed bool }
	ErrorMsg   struct {
		Err error
	}
	tickMsg time.Time
)

// ExecuteDeleteFunc starts the deletion batch. It should run the
// executor in the background and deliver progress/done messages.
type ExecuteDeleteFunc func(items []domain.MediaItem, simulate bool) tea.Cmd

// Config for the TUI
type Config struct {
	Mount         string
	Cutoff        domain.Cutoff
	DryRun        bool
	Verbose       bool
	ExecuteDelete ExecuteDeleteFunc
}

// Model is the main TUI model
type Model struct {
	config        Config
	Phase         Phase
	Result        domain.ScanResult
	Report        domain.DeletionReport
	spinner       spinner.Model
	progress      progress.Model
	scanCurrent   int
	scanTotal     int
	scanMessage   string
	deleteCurrent int
	deleteTotal   int
	deleteMessage string
	selected      map[string]bool
	cursor        int
	confirmDelete bool // true = yes, false = no
	Err           error
	Quitting      bool
	width         int
	height        int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:        cfg,
		Phase:         PhaseScanning,
		spinner:       s,
		progress:      p,
		selected:      make(map[string]bool),
		confirmDelete: false, // default to No
		width:         80,
		height:        24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

// SelectedItems returns the current selection in discovery order.
func (m Model) SelectedItems() []domain.MediaItem {
	return app.ApplySelection(m.Result, m.selected)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clamp(msg.Width-20, 10, 60)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case ScanProgressMsg:
		m.scanCurrent = msg.Current
		m.scanTotal = msg.Total
		m.scanMessage = msg.Message
		return m, nil

	case ScanDoneMsg:
		m.Result = msg.Result
		for _, item := range m.Result.Items {
			m.selected[item.Path] = true
		}
		m.Phase = PhaseReview
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed {
			// Back to the grid so the selection can be adjusted.
			m.Phase = PhaseReview
			m.confirmDelete = false
			return m, nil
		}
		m.Phase = PhaseDeleting
		if m.config.ExecuteDelete != nil {
			return m, tea.Batch(tickCmd(), m.config.ExecuteDelete(m.SelectedItems(), m.config.DryRun))
		}
		return m, nil

	case DeleteProgressMsg:
		m.deleteCurrent = msg.Current
		m.deleteTotal = msg.Total
		m.deleteMessage = msg.Message
		return m, nil

	case DeleteDoneMsg:
		m.Report = msg.Report
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseDeleting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseDeleting {
			var cmds []tea.Cmd
			if m.deleteTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.deleteCurrent)/float64(m.deleteTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Phase == PhaseReview && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.Phase == PhaseReview && m.cursor < len(m.Result.Items)-1 {
			m.cursor++
		}
	case " ":
		if m.Phase == PhaseReview && len(m.Result.Items) > 0 {
			path := m.Result.Items[m.cursor].Path
			m.selected[path] = !m.selected[path]
		}
	case "a":
		if m.Phase == PhaseReview {
			for _, item := range m.Result.Items {
				m.selected[item.Path] = true
			}
		}
	case "n", "N":
		if m.Phase == PhaseReview {
			for _, item := range m.Result.Items {
				m.selected[item.Path] = false
			}
		}
		if m.Phase == PhaseConfirm {
			m.confirmDelete = false
		}
	case "left", "h":
		if m.Phase == PhaseConfirm {
			m.confirmDelete = true
		}
	case "right", "l":
		if m.Phase == PhaseConfirm {
			m.confirmDelete = false
		}
	case "y", "Y":
		if m.Phase == PhaseConfirm {
			m.confirmDelete = true
		}
	case "enter":
		switch m.Phase {
		case PhaseReview:
			if len(m.SelectedItems()) == 0 {
				m.Quitting = true
				return m, tea.Quit
			}
			m.Phase = PhaseConfirm
			return m, nil
		case PhaseConfirm:
			return m, func() tea.Msg {
				return ConfirmMsg{Confirmed: m.confirmDelete}
			}
		case PhaseDone, PhaseError:
			return m, tea.Quit
		}
	}
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderScanning())
	case PhaseReview:
		b.WriteString(m.renderReview())
	case PhaseConfirm:
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
		b.WriteString(m.renderConfirmPrompt())
	case PhaseDeleting:
		b.WriteString(m.renderDeletion())
	case PhaseDone:
		b.WriteString(m.renderReport())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🗑  phosweep")
	subtitle := subtitleStyle.Render("Clean up old device media")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	mode := ""
	if m.config.DryRun {
		mode = "  (dry run)"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Device: %s", iconDevice, shortenPath(m.config.Mount))),
		dimStyle.Render(fmt.Sprintf("%s Older than: %s%s", iconCalendar, m.config.Cutoff, mode)),
	)
}

func (m Model) renderScanning() string {
	if m.scanTotal > 0 {
		percent := float64(m.scanCurrent) / float64(m.scanTotal)
		progressBar := m.progress.ViewAs(percent)

		countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
		msgStyle := lipgloss.NewStyle().Foreground(dimTextColor)

		return fmt.Sprintf("%s Scanning device...\n\n  %s\n  %s %s",
			m.spinner.View(),
			progressBar,
			countStyle.Render(fmt.Sprintf("%d/%d", m.scanCurrent, m.scanTotal)),
			msgStyle.Render(m.scanMessage),
		)
	}
	return fmt.Sprintf("%s Scanning device...", m.spinner.View())
}

func (m Model) renderReview() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Deletion Candidates"))
	b.WriteString("\n\n")

	if len(m.Result.Items) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  No media older than the cutoff"))
		b.WriteString("\n")
	} else {
		start, end := listWindow(m.cursor, len(m.Result.Items), 8)
		if start > 0 {
			b.WriteString(fmt.Sprintf("  ... %d above\n", start))
		}
		for i := start; i < end; i++ {
			b.WriteString("  ")
			b.WriteString(m.renderItemLine(i))
			b.WriteString("\n")
		}
		if end < len(m.Result.Items) {
			b.WriteString(fmt.Sprintf("  ... %d below\n", len(m.Result.Items)-end))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())

	return b.String()
}

func (m Model) renderItemLine(i int) string {
	item := m.Result.Items[i]

	check := iconUnchecked
	if m.selected[item.Path] {
		check = iconChecked
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		check,
		fileNameStyle.Render(item.Filename),
		dateStyle.Render(item.ModifiedTime.Format("2006-01-02")),
		kindStyle(item.Kind).Render(item.Kind.String()),
	)

	if i == m.cursor {
		return cursorStyle.Render("> ") + line
	}
	return "  " + line
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	selected := m.SelectedItems()
	var selectedBytes uint64
	for _, item := range selected {
		selectedBytes += item.SizeBytes
	}

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Found:"), statValueStyle.Render(fmt.Sprintf("%d files", len(m.Result.Items)))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Selected:"), statValueStyle.Render(fmt.Sprintf("%d files", len(selected)))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Est. size:"), statValueStyle.Render(fmt.Sprintf("%.1f MB", float64(selectedBytes)/(1024*1024)))))

	if m.Result.StatFailures > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Unreadable:"), dimStyle.Render(fmt.Sprintf("%d files", m.Result.StatFailures))))
	}
	if len(m.Result.FolderFailures) > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Bad folders:"), warningStyle.Render(fmt.Sprintf("%s %d", iconWarning, len(m.Result.FolderFailures)))))
		if m.config.Verbose {
			for folder, cause := range m.Result.FolderFailures {
				b.WriteString(fmt.Sprintf("    %s %s: %s\n", iconWarning, folder, dimStyle.Render(cause)))
			}
		}
	}

	return b.String()
}

func (m Model) renderConfirmPrompt() string {
	count := len(m.SelectedItems())
	var label string
	if m.config.DryRun {
		label = fmt.Sprintf("Simulate deleting %d files?", count)
	} else {
		label = fmt.Sprintf("PERMANENTLY delete %d files from the device?", count)
	}
	prompt := confirmPromptStyle.Render(label)

	var yesBtn, noBtn string
	if m.confirmDelete {
		yesBtn = highlightBoxStyle.
			Background(lipgloss.Color("#2D5A27")).
			Render(" Yes ")
		noBtn = boxStyle.Render(" No ")
	} else {
		yesBtn = boxStyle.Render(" Yes ")
		noBtn = highlightBoxStyle.
			Background(lipgloss.Color("#5A2727")).
			Render(" No ")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", buttons)
}

func (m Model) renderDeletion() string {
	var b strings.Builder

	header := "Deleting Files"
	if m.config.DryRun {
		header = "Simulating Deletion"
	}
	b.WriteString(sectionStyle.Render(header))
	b.WriteString("\n\n")

	percent := 0.0
	if m.deleteTotal > 0 {
		percent = float64(m.deleteCurrent) / float64(m.deleteTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Working...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.deleteCurrent, m.deleteTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.deleteMessage != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			iconArrow,
			fileNameStyle.Render(m.deleteMessage),
		))
	}

	return b.String()
}

func (m Model) renderReport() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Complete"))
	b.WriteString("\n\n")

	verb := "Deleted"
	if m.Report.Simulated {
		verb = "Would delete"
	}

	icon := successStyle.Render(iconSuccess)
	msg := successStyle.Render(fmt.Sprintf("%s %d of %d files", verb, m.Report.Succeeded, m.Report.Attempted))
	b.WriteString(fmt.Sprintf("  %s %s\n", icon, msg))

	if m.Report.Simulated {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry run - no files were removed"))
		b.WriteString("\n")
	}

	if len(m.Report.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%s Failed (%d files)", iconWarning, len(m.Report.Failed))))
		b.WriteString("\n\n")
		for i, failure := range m.Report.Failed {
			if i >= 5 && !m.config.Verbose {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Report.Failed)-5))
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s: %s\n",
				errorStyle.Render(iconError),
				fileNameStyle.Render(failure.Filename),
				dateStyle.Render(failure.Cause),
			))
		}
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseReview:
		help = "↑/↓ move • Space toggle • a all • n none • Enter continue • q quit"
	case PhaseConfirm:
		help = "← → or y/n to select • Enter to confirm • q to quit"
	case PhaseDeleting:
		help = "Working... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// listWindow clamps a viewport of size around the cursor.
func listWindow(cursor, length, size int) (int, int) {
	if length <= size {
		return 0, length
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > length {
		end = length
		start = end - size
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func shortenPath(path string) string {
	if len(path) <= 40 {
		return path
	}
	return "..." + path[len(path)-37:]
}
