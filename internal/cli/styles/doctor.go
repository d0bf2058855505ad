package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorStatus is the outcome of one check.
type DoctorStatus int

const (
	DoctorOK DoctorStatus = iota
	DoctorWarn
	DoctorFail
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	Sections []DoctorSection
}

type DoctorSection struct {
	Title  string
	Icon   string
	Checks []DoctorCheck
}

type DoctorCheck struct {
	Name   string
	Status DoctorStatus
	Detail string
	Hint   string
}

// OK reports whether no check failed. Warnings do not count.
func (r DoctorReport) OK() bool {
	for _, s := range r.Sections {
		for _, c := range s.Checks {
			if c.Status == DoctorFail {
				return false
			}
		}
	}
	return true
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OK())

	sections := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		if len(s.Checks) == 0 {
			continue
		}
		sections = append(sections, r.renderSection(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", statusStyle.Render(statusText))
}

func (r *DoctorRenderer) renderSection(s DoctorSection) string {
	lines := make([]string, 0, len(s.Checks))
	for _, c := range s.Checks {
		lines = append(lines, r.renderCheck(c))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(s.Icon), s.Title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	switch c.Status {
	case DoctorWarn:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
	case DoctorFail:
		icon = IconX
		statusStyle = r.theme.ErrorStyle
	}

	line := fmt.Sprintf("%s %s %s", statusStyle.Render(icon), r.theme.Normal.Render(c.Name), r.theme.Subtle.Render(c.Detail))
	if c.Hint != "" && c.Status != DoctorOK {
		line += "\n  " + r.theme.Subtle.Render(IconArrow+" "+c.Hint)
	}
	return line
}
