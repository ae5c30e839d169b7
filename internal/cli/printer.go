package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/aether/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// Printer renders reports and messages. Styles are bound to the writer, so output
// to a pipe or a file stays plain text.
type Printer struct {
	out     io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)

	return &Printer{
		out:     out,
		title:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD")),
		label:   renderer.NewStyle().Foreground(lipgloss.Color("#BD93F9")),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("#F1FA8C")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
	}
}

// Current prints the current weather report.
func (p *Printer) Current(report *service.CurrentReport) {
	var sb strings.Builder

	sb.WriteString(p.title.Render(fmt.Sprintf("Weather in %s:", report.Location)) + "\n")
	sb.WriteString(p.label.Render("Temperature:") + " " +
		formatNumber(report.Temperature) + string(report.TemperatureUnit) + "\n")
	sb.WriteString(p.label.Render("Humidity:") + " " + strconv.Itoa(report.Humidity) + "%\n")
	sb.WriteString(p.label.Render("Wind Speed:") + " " +
		formatNumber(report.WindSpeed) + " " + string(report.WindSpeedUnit) + "\n")
	if report.Description != "" {
		sb.WriteString(p.label.Render("Conditions:") + " " + report.Description + "\n")
	}

	p.write(sb.String())
}

// Forecast prints the daily forecast report.
func (p *Printer) Forecast(report *service.ForecastReport) {
	var sb strings.Builder

	sb.WriteString(p.title.Render(fmt.Sprintf("Weather Forecast for %s:", report.City)) + "\n")
	for i, day := range report.Days {
		sb.WriteString(fmt.Sprintf("%d. %s %s, %s %s%s, %s %s\n",
			i+1,
			p.label.Render("Date:"), day.Date.Format("2006-01-02"),
			p.label.Render("Temperature:"), formatNumber(day.Temperature), report.TemperatureUnit,
			p.label.Render("Weather:"), day.Description,
		))
	}

	p.write(sb.String())
}

// Line prints an unstyled line.
func (p *Printer) Line(text string) {
	p.write(text + "\n")
}

// Prompt prints text without a trailing newline.
func (p *Printer) Prompt(text string) {
	p.write(text)
}

// Title prints a highlighted line.
func (p *Printer) Title(text string) {
	p.write(p.title.Render(text) + "\n")
}

// Warning prints a message about invalid user input.
func (p *Printer) Warning(text string) {
	p.write(p.warning.Render(text) + "\n")
}

// Error prints a message about a failed lookup.
func (p *Printer) Error(text string) {
	p.write(p.failure.Render(text) + "\n")
}

// Success prints a confirmation message.
func (p *Printer) Success(text string) {
	p.write(p.success.Render(text) + "\n")
}

func (p *Printer) write(text string) {
	_, _ = io.WriteString(p.out, text)
}

// formatNumber prints the shortest representation, so 21.5 stays "21.5" and 20 prints "20".
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
