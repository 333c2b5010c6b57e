package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homectl is a small terminal client for the smart-home server: it seeds
// demo data and browses the analytics endpoints without leaving the shell.

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			PaddingLeft(2)
)

type step int

const (
	stepMenu step = iota
	stepWorking
	stepViewing
)

type menuItem struct {
	label  string
	method string
	path   string
}

var menuItems = []menuItem{
	{label: "Seed demo data", method: http.MethodPost, path: "/api/v1/seed"},
	{label: "Device usage frequency", method: http.MethodGet, path: "/api/v1/analytics/device-usage"},
	{label: "Peak-hour device ranking", method: http.MethodGet, path: "/api/v1/analytics/peak-hours"},
	{label: "Top energy consumers", method: http.MethodGet, path: "/api/v1/analytics/top-consumers"},
	{label: "Devices per user", method: http.MethodGet, path: "/api/v1/analytics/devices-per-user"},
	{label: "Hourly usage by device", method: http.MethodGet, path: "/api/v1/analytics/hourly-usage"},
	{label: "House type report", method: http.MethodGet, path: "/api/v1/analytics/house-types"},
	{label: "Activity by hour", method: http.MethodGet, path: "/api/v1/analytics/activity-by-hour"},
	{label: "Consumption per device", method: http.MethodGet, path: "/api/v1/analytics/consumption"},
}

type model struct {
	step     step
	cursor   int
	server   string
	title    string
	body     string
	errMsg   string
	quitting bool
}

type resultMsg struct {
	title string
	body  string
}

type requestFailedMsg struct {
	err error
}

func initialModel() model {
	server := os.Getenv("HOMECTL_SERVER")
	if server == "" {
		server = "http://localhost:3536"
	}
	return model{step: stepMenu, server: server}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.step == stepMenu && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.step == stepMenu && m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case "enter":
			if m.step == stepMenu {
				item := menuItems[m.cursor]
				m.step = stepWorking
				m.errMsg = ""
				return m, callServer(m.server, item)
			}
		case "esc", "backspace":
			if m.step == stepViewing {
				m.step = stepMenu
				m.body = ""
				m.errMsg = ""
			}
		}

	case resultMsg:
		m.step = stepViewing
		m.title = msg.title
		m.body = msg.body

	case requestFailedMsg:
		m.step = stepMenu
		m.errMsg = msg.err.Error()
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SmartHome Control"))
	b.WriteString("\n")

	switch m.step {
	case stepMenu:
		b.WriteString(fmt.Sprintf("Server: %s\n\n", m.server))
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + item.label))
			} else {
				b.WriteString(normalStyle.Render(item.label))
			}
			b.WriteString("\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render("error: "+m.errMsg) + "\n")
		}
		b.WriteString("\nup/down to move, enter to run, q to quit\n")

	case stepWorking:
		b.WriteString("Working...\n")

	case stepViewing:
		b.WriteString(successStyle.Render(m.title) + "\n\n")
		b.WriteString(resultStyle.Render(m.body))
		b.WriteString("\n\nesc to go back, q to quit\n")
	}

	return b.String()
}

func callServer(server string, item menuItem) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 15 * time.Second}
		req, err := http.NewRequest(item.method, server+item.path, nil)
		if err != nil {
			return requestFailedMsg{err: err}
		}

		resp, err := client.Do(req)
		if err != nil {
			return requestFailedMsg{err: err}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return requestFailedMsg{err: err}
		}
		if resp.StatusCode >= 400 {
			return requestFailedMsg{err: fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(raw)))}
		}

		body, err := formatResponse(raw)
		if err != nil {
			return requestFailedMsg{err: err}
		}
		return resultMsg{title: item.label, body: body}
	}
}

// formatResponse renders the server's {"data": ...} envelope as one line per
// record with the fields in alphabetical order.
func formatResponse(raw []byte) (string, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("unexpected response: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(envelope.Data, &rows); err != nil {
		// Not a list (e.g. the seed summary); show the object itself.
		var obj map[string]any
		if err := json.Unmarshal(envelope.Data, &obj); err != nil {
			return string(envelope.Data), nil
		}
		rows = []map[string]any{obj}
	}

	if len(rows) == 0 {
		return "(no data)", nil
	}

	var b strings.Builder
	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, row[k]))
		}
		b.WriteString(strings.Join(parts, "  "))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "homectl: %v\n", err)
		os.Exit(1)
	}
}
