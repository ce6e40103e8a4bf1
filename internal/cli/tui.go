package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gduarte/massing/pkg/errors"
)

// Prompt styles
var (
	promptActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	promptNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	promptErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// SetupModel - Interactive module/height entry
// =============================================================================

// SetupResult holds the values confirmed in the interactive prompt.
type SetupResult struct {
	ModuleCM float64
	HeightCM float64
}

// setupField is one numeric entry line in the setup prompt.
type setupField struct {
	label string
	unit  string
	value string
	check func(float64) error
}

// SetupModel is the bubbletea model for the pre-solve setup prompt. It asks
// for the construction module and the floor height, pre-filled with the
// persisted defaults, and validates on confirm.
type SetupModel struct {
	fields    []setupField
	cursor    int
	errMsg    string
	Confirmed *SetupResult
}

// NewSetupModel creates a setup prompt pre-filled with the given defaults.
func NewSetupModel(moduleCM, heightCM float64) SetupModel {
	return SetupModel{
		fields: []setupField{
			{
				label: "Construction module",
				unit:  "cm",
				value: strconv.FormatFloat(moduleCM, 'f', -1, 64),
				check: errors.ValidateModule,
			},
			{
				label: "Floor height",
				unit:  "cm",
				value: strconv.FormatFloat(heightCM, 'f', -1, 64),
				check: errors.ValidateHeight,
			},
		},
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit

	case "up", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "tab":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}

	case "backspace":
		f := &m.fields[m.cursor]
		if len(f.value) > 0 {
			f.value = f.value[:len(f.value)-1]
		}
		m.errMsg = ""

	case "enter":
		result, err := m.confirm()
		if err != nil {
			m.errMsg = errors.UserMessage(err)
			return m, nil
		}
		m.Confirmed = result
		return m, tea.Quit

	default:
		// Digits and one decimal point only
		s := key.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s == ".") {
			f := &m.fields[m.cursor]
			if s == "." && strings.Contains(f.value, ".") {
				return m, nil
			}
			f.value += s
			m.errMsg = ""
		}
	}
	return m, nil
}

// confirm parses and validates every field.
func (m SetupModel) confirm() (*SetupResult, error) {
	vals := make([]float64, len(m.fields))
	for i, f := range m.fields {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s %q is not a number", f.label, f.value)
		}
		if err := f.check(v); err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &SetupResult{ModuleCM: vals[0], HeightCM: vals[1]}, nil
}

func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Massing Setup"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab/↑↓ switch field  ⏎ confirm  esc cancel"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		style := promptNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = promptActiveStyle
		}
		line := fmt.Sprintf("%s%-20s %s %s", cursor, f.label, style.Render(f.value+"_"), StyleDim.Render(f.unit))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(promptErrorStyle.Render(iconError + " " + m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

// runSetupPrompt shows the interactive prompt and returns the confirmed
// values, or nil if the user cancelled.
func runSetupPrompt(moduleCM, heightCM float64) (*SetupResult, error) {
	p := tea.NewProgram(NewSetupModel(moduleCM, heightCM))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("setup prompt: %w", err)
	}
	model, ok := final.(SetupModel)
	if !ok {
		return nil, nil
	}
	return model.Confirmed, nil
}
