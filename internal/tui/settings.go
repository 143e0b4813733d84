package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/cyclr/internal/cycle"
	"github.com/sadopc/cyclr/internal/store"
)

var localeNames = map[string]string{
	"en":    "English",
	"pt-BR": "Português (Brasil)",
}

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	defaultMinutes *string
	locale         *string
}

func newSettingsModel(s *store.Store) settingsModel {
	dm, loc := "", ""
	return settingsModel{
		store:          s,
		defaultMinutes: &dm,
		locale:         &loc,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Start):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.defaultMinutes = s.getVal(store.SettingDefaultMinutes, "0")
	if *s.defaultMinutes == "0" {
		*s.defaultMinutes = ""
	}
	*s.locale = s.getVal(store.SettingLocale, cycle.DefaultLocale)

	localeOptions := make([]huh.Option[string], 0, len(cycle.Locales()))
	for _, l := range cycle.Locales() {
		localeOptions = append(localeOptions, huh.NewOption(localeNames[l], l))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default cycle length (min)").
				Description("Prefills the minutes field; leave empty for none").
				Placeholder("00").
				CharLimit(2).
				Validate(validateDefaultMinutes).
				Value(s.defaultMinutes),
			huh.NewSelect[string]().Title("Language").
				Options(localeOptions...).
				Value(s.locale),
		).Title("Session"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

// validateDefaultMinutes accepts an empty value or a valid cycle length.
func validateDefaultMinutes(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	_, err := cycle.NewSchema(cycle.DefaultLocale).ParseMinutes(raw)
	return err
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		saved, err := s.saveSettings()
		if err != nil {
			return s, statusCmd(fmt.Sprintf("Settings error: %v", err), true)
		}
		return s, tea.Batch(s.refresh(), func() tea.Msg { return saved })
	}

	return s, cmd
}

func (s settingsModel) saveSettings() (settingsSavedMsg, error) {
	minutes := 0
	if v := strings.TrimSpace(*s.defaultMinutes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return settingsSavedMsg{}, fmt.Errorf("parse default minutes: %w", err)
		}
		minutes = n
	}
	if err := s.store.SetSetting(store.SettingDefaultMinutes, strconv.Itoa(minutes)); err != nil {
		return settingsSavedMsg{}, err
	}
	if err := s.store.SetSetting(store.SettingLocale, *s.locale); err != nil {
		return settingsSavedMsg{}, err
	}
	return settingsSavedMsg{defaultMinutes: minutes, locale: *s.locale}, nil
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings. Changes last for this session only.")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case store.SettingDefaultMinutes:
		if v == "0" || v == "" {
			return "none"
		}
		return v + " min"
	case store.SettingLocale:
		if name, ok := localeNames[v]; ok {
			return name
		}
	}
	return v
}
