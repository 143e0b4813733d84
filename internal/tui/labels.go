package tui

import "github.com/sadopc/cyclr/internal/cycle"

// labels are the timer view's user-facing strings.
type labels struct {
	TaskTitle       string
	TaskPlaceholder string
	MinutesTitle    string
	MinutesSuffix   string
	Start           string
	Interrupt       string
	TimesUp         string
	Started         string
	Interrupted     string
	FormHint        string
	IdleHint        string
}

var uiLabels = map[string]labels{
	"pt-BR": {
		TaskTitle:       "Vou trabalhar em",
		TaskPlaceholder: "Dê um nome ao seu projeto",
		MinutesTitle:    "durante",
		MinutesSuffix:   "minutos.",
		Start:           "▶ Começar",
		Interrupt:       "■ Interromper",
		TimesUp:         "Tempo esgotado!",
		Started:         "Ciclo iniciado",
		Interrupted:     "Ciclo interrompido",
		FormHint:        "enter: próximo/começar  esc: sair do formulário",
		IdleHint:        "n: novo ciclo",
	},
	"en": {
		TaskTitle:       "I'll work on",
		TaskPlaceholder: "Give your project a name",
		MinutesTitle:    "for",
		MinutesSuffix:   "minutes.",
		Start:           "▶ Start",
		Interrupt:       "■ Interrupt",
		TimesUp:         "Time's up!",
		Started:         "Cycle started",
		Interrupted:     "Cycle interrupted",
		FormHint:        "enter: next/start  esc: leave form",
		IdleHint:        "n: new cycle",
	},
}

func labelsFor(locale string) labels {
	if l, ok := uiLabels[locale]; ok {
		return l
	}
	return uiLabels[cycle.DefaultLocale]
}
