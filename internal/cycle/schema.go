package cycle

import (
	"strconv"
	"strings"
)

// Duration bounds for a cycle, in minutes.
const (
	MinMinutes = 5
	MaxMinutes = 60
)

// Form field names reported in FieldError.
const (
	FieldTask    = "task"
	FieldMinutes = "minutesAmount"
)

// Messages holds the locale-specific validation messages.
type Messages struct {
	TaskRequired string
	MinMinutes   string
	MaxMinutes   string
}

var locales = map[string]Messages{
	"pt-BR": {
		TaskRequired: "Informe nome da tarefa",
		MinMinutes:   "O valor mínimo do ciclo é de 5 minutos",
		MaxMinutes:   "O valor máximo do ciclo é de 60 minutos",
	},
	"en": {
		TaskRequired: "Task name required",
		MinMinutes:   "Duration must be at least 5 minutes",
		MaxMinutes:   "Duration must be at most 60 minutes",
	},
}

// DefaultLocale is used when a requested locale is unknown.
const DefaultLocale = "en"

// MessagesFor returns the messages for locale, falling back to DefaultLocale.
func MessagesFor(locale string) Messages {
	if m, ok := locales[locale]; ok {
		return m
	}
	return locales[DefaultLocale]
}

// Locales lists the supported locale tags.
func Locales() []string {
	return []string{"en", "pt-BR"}
}

// Schema validates new-cycle input.
type Schema struct {
	Messages Messages
}

// NewSchema returns a Schema using the messages of locale.
func NewSchema(locale string) Schema {
	return Schema{Messages: MessagesFor(locale)}
}

// IsTaskFieldEmpty reports whether the task input should block submission.
func IsTaskFieldEmpty(task string) bool {
	return task == ""
}

func (s Schema) ValidateTask(task string) error {
	if len(task) < 1 {
		return &FieldError{Field: FieldTask, Message: s.Messages.TaskRequired}
	}
	return nil
}

func (s Schema) ValidateMinutes(minutes int) error {
	if minutes < MinMinutes {
		return &FieldError{Field: FieldMinutes, Message: s.Messages.MinMinutes}
	}
	if minutes > MaxMinutes {
		return &FieldError{Field: FieldMinutes, Message: s.Messages.MaxMinutes}
	}
	return nil
}

// ParseMinutes converts raw form input into a validated minute amount.
// Input that is not a number is reported with the minimum-duration message.
func (s Schema) ParseMinutes(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &FieldError{Field: FieldMinutes, Message: s.Messages.MinMinutes}
	}
	if err := s.ValidateMinutes(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Validate checks both fields and reports every violation at once.
func (s Schema) Validate(task string, minutes int) error {
	var verr ValidationError
	for _, err := range []error{s.ValidateTask(task), s.ValidateMinutes(minutes)} {
		if fe, ok := err.(*FieldError); ok {
			verr.Fields = append(verr.Fields, *fe)
		}
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return &verr
}
