package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/ansfaiz/NeuralForge/pkg/forms"
	"github.com/ansfaiz/NeuralForge/pkg/schema"
)

const defaultMaxRetries = 3

// Option configures a Session.
type Option func(*Session)

// WithDriver injects a custom prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithMaxRetries bounds how often an invalid answer is re-prompted.
func WithMaxRetries(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// Session walks the contact form's fields interactively, feeding every answer
// through the page validator so the terminal flow enforces exactly the rules
// the page does.
type Session struct {
	driver     PromptDriver
	validator  *forms.Validator
	form       schema.FormModel
	maxRetries int
}

// NewSession constructs a session with defaults (survey driver).
func NewSession(form schema.FormModel, validator *forms.Validator, options ...Option) (*Session, error) {
	if validator == nil {
		return nil, errors.New("console: validator is required")
	}

	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	s := &Session{
		driver:     driver,
		validator:  validator,
		form:       form,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run prompts for every field, confirms, and submits. A declined confirmation
// leaves the form untouched and returns nil.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("console: context is required")
	}

	for _, field := range s.form.Fields {
		if err := s.promptField(ctx, field); err != nil {
			return err
		}
	}

	send, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Send this message?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !send {
		return s.driver.Info(ctx, "Discarded.")
	}

	for attempt := 0; ; attempt++ {
		if s.validator.Submit(ctx) {
			return s.driver.Info(ctx, "Thank you! Your message has been sent.")
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if attempt >= s.maxRetries {
			return fmt.Errorf("console: form still invalid after %d attempts", attempt+1)
		}
		if err := s.repromptInvalid(ctx); err != nil {
			return err
		}
	}
}

func (s *Session) promptField(ctx context.Context, field schema.Field) error {
	for attempt := 0; ; attempt++ {
		value, err := s.ask(ctx, field)
		if err != nil {
			return err
		}
		s.validator.Input(field.Name, value)

		// ValidateField mirrors the page's focus-out check: it only
		// polices a subset of fields, and only when they hold text.
		if s.validator.ValidateField(field.Name) {
			return nil
		}
		if attempt >= s.maxRetries {
			return fmt.Errorf("console: field %q still invalid after %d attempts", field.Name, attempt+1)
		}
		if msg := s.validator.FieldError(field.Name); msg != "" {
			if err := s.driver.Info(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func (s *Session) repromptInvalid(ctx context.Context) error {
	for _, field := range s.form.Fields {
		if !s.validator.HasError(field.Name) {
			continue
		}
		if msg := s.validator.FieldError(field.Name); msg != "" {
			if err := s.driver.Info(ctx, msg); err != nil {
				return err
			}
		}
		value, err := s.ask(ctx, field)
		if err != nil {
			return err
		}
		s.validator.Input(field.Name, value)
	}
	return nil
}

func (s *Session) ask(ctx context.Context, field schema.Field) (string, error) {
	message := field.Label
	if message == "" {
		message = field.Name
	}
	current := s.validator.Value(field.Name)

	if field.Format == "textarea" {
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: current,
			Help:    field.Description,
		})
	}
	return s.driver.Input(ctx, InputConfig{
		Message:     message,
		Default:     current,
		Help:        field.Description,
		Placeholder: field.Placeholder,
	})
}
