package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// registrationPrompt builds the free-text prompt for one registration
// step. An optional preamble precedes the prompt (used when the chain
// is entered from the summary gate).
func registrationPrompt(state domain.SessionState, preamble string) *domain.Screen {
	var text string
	switch state {
	case domain.StateRegFullName:
		text = "Пожалуйста, введите ваше полное имя (Фамилия Имя Отчество):"
	case domain.StateRegPhone:
		text = "Спасибо! Теперь введите ваш номер телефона:"
	case domain.StateRegPassportNumber:
		text = "Спасибо! Теперь введите серию и номер паспорта (например, «1234 567890»):"
	case domain.StateRegIssuedBy:
		text = "Спасибо! Теперь введите, кем выдан паспорт:"
	case domain.StateRegIssueDate:
		text = "Спасибо! Теперь введите дату выдачи паспорта (например, «12.01.2023»):"
	case domain.StateRegAddress:
		text = "Спасибо! Теперь введите ваш адрес регистрации:"
	}
	if preamble != "" {
		text = preamble + "\n" + text
	}

	return &domain.Screen{
		Text: text,
		Options: []domain.Option{
			{Label: "❌ Отменить регистрацию", Action: domain.CancelRegistration{}},
		},
		ExpectsText: true,
	}
}

// reprompt re-renders the same step with an error note. Validation
// failures are local: no state change, nothing raised to the caller.
func reprompt(state domain.SessionState, note string) *domain.Screen {
	scr := registrationPrompt(state, "")
	scr.Text = note + "\n" + scr.Text
	return scr
}

// registrationAction handles button presses during the registration
// chain: the only legal one is an explicit cancel, valid from any step.
func (s *FlowService) registrationAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	if _, ok := act.(domain.CancelRegistration); ok {
		sess.Data.Reset()
		return s.toMainMenu(ctx, sess, "❌ Регистрация отменена. Вы можете начать заново из главного меню.")
	}
	return s.unrecognizedAction(sess, act), nil
}

func (s *FlowService) fullNameText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	name := trimText(text)
	if !validFullName(name) {
		return reprompt(domain.StateRegFullName, "❌ Пожалуйста, введите полное имя (например, «Иванов Иван Иванович»)."), nil
	}

	sess.Data.FullName = name
	sess.State = domain.StateRegPhone
	return registrationPrompt(domain.StateRegPhone, ""), nil
}

func (s *FlowService) phoneText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	digits, ok := normalizePhone(text)
	if !ok {
		return reprompt(domain.StateRegPhone, "❌ Пожалуйста, введите корректный номер телефона."), nil
	}

	sess.Data.PhoneNumber = digits
	sess.State = domain.StateRegPassportNumber
	return registrationPrompt(domain.StateRegPassportNumber, ""), nil
}

func (s *FlowService) passportNumberText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	number := trimText(text)
	if !validPassportNumber(number) {
		return reprompt(domain.StateRegPassportNumber, "❌ Пожалуйста, введите серию и номер паспорта в формате «1234 567890»."), nil
	}

	sess.Data.PassportNumber = number
	sess.State = domain.StateRegIssuedBy
	return registrationPrompt(domain.StateRegIssuedBy, ""), nil
}

func (s *FlowService) issuedByText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	issuedBy := trimText(text)
	if !validIssuedBy(issuedBy) {
		return reprompt(domain.StateRegIssuedBy, "❌ Пожалуйста, введите полное наименование органа, выдавшего паспорт."), nil
	}

	sess.Data.PassportIssuedBy = issuedBy
	sess.State = domain.StateRegIssueDate
	return registrationPrompt(domain.StateRegIssueDate, ""), nil
}

func (s *FlowService) issueDateText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	date := trimText(text)
	if !validIssueDate(date) {
		return reprompt(domain.StateRegIssueDate, "❌ Пожалуйста, введите дату в формате «ДД.ММ.ГГГГ»."), nil
	}

	sess.Data.PassportIssueDate = date
	sess.State = domain.StateRegAddress
	return registrationPrompt(domain.StateRegAddress, ""), nil
}

// addressText completes the chain: the address is accepted as-is, the
// collected fields are merged into the profile, and the flow resumes at
// the summary when registration was entered from there.
func (s *FlowService) addressText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	address := trimText(text)
	if address == "" {
		return reprompt(domain.StateRegAddress, "❌ Адрес не может быть пустым."), nil
	}
	sess.Data.Address = address

	upd := domain.ProfileUpdate{
		Username:            sess.Username,
		FullName:            sess.Data.FullName,
		PhoneNumber:         sess.Data.PhoneNumber,
		PassportNumber:      sess.Data.PassportNumber,
		PassportIssuedBy:    sess.Data.PassportIssuedBy,
		PassportIssueDate:   sess.Data.PassportIssueDate,
		RegistrationAddress: sess.Data.Address,
	}
	if err := s.profiles.Upsert(ctx, sess.UserID, upd); err != nil {
		// Stay on this step so the same input can be retried.
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.logger.Info("client profile registered",
		logger.Int64("user_id", sess.UserID),
	)

	resume := sess.Data.ResumeToSummary
	sess.Data.ResetRegistration()

	if resume {
		scr, err := s.showSummary(ctx, sess)
		if err != nil {
			return nil, err
		}
		scr.Text = "Спасибо! Вы успешно зарегистрированы.\n\n" + scr.Text
		return scr, nil
	}

	return s.toMainMenu(ctx, sess, "Спасибо! Вы успешно зарегистрированы.")
}

func trimText(s string) string {
	return strings.TrimSpace(s)
}
