package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type actionHandler func(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error)
type textHandler func(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error)

// FlowService is the conversation controller: given the current session
// and a typed inbound event it decides the next state, mutates the
// session data and produces the screen to render. Illegal state/event
// combinations are an absent table entry, answered with an
// "unrecognized action" alert and an untouched session.
type FlowService struct {
	catalog  ports.Catalog
	profiles ports.ProfileRepo
	apps     ports.ApplicationRepo
	notifier ports.ApplicationNotifier
	logger   logger.Logger

	actions map[domain.SessionState]actionHandler
	texts   map[domain.SessionState]textHandler
}

func NewFlowService(
	catalog ports.Catalog,
	profiles ports.ProfileRepo,
	apps ports.ApplicationRepo,
	notifier ports.ApplicationNotifier,
	logger logger.Logger,
) *FlowService {
	s := &FlowService{
		catalog:  catalog,
		profiles: profiles,
		apps:     apps,
		notifier: notifier,
		logger:   logger,
	}

	s.actions = map[domain.SessionState]actionHandler{
		domain.StateMainMenu:          s.mainMenuAction,
		domain.StateInfoScreen:        s.infoScreenAction,
		domain.StateChoosingEvent:     s.choosingEventAction,
		domain.StateChoosingPointDate: s.choosingPointDateAction,
		domain.StateAskingService:     s.askingServiceAction,
		domain.StateFinalSummary:      s.finalSummaryAction,

		domain.StateRegFullName:       s.registrationAction,
		domain.StateRegPhone:          s.registrationAction,
		domain.StateRegPassportNumber: s.registrationAction,
		domain.StateRegIssuedBy:       s.registrationAction,
		domain.StateRegIssueDate:      s.registrationAction,
		domain.StateRegAddress:        s.registrationAction,
	}

	s.texts = map[domain.SessionState]textHandler{
		domain.StateAskingService: s.repairCommentText,

		domain.StateRegFullName:       s.fullNameText,
		domain.StateRegPhone:          s.phoneText,
		domain.StateRegPassportNumber: s.passportNumberText,
		domain.StateRegIssuedBy:       s.issuedByText,
		domain.StateRegIssueDate:      s.issueDateText,
		domain.StateRegAddress:        s.addressText,
	}

	return s
}

// HandleCommand processes a global slash command: valid from any state,
// always lands in the main menu with empty data.
func (s *FlowService) HandleCommand(ctx context.Context, sess *domain.Session, cmd domain.Command) (*domain.Screen, error) {
	sess.Data.Reset()
	sess.State = domain.StateMainMenu

	profile, err := s.profiles.GetByUserID(ctx, sess.UserID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		s.logger.Error("load profile for greeting",
			logger.Int64("user_id", sess.UserID),
			logger.String("error", err.Error()),
		)
		profile = nil
	}

	scr := mainMenuScreen(profile)
	if cmd == domain.CommandCancel || cmd == domain.CommandExit {
		scr.Text = "Операция отменена. " + scr.Text
	}
	return scr, nil
}

// HandleAction dispatches a decoded button press against the
// state×action table.
func (s *FlowService) HandleAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	h, ok := s.actions[sess.State]
	if !ok {
		return s.unrecognizedAction(sess, act), nil
	}
	return h(ctx, sess, act)
}

// HandleText interprets a plain text message. Free text is meaningful
// only on the pre-repair step and the registration steps; anywhere else
// it is answered with a fallback and the session is left untouched.
func (s *FlowService) HandleText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	h, ok := s.texts[sess.State]
	if !ok {
		return &domain.Screen{Text: unrecognizedText}, nil
	}
	return h(ctx, sess, text)
}

// unrecognizedAction is the contract-violation answer: logged, the user
// gets a generic response, the session stays untouched for a retry.
func (s *FlowService) unrecognizedAction(sess *domain.Session, act domain.Action) *domain.Screen {
	s.logger.Warn("action not defined for state",
		logger.Int64("user_id", sess.UserID),
		logger.String("state", string(sess.State)),
		logger.String("action", fmt.Sprintf("%T", act)),
	)
	return &domain.Screen{Alert: "Неизвестное действие. Пожалуйста, попробуйте еще раз."}
}

// --- main menu ---

func (s *FlowService) mainMenuAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	switch act.(type) {
	case domain.StartBooking:
		return s.openEventSelection(sess)

	case domain.StartRegistration:
		profile, err := s.profiles.GetByUserID(ctx, sess.UserID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		if profile.IsComplete() {
			scr := mainMenuScreen(profile)
			scr.Text = fmt.Sprintf("Вы уже зарегистрированы как %s. Выберите действие:", profile.FullName)
			return scr, nil
		}
		sess.State = domain.StateRegFullName
		return registrationPrompt(domain.StateRegFullName, ""), nil

	case domain.ShowInfo:
		sess.State = domain.StateInfoScreen
		return infoScreen(), nil
	}
	return s.unrecognizedAction(sess, act), nil
}

func (s *FlowService) infoScreenAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	if back, ok := act.(domain.Back); ok && back.To == domain.StateMainMenu {
		return s.toMainMenu(ctx, sess, "")
	}
	return s.unrecognizedAction(sess, act), nil
}

// openEventSelection enters the event list with the first catalog
// event preselected so a single tap on continue is enough.
func (s *FlowService) openEventSelection(sess *domain.Session) (*domain.Screen, error) {
	events := s.catalog.Events()
	if len(events) > 0 {
		sess.Data.SelectedEventID = events[0].ID
	}
	sess.State = domain.StateChoosingEvent
	return eventsScreen(events, sess.Data.SelectedEventID), nil
}

// --- choosing event ---

func (s *FlowService) choosingEventAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	switch a := act.(type) {
	case domain.SelectEvent:
		// Re-selecting the selected event is a no-op: no transition, no
		// data mutation, just an acknowledgement.
		if a.EventID == sess.Data.SelectedEventID && a.EventID != "" {
			return &domain.Screen{Alert: "Это событие уже выбрано. Нажмите «Далее ➡️» для продолжения."}, nil
		}

		if _, err := s.catalog.GetEvent(a.EventID); err != nil {
			sess.Data.SelectedEventID = ""
			scr := eventsScreen(s.catalog.Events(), "")
			scr.Alert = "Событие не найдено. Возможно, данные устарели — выберите событие заново."
			return scr, nil
		}

		sess.Data.SelectedEventID = a.EventID
		return eventsScreen(s.catalog.Events(), a.EventID), nil

	case domain.ContinueEvent:
		if sess.Data.SelectedEventID == "" {
			return &domain.Screen{Alert: "Пожалуйста, выберите событие, прежде чем продолжить."}, nil
		}
		event, err := s.catalog.GetEvent(sess.Data.SelectedEventID)
		if err != nil {
			sess.Data.SelectedEventID = ""
			scr := eventsScreen(s.catalog.Events(), "")
			scr.Alert = "Данные о выбранном событии не найдены. Выберите событие заново."
			return scr, nil
		}

		sess.Data.EventName = event.Name
		sess.State = domain.StateChoosingPointDate
		return pointDateScreen(event), nil

	case domain.Back:
		if a.To == domain.StateMainMenu {
			sess.Data.ResetBooking()
			return s.toMainMenu(ctx, sess, "")
		}
	}
	return s.unrecognizedAction(sess, act), nil
}

// --- choosing point and date ---

func (s *FlowService) choosingPointDateAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	switch a := act.(type) {
	case domain.SelectSlot:
		return s.selectSlot(sess, a)

	case domain.Back:
		if a.To == domain.StateChoosingEvent {
			sess.Data.ResetSlot()
			sess.State = domain.StateChoosingEvent
			return eventsScreen(s.catalog.Events(), sess.Data.SelectedEventID), nil
		}
	}
	return s.unrecognizedAction(sess, act), nil
}

func (s *FlowService) selectSlot(sess *domain.Session, a domain.SelectSlot) (*domain.Screen, error) {
	event, err := s.catalog.GetEvent(a.EventID)
	if err != nil {
		// Stale catalog reference: fall back to the nearest stable
		// ancestor and drop the orphaned fields.
		sess.Data.ResetBooking()
		sess.State = domain.StateChoosingEvent
		scr := eventsScreen(s.catalog.Events(), "")
		scr.Alert = "Событие не найдено. Попробуйте выбрать событие заново."
		return scr, nil
	}

	point, err := s.catalog.GetPoint(a.EventID, a.Kind, a.PointIndex)
	if err != nil {
		sess.Data.ResetSlot()
		scr := pointDateScreen(event)
		scr.Alert = "Точка сдачи не найдена. Выберите другой вариант."
		return scr, nil
	}

	windows := point.SlotsFor(a.Date)
	if len(windows) == 0 {
		scr := pointDateScreen(event)
		scr.Alert = "На выбранную дату нет доступных временных слотов. Выберите другую дату."
		return scr, nil
	}

	// A single window is chosen automatically; with several the first
	// is taken by default (no dedicated time-picker screen).
	sess.Data.PointKind = a.Kind
	sess.Data.PointIndex = a.PointIndex
	sess.Data.PointName = point.PointName
	sess.Data.SelectedDate = a.Date
	sess.Data.SelectedTime = windows[0]
	sess.State = domain.StateAskingService

	header := fmt.Sprintf("Выбрано: %s, %s, %s.",
		point.PointName, formatDateKeyLong(a.Date), windows[0])
	if len(windows) > 1 {
		header = fmt.Sprintf("Выбрано: %s, %s.\nДоступное время: %s. Выбрано: %s.",
			point.PointName, formatDateKeyLong(a.Date),
			strings.Join(windows, ", "), windows[0])
	}
	return repairScreen(header), nil
}

// --- asking for repair ---

func (s *FlowService) askingServiceAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	switch a := act.(type) {
	case domain.RepairNotNeeded:
		notNeeded := false
		sess.Data.PreRepair = &notNeeded
		sess.Data.PreRepairComment = ""
		return s.showSummary(ctx, sess)

	case domain.Back:
		if a.To == domain.StateChoosingPointDate {
			event, err := s.catalog.GetEvent(sess.Data.SelectedEventID)
			if err != nil {
				sess.Data.ResetBooking()
				sess.State = domain.StateChoosingEvent
				scr := eventsScreen(s.catalog.Events(), "")
				scr.Alert = "Событие не найдено. Попробуйте выбрать событие заново."
				return scr, nil
			}
			sess.Data.ResetSlot()
			sess.State = domain.StateChoosingPointDate
			return pointDateScreen(event), nil
		}
	}
	return s.unrecognizedAction(sess, act), nil
}

func (s *FlowService) repairCommentText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error) {
	comment := trimText(text)
	if comment == "" {
		scr := repairScreen("")
		scr.Text = "Комментарий не может быть пустым. Опишите, какой ремонт или сборка/разборка требуется.\n\n" + scr.Text
		return scr, nil
	}

	needed := true
	sess.Data.PreRepair = &needed
	sess.Data.PreRepairComment = comment
	return s.showSummary(ctx, sess)
}

func (s *FlowService) showSummary(ctx context.Context, sess *domain.Session) (*domain.Screen, error) {
	registered, err := s.profileComplete(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	sess.State = domain.StateFinalSummary
	return summaryScreen(&sess.Data, registered), nil
}

// --- final summary ---

func (s *FlowService) finalSummaryAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error) {
	switch a := act.(type) {
	case domain.ConfirmApplication:
		return s.confirmApplication(ctx, sess)

	case domain.CancelApplication:
		sess.Data.Reset()
		return s.toMainMenu(ctx, sess, "❌ Оформление заявки отменено. Вы можете начать заново из главного меню.")

	case domain.RegisterFromSummary:
		sess.Data.ResumeToSummary = true
		sess.State = domain.StateRegFullName
		return registrationPrompt(domain.StateRegFullName, ""), nil

	case domain.Back:
		if a.To == domain.StateAskingService {
			sess.Data.ResetService()
			sess.State = domain.StateAskingService
			return repairScreen(""), nil
		}
	}
	return s.unrecognizedAction(sess, act), nil
}

// confirmApplication checks the submission gate at the moment of the
// action: registration may have completed between summary renders, so
// profile completeness is never cached.
func (s *FlowService) confirmApplication(ctx context.Context, sess *domain.Session) (*domain.Screen, error) {
	profile, err := s.profiles.GetByUserID(ctx, sess.UserID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !profile.IsComplete() {
		sess.Data.ResumeToSummary = true
		sess.State = domain.StateRegFullName
		return registrationPrompt(domain.StateRegFullName,
			"Для оформления заявки вам необходимо зарегистрироваться."), nil
	}

	app := &domain.Application{
		ID:               ulid.Make().String(),
		UserID:           sess.UserID,
		EventID:          sess.Data.SelectedEventID,
		EventName:        sess.Data.EventName,
		PointKind:        sess.Data.PointKind,
		PointName:        sess.Data.PointName,
		SelectedDate:     sess.Data.SelectedDate,
		SelectedTime:     sess.Data.SelectedTime,
		PreRepair:        sess.Data.PreRepair != nil && *sess.Data.PreRepair,
		PreRepairComment: sess.Data.PreRepairComment,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.apps.Create(ctx, app); err != nil {
		// State does not advance past the failed step; the same confirm
		// can be retried.
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.Info("application created",
		logger.String("application_id", app.ID),
		logger.Int64("user_id", sess.UserID),
		logger.String("event_id", app.EventID),
	)

	go s.notifier.NotifyApplicationCreated(context.WithoutCancel(ctx), profile, app)

	sess.Data.Reset()
	sess.State = domain.StateMainMenu

	scr := mainMenuScreen(profile)
	scr.Text = fmt.Sprintf(
		"✅ Ваша заявка успешно оформлена!\nНомер вашей заявки: #%s\nВ ближайшее время с вами свяжется менеджер для уточнения деталей.\n\n%s",
		app.ID, scr.Text,
	)
	return scr, nil
}

// --- shared ---

func (s *FlowService) toMainMenu(ctx context.Context, sess *domain.Session, prefix string) (*domain.Screen, error) {
	sess.State = domain.StateMainMenu

	profile, err := s.profiles.GetByUserID(ctx, sess.UserID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		s.logger.Error("load profile for greeting",
			logger.Int64("user_id", sess.UserID),
			logger.String("error", err.Error()),
		)
		profile = nil
	}

	scr := mainMenuScreen(profile)
	if prefix != "" {
		scr.Text = prefix + "\n\n" + scr.Text
	}
	return scr, nil
}

func (s *FlowService) profileComplete(ctx context.Context, userID int64) (bool, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get profile: %w", err)
	}
	return profile.IsComplete(), nil
}
