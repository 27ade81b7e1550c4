package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/nikfrants/biketransfer/internal/catalog"
	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testEvents() []domain.CatalogEvent {
	return []domain.CatalogEvent{
		{
			ID:          "E1",
			Name:        "Gran Fondo 2025",
			Description: "Трансфер велосипедов на Gran Fondo 2025.",
			DropoffOptions: []domain.Point{
				{
					PointName: "Староватутинский пр. 12с13",
					AvailableSlots: map[string][]string{
						"2025-07-07": {"10:00-12:00"},
					},
				},
				{
					PointName: "ул. Крылатская д.10",
					AvailableSlots: map[string][]string{
						"2025-07-08": {"12:00-15:00", "18:00-21:00"},
					},
				},
			},
			PickupOptions: []domain.Point{
				{
					PointName: "Выдача перед стартом",
					AvailableSlots: map[string][]string{
						"2025-07-12": {"06:30-08:00"},
					},
				},
			},
		},
		{
			ID:   "E2",
			Name: "Летний веломарафон 2025",
			DropoffOptions: []domain.Point{
				{
					PointName: "ул. Крылатская д.10",
					AvailableSlots: map[string][]string{
						"2025-08-01 - 2025-08-03": {"10:00-19:00"},
					},
				},
			},
		},
	}
}

func completeProfile(userID int64) *domain.ClientProfile {
	return &domain.ClientProfile{
		UserID:              userID,
		FullName:            "Иванов Иван Иванович",
		PhoneNumber:         "79104904444",
		PassportNumber:      "1234 567890",
		PassportIssuedBy:    "ОВД г. Москвы по району Арбат",
		PassportIssueDate:   "12.01.2023",
		RegistrationAddress: "г. Москва, ул. Ленина, д. 1",
	}
}

type flowFixture struct {
	flow     *FlowService
	profiles *mocks.MockProfileRepo
	apps     *mocks.MockApplicationRepo
	notifier *mocks.MockApplicationNotifier
}

func newFlowFixture(t *testing.T, events []domain.CatalogEvent) *flowFixture {
	t.Helper()
	profiles := mocks.NewMockProfileRepo(t)
	apps := mocks.NewMockApplicationRepo(t)
	notifier := mocks.NewMockApplicationNotifier(t)

	flow := NewFlowService(catalog.New(events), profiles, apps, notifier, newTestLogger(t))
	return &flowFixture{flow: flow, profiles: profiles, apps: apps, notifier: notifier}
}

func newSession() *domain.Session {
	sess := domain.NewSession(101, 202)
	sess.Username = "velofan"
	return sess
}

// advanceToSummary walks a fresh session to the final summary screen
// via the happy path: E1, first point, 2025-07-07, no repair.
func advanceToSummary(t *testing.T, f *flowFixture, sess *domain.Session) *domain.Screen {
	t.Helper()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)

	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	_, err = f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-07-07",
	})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.RepairNotNeeded{})
	require.NoError(t, err)
	require.Equal(t, domain.StateFinalSummary, sess.State)
	return scr
}

func optionLabels(scr *domain.Screen) []string {
	labels := make([]string, 0, len(scr.Options))
	for _, o := range scr.Options {
		labels = append(labels, o.Label)
	}
	return labels
}

// --- commands ---

func TestFlow_StartCommand_ShowsMainMenu(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)

	scr, err := f.flow.HandleCommand(context.Background(), sess, domain.CommandStart)

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Contains(t, scr.Text, "Здравствуйте")
	assert.Len(t, scr.Options, 3)
}

func TestFlow_StartCommand_GreetsRegisteredUser(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)

	scr, err := f.flow.HandleCommand(context.Background(), sess, domain.CommandStart)

	require.NoError(t, err)
	assert.Contains(t, scr.Text, "Иванов Иван Иванович")
}

func TestFlow_CancelCommand_ResetsMidFlow(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)
	require.Equal(t, domain.StateChoosingPointDate, sess.State)

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)

	scr, err := f.flow.HandleCommand(ctx, sess, domain.CommandCancel)

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Equal(t, domain.SessionData{}, sess.Data)
	assert.Contains(t, scr.Text, "Операция отменена")
}

func TestFlow_CancelCommand_DuringRegistration(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)

	_, err := f.flow.HandleAction(ctx, sess, domain.StartRegistration{})
	require.NoError(t, err)
	_, err = f.flow.HandleText(ctx, sess, "Иванов Иван Иванович")
	require.NoError(t, err)
	require.Equal(t, domain.StateRegPhone, sess.State)

	_, err = f.flow.HandleCommand(ctx, sess, domain.CommandCancel)

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Empty(t, sess.Data.FullName)
}

// --- event selection ---

func TestFlow_StartBooking_PreselectsFirstEvent(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()

	scr, err := f.flow.HandleAction(context.Background(), sess, domain.StartBooking{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
	assert.Equal(t, "E1", sess.Data.SelectedEventID)
	assert.Contains(t, optionLabels(scr), "✅ Gran Fondo 2025")
	assert.Contains(t, scr.Text, "Gran Fondo 2025")
}

func TestFlow_StartBooking_EmptyCatalog(t *testing.T) {
	f := newFlowFixture(t, nil)
	sess := newSession()

	scr, err := f.flow.HandleAction(context.Background(), sess, domain.StartBooking{})

	require.NoError(t, err)
	assert.Empty(t, sess.Data.SelectedEventID)
	assert.Contains(t, scr.Text, "нет доступных событий")

	scr, err = f.flow.HandleAction(context.Background(), sess, domain.ContinueEvent{})
	require.NoError(t, err)
	assert.NotEmpty(t, scr.Alert)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
}

func TestFlow_SelectEvent_SwitchesSelection(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectEvent{EventID: "E2"})

	require.NoError(t, err)
	assert.Equal(t, "E2", sess.Data.SelectedEventID)
	assert.Contains(t, optionLabels(scr), "✅ Летний веломарафон 2025")
}

func TestFlow_SelectEvent_ReselectIsNoOp(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	dataBefore := sess.Data

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectEvent{EventID: "E1"})

	require.NoError(t, err)
	assert.Equal(t, dataBefore, sess.Data)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
	assert.Empty(t, scr.Text)
	assert.Contains(t, scr.Alert, "уже выбрано")
}

func TestFlow_SelectEvent_UnknownEventClearsSelection(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectEvent{EventID: "GONE"})

	require.NoError(t, err)
	assert.Empty(t, sess.Data.SelectedEventID)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
	assert.Contains(t, scr.Alert, "Событие не найдено")
}

func TestFlow_ContinueEvent_AdvancesToPointDate(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingPointDate, sess.State)
	assert.Equal(t, "Gran Fondo 2025", sess.Data.EventName)
	// one button per point+date combination, plus back
	assert.Len(t, scr.Options, 3)
	assert.Equal(t, "07.07 Староватутинский пр. 12с13", scr.Options[0].Label)
	assert.Equal(t, "08.07 ул. Крылатская д.10", scr.Options[1].Label)
}

// --- slot selection ---

func TestFlow_SelectSlot_SingleWindowAutoPicked(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-07-07",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateAskingService, sess.State)
	assert.Equal(t, "Староватутинский пр. 12с13", sess.Data.PointName)
	assert.Equal(t, "2025-07-07", sess.Data.SelectedDate)
	assert.Equal(t, "10:00-12:00", sess.Data.SelectedTime)
	assert.Contains(t, scr.Text, "10:00-12:00")
	assert.True(t, scr.ExpectsText)
}

func TestFlow_SelectSlot_FirstOfSeveralWindows(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 1, Date: "2025-07-08",
	})

	require.NoError(t, err)
	assert.Equal(t, "12:00-15:00", sess.Data.SelectedTime)
	assert.Contains(t, scr.Text, "12:00-15:00, 18:00-21:00")
}

func TestFlow_SelectSlot_StaleEventFallsBack(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "GONE", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-07-07",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
	assert.Empty(t, sess.Data.SelectedEventID)
	assert.Empty(t, sess.Data.EventName)
	assert.Contains(t, scr.Alert, "Событие не найдено")
}

func TestFlow_SelectSlot_BadPointIndex(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 9, Date: "2025-07-07",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingPointDate, sess.State)
	assert.Contains(t, scr.Alert, "Точка сдачи не найдена")
}

func TestFlow_SelectSlot_NoWindowsOnDate(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingPointDate, sess.State)
	assert.Empty(t, sess.Data.SelectedDate)
	assert.Contains(t, scr.Alert, "нет доступных временных слотов")
}

// --- back navigation ---

func TestFlow_BackFromPointDate_ClearsSlotKeepsEvent(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.Back{To: domain.StateChoosingEvent})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
	assert.Equal(t, "E1", sess.Data.SelectedEventID)
	assert.Contains(t, optionLabels(scr), "✅ Gran Fondo 2025")
}

func TestFlow_BackFromRepair_ClearsSlot(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-07-07",
	})
	require.NoError(t, err)

	_, err = f.flow.HandleAction(ctx, sess, domain.Back{To: domain.StateChoosingPointDate})

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingPointDate, sess.State)
	assert.Empty(t, sess.Data.PointName)
	assert.Empty(t, sess.Data.SelectedDate)
	assert.Empty(t, sess.Data.SelectedTime)
	assert.Nil(t, sess.Data.PreRepair)
	// the selected event survives
	assert.Equal(t, "E1", sess.Data.SelectedEventID)
}

func TestFlow_BackFromSummary_ClearsRepairAnswer(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)
	advanceToSummary(t, f, sess)
	require.NotNil(t, sess.Data.PreRepair)

	scr, err := f.flow.HandleAction(ctx, sess, domain.Back{To: domain.StateAskingService})

	require.NoError(t, err)
	assert.Equal(t, domain.StateAskingService, sess.State)
	assert.Nil(t, sess.Data.PreRepair)
	assert.True(t, scr.ExpectsText)
	// the slot choice survives
	assert.Equal(t, "2025-07-07", sess.Data.SelectedDate)
}

// --- repair question ---

func TestFlow_RepairComment_SetsRepairAndShowsSummary(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-07-07",
	})
	require.NoError(t, err)

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)

	scr, err := f.flow.HandleText(ctx, sess, "  проверить переключатель  ")

	require.NoError(t, err)
	assert.Equal(t, domain.StateFinalSummary, sess.State)
	require.NotNil(t, sess.Data.PreRepair)
	assert.True(t, *sess.Data.PreRepair)
	assert.Equal(t, "проверить переключатель", sess.Data.PreRepairComment)
	assert.Contains(t, scr.Text, "проверить переключатель")
}

func TestFlow_RepairComment_EmptyReprompts(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.ContinueEvent{})
	require.NoError(t, err)
	_, err = f.flow.HandleAction(ctx, sess, domain.SelectSlot{
		EventID: "E1", Kind: domain.PointKindDropoff, PointIndex: 0, Date: "2025-07-07",
	})
	require.NoError(t, err)

	scr, err := f.flow.HandleText(ctx, sess, "   ")

	require.NoError(t, err)
	assert.Equal(t, domain.StateAskingService, sess.State)
	assert.Nil(t, sess.Data.PreRepair)
	assert.Contains(t, scr.Text, "не может быть пустым")
}

// --- summary and submission ---

func TestFlow_Summary_OffersConfirmToRegistered(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)

	scr := advanceToSummary(t, f, sess)

	labels := optionLabels(scr)
	assert.Contains(t, labels, "✅ Оформить")
	assert.NotContains(t, labels, "📝 Регистрация")
	assert.Contains(t, scr.Text, "не требуется")
}

func TestFlow_Summary_OffersRegistrationToUnregistered(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)

	scr := advanceToSummary(t, f, sess)

	labels := optionLabels(scr)
	assert.Contains(t, labels, "📝 Регистрация")
	assert.NotContains(t, labels, "✅ Оформить")
}

func TestFlow_Confirm_SubmitsExactlyOnce(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	profile := completeProfile(101)
	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(profile, nil)

	advanceToSummary(t, f, sess)

	var created *domain.Application
	f.apps.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, a *domain.Application) {
		created = a
	}).Return(nil).Once()
	f.notifier.EXPECT().NotifyApplicationCreated(mock.Anything, profile, mock.Anything).Return()

	scr, err := f.flow.HandleAction(ctx, sess, domain.ConfirmApplication{})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(101), created.UserID)
	assert.Equal(t, "E1", created.EventID)
	assert.Equal(t, "Gran Fondo 2025", created.EventName)
	assert.Equal(t, "2025-07-07", created.SelectedDate)
	assert.Equal(t, "10:00-12:00", created.SelectedTime)
	assert.False(t, created.PreRepair)

	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Equal(t, domain.SessionData{}, sess.Data)
	assert.Contains(t, scr.Text, "#"+created.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestFlow_Confirm_GateRedirectsUnregistered(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)

	advanceToSummary(t, f, sess)

	scr, err := f.flow.HandleAction(ctx, sess, domain.ConfirmApplication{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateRegFullName, sess.State)
	assert.True(t, sess.Data.ResumeToSummary)
	assert.Contains(t, scr.Text, "необходимо зарегистрироваться")
	// no Create expectation: submission must not happen
}

func TestFlow_Confirm_RepoErrorKeepsState(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)
	advanceToSummary(t, f, sess)

	f.apps.EXPECT().Create(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := f.flow.HandleAction(ctx, sess, domain.ConfirmApplication{})

	require.Error(t, err)
	assert.Equal(t, domain.StateFinalSummary, sess.State)
	assert.Equal(t, "E1", sess.Data.SelectedEventID)
}

func TestFlow_CancelApplication_ResetsToMainMenu(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)
	advanceToSummary(t, f, sess)

	scr, err := f.flow.HandleAction(ctx, sess, domain.CancelApplication{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Equal(t, domain.SessionData{}, sess.Data)
	assert.Contains(t, scr.Text, "отменено")
}

// --- contract violations ---

func TestFlow_UnknownActionForState_AlertsAndKeepsSession(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)
	stateBefore, dataBefore := sess.State, sess.Data

	scr, err := f.flow.HandleAction(ctx, sess, domain.ConfirmApplication{})

	require.NoError(t, err)
	assert.Equal(t, stateBefore, sess.State)
	assert.Equal(t, dataBefore, sess.Data)
	assert.NotEmpty(t, scr.Alert)
	assert.Empty(t, scr.Text)
}

func TestFlow_FreeTextOutsideTextSteps_Fallback(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	_, err := f.flow.HandleAction(ctx, sess, domain.StartBooking{})
	require.NoError(t, err)

	scr, err := f.flow.HandleText(ctx, sess, "привет")

	require.NoError(t, err)
	assert.Equal(t, domain.StateChoosingEvent, sess.State)
	assert.True(t, strings.Contains(scr.Text, "не понимаю"))
}

func TestFlow_InfoScreen_RoundTrip(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	scr, err := f.flow.HandleAction(ctx, sess, domain.ShowInfo{})
	require.NoError(t, err)
	assert.Equal(t, domain.StateInfoScreen, sess.State)
	assert.Contains(t, scr.Text, "BikeCase")

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound)

	_, err = f.flow.HandleAction(ctx, sess, domain.Back{To: domain.StateMainMenu})
	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
}
