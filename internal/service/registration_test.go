package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikfrants/biketransfer/internal/domain"
)

func startRegistration(t *testing.T, f *flowFixture, sess *domain.Session) {
	t.Helper()
	f.profiles.EXPECT().GetByUserID(mock.Anything, sess.UserID).Return(nil, domain.ErrProfileNotFound)
	_, err := f.flow.HandleAction(context.Background(), sess, domain.StartRegistration{})
	require.NoError(t, err)
	require.Equal(t, domain.StateRegFullName, sess.State)
}

func TestRegistration_FullChain(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	startRegistration(t, f, sess)

	steps := []struct {
		input string
		next  domain.SessionState
	}{
		{"Иванов Иван Иванович", domain.StateRegPhone},
		{"+7 (910) 490-44-44", domain.StateRegPassportNumber},
		{"1234 567890", domain.StateRegIssuedBy},
		{"ОВД г. Москвы по району Арбат", domain.StateRegIssueDate},
		{"12.01.2023", domain.StateRegAddress},
	}
	for _, step := range steps {
		_, err := f.flow.HandleText(ctx, sess, step.input)
		require.NoError(t, err)
		require.Equal(t, step.next, sess.State)
	}

	var saved domain.ProfileUpdate
	f.profiles.EXPECT().Upsert(mock.Anything, int64(101), mock.Anything).Run(
		func(ctx context.Context, userID int64, upd domain.ProfileUpdate) {
			saved = upd
		}).Return(nil).Once()

	scr, err := f.flow.HandleText(ctx, sess, "г. Москва, ул. Ленина, д. 1")

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Contains(t, scr.Text, "успешно зарегистрированы")

	assert.Equal(t, "velofan", saved.Username)
	assert.Equal(t, "Иванов Иван Иванович", saved.FullName)
	assert.Equal(t, "79104904444", saved.PhoneNumber)
	assert.Equal(t, "1234 567890", saved.PassportNumber)
	assert.Equal(t, "ОВД г. Москвы по району Арбат", saved.PassportIssuedBy)
	assert.Equal(t, "12.01.2023", saved.PassportIssueDate)
	assert.Equal(t, "г. Москва, ул. Ленина, д. 1", saved.RegistrationAddress)

	// scratch fields are flushed after the upsert
	assert.Empty(t, sess.Data.FullName)
	assert.Empty(t, sess.Data.PassportNumber)
}

func TestRegistration_InvalidInputsReprompt(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	startRegistration(t, f, sess)

	cases := []struct {
		state domain.SessionState
		input string
	}{
		{domain.StateRegFullName, "Иванов"},
		{domain.StateRegFullName, "  "},
	}
	for _, tc := range cases {
		scr, err := f.flow.HandleText(ctx, sess, tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.state, sess.State)
		assert.Contains(t, scr.Text, "❌")
	}

	// advance to the phone step, then feed it garbage
	_, err := f.flow.HandleText(ctx, sess, "Иванов Иван")
	require.NoError(t, err)
	require.Equal(t, domain.StateRegPhone, sess.State)

	scr, err := f.flow.HandleText(ctx, sess, "12345")
	require.NoError(t, err)
	assert.Equal(t, domain.StateRegPhone, sess.State)
	assert.Contains(t, scr.Text, "корректный номер")
	assert.Empty(t, sess.Data.PhoneNumber)
}

func TestRegistration_AlreadyRegisteredShortCircuits(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()

	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)

	scr, err := f.flow.HandleAction(context.Background(), sess, domain.StartRegistration{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Contains(t, scr.Text, "уже зарегистрированы")
	assert.Contains(t, scr.Text, "Иванов Иван Иванович")
}

func TestRegistration_CancelButtonResets(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	startRegistration(t, f, sess)

	_, err := f.flow.HandleText(ctx, sess, "Иванов Иван Иванович")
	require.NoError(t, err)

	scr, err := f.flow.HandleAction(ctx, sess, domain.CancelRegistration{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Equal(t, domain.SessionData{}, sess.Data)
	assert.Contains(t, scr.Text, "Регистрация отменена")
}

func TestRegistration_ResumesToSummary(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	// the summary gate sends an unregistered user into the chain
	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(nil, domain.ErrProfileNotFound).Times(2)
	advanceToSummary(t, f, sess)

	_, err := f.flow.HandleAction(ctx, sess, domain.ConfirmApplication{})
	require.NoError(t, err)
	require.Equal(t, domain.StateRegFullName, sess.State)
	require.True(t, sess.Data.ResumeToSummary)

	inputs := []string{
		"Иванов Иван Иванович",
		"89104904444",
		"1234 567890",
		"ОВД г. Москвы по району Арбат",
		"12.01.2023",
	}
	for _, in := range inputs {
		_, err := f.flow.HandleText(ctx, sess, in)
		require.NoError(t, err)
	}

	f.profiles.EXPECT().Upsert(mock.Anything, int64(101), mock.Anything).Return(nil)
	// after the upsert the profile reads back complete
	f.profiles.EXPECT().GetByUserID(mock.Anything, int64(101)).Return(completeProfile(101), nil)

	scr, err := f.flow.HandleText(ctx, sess, "г. Москва, ул. Ленина, д. 1")

	require.NoError(t, err)
	assert.Equal(t, domain.StateFinalSummary, sess.State)
	assert.False(t, sess.Data.ResumeToSummary)
	assert.Contains(t, scr.Text, "успешно зарегистрированы")
	assert.Contains(t, optionLabels(scr), "✅ Оформить")
	// the booking draft survived the registration detour
	assert.Equal(t, "E1", sess.Data.SelectedEventID)
	assert.Equal(t, "2025-07-07", sess.Data.SelectedDate)
}

func TestRegistration_UpsertErrorStaysOnStep(t *testing.T) {
	f := newFlowFixture(t, testEvents())
	sess := newSession()
	ctx := context.Background()

	startRegistration(t, f, sess)

	inputs := []string{
		"Иванов Иван Иванович",
		"89104904444",
		"1234 567890",
		"ОВД г. Москвы по району Арбат",
		"12.01.2023",
	}
	for _, in := range inputs {
		_, err := f.flow.HandleText(ctx, sess, in)
		require.NoError(t, err)
	}

	f.profiles.EXPECT().Upsert(mock.Anything, int64(101), mock.Anything).Return(assert.AnError)

	_, err := f.flow.HandleText(ctx, sess, "г. Москва, ул. Ленина, д. 1")

	require.Error(t, err)
	assert.Equal(t, domain.StateRegAddress, sess.State)
	assert.Equal(t, "Иванов Иван Иванович", sess.Data.FullName)
}
