package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nikfrants/biketransfer/internal/domain"
)

const (
	mainMenuGreeting = "Здравствуйте! Это бот для оформления заявок на трансфер велосипедов. Выберите действие:"
	mainMenuReturn   = "С возвращением, %s! Выберите действие:"

	aboutText = "О сервисе BikeCase\n\n" +
		"BikeCase — трансфер велосипедов на спортивные мероприятия. " +
		"Мы доставим ваш велосипед до места старта и обратно, чтобы вы могли сосредоточиться на гонке.\n\n" +
		"• Бережная упаковка и транспортировка\n" +
		"• Пунктуальность и надежность\n" +
		"• Удобное оформление заявок"

	chooseEventText = "Выберите событие из списка ниже, чтобы увидеть его описание."
	noEventsText    = "В данный момент нет доступных событий для трансфера. Пожалуйста, попробуйте позже."

	repairQuestion = "Нужен ли велосипеду предварительный ремонт или сборка/разборка? " +
		"Нажмите «Нет, не требуется» или оставьте комментарий для механика. Например, «ТО» или «проверить всё»."

	unrecognizedText = "Я не понимаю эту команду. Пожалуйста, используйте кнопки или начните заново с /start."
)

func mainMenuScreen(profile *domain.ClientProfile) *domain.Screen {
	text := mainMenuGreeting
	if profile.IsComplete() {
		text = fmt.Sprintf(mainMenuReturn, profile.FullName)
	}
	return mainMenuScreenWithText(text)
}

func mainMenuScreenWithText(text string) *domain.Screen {
	return &domain.Screen{
		Text: text,
		Options: []domain.Option{
			{Label: "🚴 Подать заявку на трансфер", Action: domain.StartBooking{}},
			{Label: "📝 Регистрация", Action: domain.StartRegistration{}},
			{Label: "ℹ️ О сервисе", Action: domain.ShowInfo{}},
		},
	}
}

func infoScreen() *domain.Screen {
	return &domain.Screen{
		Text: aboutText,
		Options: []domain.Option{
			{Label: "⬅️ Назад", Action: domain.Back{To: domain.StateMainMenu}},
		},
	}
}

// eventsScreen lists the catalog events with a checkmark on the
// selected one and shows the selected event's description.
func eventsScreen(events []domain.CatalogEvent, selectedID string) *domain.Screen {
	text := chooseEventText
	opts := make([]domain.Option, 0, len(events)+2)
	for _, e := range events {
		label := e.Name
		if e.ID == selectedID {
			label = "✅ " + e.Name
			if e.Description != "" {
				text = e.Description
			}
		}
		opts = append(opts, domain.Option{Label: label, Action: domain.SelectEvent{EventID: e.ID}})
	}
	if len(events) == 0 {
		text = noEventsText
	}
	opts = append(opts,
		domain.Option{Label: "Далее ➡️", Action: domain.ContinueEvent{}},
		domain.Option{Label: "⬅️ Назад", Action: domain.Back{To: domain.StateMainMenu}},
	)
	return &domain.Screen{Text: text, Options: opts}
}

// pointDateScreen builds the combined point+date keyboard: one button
// per drop-off point and date key with at least one open time window,
// sorted by date.
func pointDateScreen(event *domain.CatalogEvent) *domain.Screen {
	type slotOption struct {
		sortKey string
		opt     domain.Option
	}

	var all []slotOption
	for idx, p := range event.DropoffOptions {
		for _, dateKey := range p.DateKeys() {
			all = append(all, slotOption{
				sortKey: dateKey,
				opt: domain.Option{
					Label: fmt.Sprintf("%s %s", formatDateKey(dateKey), shortPointName(p.PointName)),
					Action: domain.SelectSlot{
						EventID:    event.ID,
						Kind:       domain.PointKindDropoff,
						PointIndex: idx,
						Date:       dateKey,
					},
				},
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].sortKey < all[j].sortKey })

	opts := make([]domain.Option, 0, len(all)+1)
	for _, s := range all {
		opts = append(opts, s.opt)
	}
	opts = append(opts, domain.Option{Label: "⬅️ Назад", Action: domain.Back{To: domain.StateChoosingEvent}})

	return &domain.Screen{
		Text:    fmt.Sprintf("Выбрано событие: %s\nТеперь выберите место и дату сдачи велосипеда:", event.Name),
		Options: opts,
	}
}

func repairScreen(header string) *domain.Screen {
	text := repairQuestion
	if header != "" {
		text = header + "\n\n" + text
	}
	return &domain.Screen{
		Text: text,
		Options: []domain.Option{
			{Label: "Нет, не требуется", Action: domain.RepairNotNeeded{}},
			{Label: "⬅️ Назад", Action: domain.Back{To: domain.StateChoosingPointDate}},
		},
		ExpectsText: true,
	}
}

// summaryScreen shows the draft and offers confirmation only to users
// with a complete profile; everyone else is offered registration.
func summaryScreen(data *domain.SessionData, registered bool) *domain.Screen {
	opts := make([]domain.Option, 0, 3)
	if registered {
		opts = append(opts, domain.Option{Label: "✅ Оформить", Action: domain.ConfirmApplication{}})
	} else {
		opts = append(opts, domain.Option{Label: "📝 Регистрация", Action: domain.RegisterFromSummary{}})
	}
	opts = append(opts,
		domain.Option{Label: "⬅️ Назад", Action: domain.Back{To: domain.StateAskingService}},
		domain.Option{Label: "❌ Отменить", Action: domain.CancelApplication{}},
	)

	return &domain.Screen{
		Text:    fmt.Sprintf("Ваша заявка готова. Проверьте данные:\n\n%s\n\nЧто будем делать дальше?", formatSummary(data)),
		Options: opts,
	}
}

func formatSummary(data *domain.SessionData) string {
	var parts []string
	if data.EventName != "" {
		parts = append(parts, "Событие: "+data.EventName)
	}
	if data.PointName != "" {
		parts = append(parts, "Место сдачи: "+data.PointName)
	}
	if data.SelectedDate != "" {
		parts = append(parts, "Дата сдачи: "+formatDateKeyLong(data.SelectedDate))
	}
	if data.SelectedTime != "" {
		parts = append(parts, "Время сдачи: "+data.SelectedTime)
	}
	if data.PreRepair != nil {
		if *data.PreRepair {
			parts = append(parts, "Ремонт/сборка: "+data.PreRepairComment)
		} else {
			parts = append(parts, "Ремонт/сборка: не требуется")
		}
	}
	return strings.Join(parts, "\n")
}

// formatDateKey renders a date key as "02.01" or "02.01 - 02.01".
func formatDateKey(dateKey string) string {
	return formatDates(dateKey, "02.01")
}

// formatDateKeyLong renders a date key as "02.01.2006" (or the range).
func formatDateKeyLong(dateKey string) string {
	return formatDates(dateKey, "02.01.2006")
}

func formatDates(dateKey, layout string) string {
	format := func(s string) string {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return s
		}
		return t.Format(layout)
	}
	if start, end, ok := strings.Cut(dateKey, " - "); ok {
		return format(start) + " - " + format(end)
	}
	return format(dateKey)
}

// shortPointName trims the parenthesized tail off a point name for
// compact button labels.
func shortPointName(name string) string {
	if head, _, ok := strings.Cut(name, "("); ok {
		return strings.TrimSpace(head)
	}
	return strings.TrimSpace(name)
}
