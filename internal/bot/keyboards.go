package bot

import (
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

func buttons(labels ...string) []Button {
	out := make([]Button, len(labels))
	for i, l := range labels {
		out[i] = Button{Text: l}
	}
	return out
}

func languageKeyboard() *Keyboard {
	lb := i18n.LanguageButton
	return &Keyboard{
		Rows: [][]Button{
			buttons(lb[i18n.Farsi], lb[i18n.English]),
			buttons(lb[i18n.Arabic], lb[i18n.Russian]),
		},
		OneTime: true,
	}
}

func mainKeyboard(lang i18n.Lang) *Keyboard {
	l := func(k i18n.Key) string { return i18n.Localize(k, lang) }
	return &Keyboard{Rows: [][]Button{
		buttons(l(i18n.KeyBtnServices), l(i18n.KeyBtnHours)),
		buttons(l(i18n.KeyBtnBook), l(i18n.KeyBtnAddress)),
		buttons(l(i18n.KeyBtnAsk), l(i18n.KeyBtnMyAppointments)),
	}}
}

func contactKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{
		Rows:    [][]Button{{{Text: i18n.Localize(i18n.KeyBtnShareContact, lang), RequestContact: true}}},
		OneTime: true,
	}
}

func removeKeyboard() *Keyboard {
	return &Keyboard{Remove: true}
}

func cancelKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{Rows: [][]Button{buttons(i18n.Localize(i18n.KeyBtnCancel, lang))}}
}

func doctorKeyboard(lang i18n.Lang) *Keyboard {
	return &Keyboard{Rows: [][]Button{
		buttons(i18n.Localize(i18n.KeyBtnNoPreference, lang)),
		buttons(i18n.Localize(i18n.KeyBtnCancel, lang)),
	}}
}

// slotKeyboard lays offered slots out two per row, then a cancel row.
func slotKeyboard(offered []time.Time, loc *time.Location, lang i18n.Lang) *Keyboard {
	var rows [][]Button
	for i := 0; i < len(offered); i += 2 {
		row := buttons(slots.Label(offered[i], loc))
		if i+1 < len(offered) {
			row = append(row, Button{Text: slots.Label(offered[i+1], loc)})
		}
		rows = append(rows, row)
	}
	rows = append(rows, buttons(i18n.Localize(i18n.KeyBtnCancel, lang)))
	return &Keyboard{Rows: rows}
}
