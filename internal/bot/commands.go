package bot

import (
	"strings"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
)

type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionServices
	ActionHours
	ActionBook
	ActionAddress
	ActionAsk
	ActionMyAppointments
	ActionCancel
)

var actionKeys = map[Action]i18n.Key{
	ActionServices:       i18n.KeyBtnServices,
	ActionHours:          i18n.KeyBtnHours,
	ActionBook:           i18n.KeyBtnBook,
	ActionAddress:        i18n.KeyBtnAddress,
	ActionAsk:            i18n.KeyBtnAsk,
	ActionMyAppointments: i18n.KeyBtnMyAppointments,
	ActionCancel:         i18n.KeyBtnCancel,
}

var slashCommands = map[string]Action{
	"/start":        ActionStart,
	"/book":         ActionBook,
	"/services":     ActionServices,
	"/hours":        ActionHours,
	"/address":      ActionAddress,
	"/appointments": ActionMyAppointments,
	"/cancel":       ActionCancel,
}

var cancelSynonyms = []string{"cancel", "stop", "لغو", "انصراف", "إلغاء", "الغاء", "отмена", "отменить"}

var languageAliases = map[string]i18n.Lang{
	"fa": i18n.Farsi, "farsi": i18n.Farsi, "persian": i18n.Farsi, "فارسی": i18n.Farsi,
	"en": i18n.English, "english": i18n.English,
	"ar": i18n.Arabic, "arabic": i18n.Arabic, "العربية": i18n.Arabic,
	"ru": i18n.Russian, "russian": i18n.Russian, "русский": i18n.Russian,
}

// registry decodes button labels into actions. Labels are keyed by
// (language, action) and compared whole after case folding, never by substring.
type registry struct {
	actions   map[i18n.Lang]map[string]Action
	languages map[string]i18n.Lang
	cancel    map[string]bool
}

var commands = newRegistry()

func newRegistry() *registry {
	r := &registry{
		actions:   make(map[i18n.Lang]map[string]Action),
		languages: make(map[string]i18n.Lang),
		cancel:    make(map[string]bool),
	}

	for _, lang := range i18n.Supported {
		table := make(map[string]Action)
		for action, key := range actionKeys {
			table[i18n.Normalize(i18n.Localize(key, lang))] = action
		}
		r.actions[lang] = table

		r.languages[i18n.Normalize(i18n.LanguageButton[lang])] = lang
		r.cancel[i18n.Normalize(i18n.Localize(i18n.KeyBtnCancel, lang))] = true
	}
	for alias, lang := range languageAliases {
		r.languages[i18n.Normalize(alias)] = lang
	}
	for _, s := range cancelSynonyms {
		r.cancel[i18n.Normalize(s)] = true
	}
	r.cancel["/cancel"] = true
	return r
}

// Action decodes text, preferring the labels of lang.
func (r *registry) Action(text string, lang i18n.Lang) Action {
	if text == "" {
		return ActionNone
	}
	if strings.HasPrefix(text, "/") {
		cmd, _, _ := strings.Cut(text, " ")
		cmd, _, _ = strings.Cut(cmd, "@") // "/start@ClinicBot" in groups
		return slashCommands[strings.ToLower(cmd)]
	}

	n := i18n.Normalize(text)
	if a, ok := r.actions[lang][n]; ok {
		return a
	}
	for _, l := range i18n.Supported {
		if a, ok := r.actions[l][n]; ok {
			return a
		}
	}
	return ActionNone
}

func (r *registry) Language(text string) (i18n.Lang, bool) {
	lang, ok := r.languages[i18n.Normalize(text)]
	return lang, ok
}

func (r *registry) IsCancel(text string) bool {
	return r.cancel[i18n.Normalize(text)]
}

// IsReserved reports whether text is any known button label or command.
func (r *registry) IsReserved(text string) bool {
	if _, ok := r.Language(text); ok {
		return true
	}
	return r.IsCancel(text) || r.Action(text, i18n.Fallback) != ActionNone
}
