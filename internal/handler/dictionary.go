package handler

import (
	"errors"
	"fmt"

	"polyglot/internal/domain"
	"polyglot/internal/paginator"
	"polyglot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleViewDicts shows the user's dictionary list
func (h *Handler) handleViewDicts(c tele.Context) error {
	return h.renderDictList(c)
}

// handleBackToDicts abandons the current flow and shows the list again
func (h *Handler) handleBackToDicts(c tele.Context) error {
	h.sessions.Reset(c.Sender().ID)
	return h.renderDictList(c)
}

// dictListView loads the user's dictionaries and builds the list view
func (h *Handler) dictListView(c tele.Context) (string, *tele.ReplyMarkup, error) {
	dictionaries, err := h.dicts.Dictionaries(c.Sender().ID)
	if err != nil {
		return "", nil, err
	}

	names := dictionaries.Names()
	text := dictListText(c.Sender().FirstName, names)
	markup := dictListMarkup(names, uniqueViewDict, btnAddDict, btnDeleteDict, btnBackToMain)
	return text, markup, nil
}

// renderDictList renders the numbered dictionary list with its actions
func (h *Handler) renderDictList(c tele.Context) error {
	text, markup, err := h.dictListView(c)
	if err != nil {
		return h.fail(c, "Failed to load dictionaries", err)
	}
	return h.editOrSend(c, text, markup)
}

// renderDictListAnswered re-renders the list behind a callback that an
// alert has already answered, so the query is not responded to twice
func (h *Handler) renderDictListAnswered(c tele.Context) error {
	text, markup, err := h.dictListView(c)
	if err != nil {
		h.logger.Error("Failed to load dictionaries",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Send("⚠️ Something went wrong. Please try again later.")
	}
	return h.editAnswered(c, text, markup)
}

// handleAddDict starts the create-dictionary flow with the first
// language pick
func (h *Handler) handleAddDict(c tele.Context) error {
	userID := c.Sender().ID

	dictionaries, err := h.dicts.Dictionaries(userID)
	if err != nil {
		return h.fail(c, "Failed to load dictionaries", err)
	}
	if len(dictionaries) >= domain.MaxDictionaries {
		return h.alert(c, "❌ You can't create more than 🔟 dictionaries.")
	}

	h.sessions.Set(userID, session.Session{Mode: session.ModeChoosingFirstLanguage})

	return h.editOrSend(c,
		"🌍 <b>Create Dictionary</b>\n\nPlease choose the <b>first language</b>.",
		languageMarkup(""),
	)
}

// handleLanguage advances the create-dictionary flow one language at a
// time. The second pick mints the dictionary name and creates it.
func (h *Handler) handleLanguage(c tele.Context) error {
	userID := c.Sender().ID
	lang := c.Data()
	sess := h.sessions.Get(userID)

	switch sess.Mode {
	case session.ModeChoosingFirstLanguage:
		sess.FirstLanguage = lang
		sess.Mode = session.ModeChoosingSecondLanguage
		h.sessions.Set(userID, sess)

		text := fmt.Sprintf(
			"🌍 <b>Choose the second language</b>\n\nFirst language selected: <b>%s</b>\n\nPlease choose the second language.",
			lang,
		)
		return h.editOrSend(c, text, languageMarkup(lang))

	case session.ModeChoosingSecondLanguage:
		// A second pick without a first one is a stale button
		if sess.FirstLanguage == "" {
			return c.Respond()
		}

		name := sess.FirstLanguage + domain.NameSeparator + lang
		if err := h.dicts.CreateDictionary(userID, name); err != nil {
			if errors.Is(err, domain.ErrDictionaryLimit) {
				return h.alert(c, "❌ You can't create more than 🔟 dictionaries.")
			}
			return h.fail(c, "Failed to create dictionary", err)
		}

		h.logger.Info("Dictionary created",
			zap.Int64("user_id", userID),
			zap.String("name", name),
		)

		h.sessions.Reset(userID)
		if err := h.alert(c, fmt.Sprintf("✅ Dictionary %s added successfully!", name)); err != nil {
			h.logger.Warn("Failed to show alert", zap.Error(err))
		}
		return h.renderDictListAnswered(c)

	default:
		return c.Respond()
	}
}

// handleDeleteDict shows the pick-a-dictionary-to-delete list
func (h *Handler) handleDeleteDict(c tele.Context) error {
	userID := c.Sender().ID

	dictionaries, err := h.dicts.Dictionaries(userID)
	if err != nil {
		return h.fail(c, "Failed to load dictionaries", err)
	}

	names := dictionaries.Names()
	text := fmt.Sprintf("🗑️ <b>%s, choose a dictionary to delete:</b>\n\n%s\n%s",
		c.Sender().FirstName, divider, numberedDictList(names))
	markup := dictListMarkup(names, uniqueConfirmDelete, btnStopToDicts)

	return h.editOrSend(c, text, markup)
}

// handleConfirmDelete asks for confirmation before deleting
func (h *Handler) handleConfirmDelete(c tele.Context) error {
	name := c.Data()

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("✅ Confirm", uniqueDoDelete, name)),
		markup.Row(btnBackToDicts),
	)

	text := fmt.Sprintf(
		"🗑️ <b>Confirm Deletion</b>\n\nAre you sure you want to delete the dictionary <b>%s</b>?",
		name,
	)
	return h.editOrSend(c, text, markup)
}

// handleDoDelete deletes the confirmed dictionary and re-renders the list
func (h *Handler) handleDoDelete(c tele.Context) error {
	userID := c.Sender().ID
	name := c.Data()

	if err := h.dicts.DeleteDictionary(userID, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.alert(c, fmt.Sprintf("❌ Dictionary %s not found.", name))
		}
		return h.fail(c, "Failed to delete dictionary", err)
	}

	h.logger.Info("Dictionary deleted",
		zap.Int64("user_id", userID),
		zap.String("name", name),
	)

	if err := h.alert(c, fmt.Sprintf("🗑️ Dictionary %s deleted successfully!", name)); err != nil {
		h.logger.Warn("Failed to show alert", zap.Error(err))
	}
	return h.renderDictListAnswered(c)
}

// handleOpenDict opens a dictionary on its first page. Also the target
// of every Back button inside the dictionary sub-flows.
func (h *Handler) handleOpenDict(c tele.Context) error {
	userID := c.Sender().ID
	name := c.Data()

	h.sessions.Set(userID, session.Session{
		Mode:     session.ModeDictOpen,
		DictName: name,
		Page:     1,
	})

	return h.renderDictPage(c, name, 1)
}

// renderDictPage renders one page of the open dictionary with its menu
func (h *Handler) renderDictPage(c tele.Context, name string, page int) error {
	userID := c.Sender().ID

	dict, err := h.dicts.Dictionary(userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.alert(c, fmt.Sprintf("❌ Dictionary %s not found.", name))
		}
		return h.fail(c, "Failed to load dictionary", err)
	}

	pg := paginator.New(dict.Words, page, wordsPerPage)
	start := (pg.Page() - 1) * wordsPerPage
	text := dictPageText(name, pg.Page(), start, pg.PageItems())

	return h.editOrSend(c, text, dictMenuMarkup())
}

// handleSwipeLeft pages the open dictionary backwards
func (h *Handler) handleSwipeLeft(c tele.Context) error {
	return h.swipe(c, -1)
}

// handleSwipeRight pages the open dictionary forwards
func (h *Handler) handleSwipeRight(c tele.Context) error {
	return h.swipe(c, +1)
}

// swipe moves the page cursor one step, clamping at the edges with a
// notice instead of wrapping around
func (h *Handler) swipe(c tele.Context, dir int) error {
	userID := c.Sender().ID
	sess := h.sessions.Get(userID)

	if sess.Mode != session.ModeDictOpen || sess.DictName == "" {
		return c.Respond()
	}

	dict, err := h.dicts.Dictionary(userID, sess.DictName)
	if err != nil {
		// The open dictionary may have been deleted from another message
		if errors.Is(err, domain.ErrNotFound) {
			return h.alert(c, fmt.Sprintf("❌ Dictionary %s not found.", sess.DictName))
		}
		return h.fail(c, "Failed to load dictionary", err)
	}

	pg := paginator.New(dict.Words, sess.Page, wordsPerPage)

	var items []domain.WordPair
	if dir < 0 {
		items, err = pg.Previous()
		if errors.Is(err, paginator.ErrNoPage) {
			return h.alert(c, "❌ This is the first page.")
		}
	} else {
		items, err = pg.Next()
		if errors.Is(err, paginator.ErrNoPage) {
			return h.alert(c, "❌ This is the last page.")
		}
	}
	if err != nil {
		return h.fail(c, "Failed to paginate dictionary", err)
	}

	sess.Page = pg.Page()
	h.sessions.Set(userID, sess)

	start := (pg.Page() - 1) * wordsPerPage
	text := dictPageText(sess.DictName, pg.Page(), start, items)
	return h.editOrSend(c, text, dictMenuMarkup())
}

// promptInDict switches the open dictionary into a text-expecting mode
// and shows a prompt with a back button
func (h *Handler) promptInDict(c tele.Context, mode session.Mode, prompt string) error {
	userID := c.Sender().ID
	sess := h.sessions.Get(userID)

	if sess.DictName == "" {
		return c.Respond()
	}

	sess.Mode = mode
	sess.Word1 = ""
	sess.EditWord = ""
	h.sessions.Set(userID, sess)

	return h.editOrSend(c, prompt, backToDictMarkup(sess.DictName))
}

// handleAddWords starts the two-step add-word flow
func (h *Handler) handleAddWords(c tele.Context) error {
	return h.promptInDict(c, session.ModeAddingWord1,
		"📝 <b>Add Words</b>\n\nPlease enter the <b>first word</b> for your pair.")
}

// handleDeleteWords asks which word pair to delete
func (h *Handler) handleDeleteWords(c tele.Context) error {
	return h.promptInDict(c, session.ModeDeletingWord,
		"🗑️ <b>Delete Words</b>\n\nPlease enter any word from the pair you want to delete.")
}

// handleEditWords asks which word pair to edit
func (h *Handler) handleEditWords(c tele.Context) error {
	return h.promptInDict(c, session.ModeEditingWord,
		"✏️ <b>Edit Words</b>\n\nPlease enter the word you want to edit.")
}

// handleSearchWords asks which word to look up
func (h *Handler) handleSearchWords(c tele.Context) error {
	return h.promptInDict(c, session.ModeSearchingWord,
		"🔎 <b>Search Words</b>\n\nPlease enter any word from the pair you want to search.")
}
