package handler

import (
	"errors"
	"fmt"
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText dispatches free-text input by session mode. Text arriving
// in a mode that does not expect it is ignored.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.sessions.Get(userID)
	if !sess.Mode.ExpectsText() {
		return nil
	}

	if text == "" {
		return c.Send("❌ Please enter a word.", backToDictMarkup(sess.DictName))
	}

	switch sess.Mode {
	case session.ModeAddingWord1:
		return h.textFirstWord(c, sess, text)
	case session.ModeAddingWord2:
		return h.textSecondWord(c, sess, text)
	case session.ModeDeletingWord:
		return h.textDeleteWord(c, sess, text)
	case session.ModeEditingWord:
		return h.textEditWord(c, sess, text)
	case session.ModeAwaitingNewTranslation:
		return h.textNewTranslation(c, sess, text)
	case session.ModeSearchingWord:
		return h.textSearchWord(c, sess, text)
	}
	return nil
}

// textFirstWord stores the first half of a new pair and asks for the
// second
func (h *Handler) textFirstWord(c tele.Context, sess session.Session, text string) error {
	userID := c.Sender().ID

	sess.Word1 = text
	sess.Mode = session.ModeAddingWord2
	h.sessions.Set(userID, sess)

	msg := fmt.Sprintf(
		"📝 First word saved: <b>%s</b>\n\n🔤 Please enter the second word for the pair.",
		text,
	)
	return c.Send(msg, backToDictMarkup(sess.DictName))
}

// textSecondWord completes the pair and returns to the dictionary view
func (h *Handler) textSecondWord(c tele.Context, sess session.Session, text string) error {
	userID := c.Sender().ID

	err := h.dicts.UpsertWord(userID, sess.DictName, sess.Word1, text)
	if errors.Is(err, domain.ErrInvalidInput) {
		// Re-prompt in the same mode
		return c.Send("❌ Both words must be provided.", backToDictMarkup(sess.DictName))
	}
	if err != nil {
		return h.fail(c, "Failed to save word pair", err)
	}

	h.logger.Info("Word pair saved",
		zap.Int64("user_id", userID),
		zap.String("dictionary", sess.DictName),
		zap.String("word", sess.Word1),
	)

	return h.backToDict(c, sess)
}

// textDeleteWord deletes the pair matching the given word by either side
func (h *Handler) textDeleteWord(c tele.Context, sess session.Session, text string) error {
	userID := c.Sender().ID

	err := h.dicts.DeleteWord(userID, sess.DictName, text)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if sendErr := c.Send("❌ There is no such word in this dictionary."); sendErr != nil {
			return sendErr
		}
	case err != nil:
		return h.fail(c, "Failed to delete word", err)
	default:
		msg := fmt.Sprintf("🗑️ Word pair with '%s' deleted successfully!", domain.Normalize(text))
		if sendErr := c.Send(msg); sendErr != nil {
			return sendErr
		}
	}

	return h.backToDict(c, sess)
}

// textEditWord checks the word exists before asking for the replacement
func (h *Handler) textEditWord(c tele.Context, sess session.Session, text string) error {
	userID := c.Sender().ID

	_, err := h.dicts.SearchWord(userID, sess.DictName, text)
	if errors.Is(err, domain.ErrNotFound) {
		// Stay in editing mode so the user can try another word
		return c.Send("❌ There is no such word in this dictionary.", backToDictMarkup(sess.DictName))
	}
	if err != nil {
		return h.fail(c, "Failed to look up word", err)
	}

	sess.EditWord = domain.Normalize(text)
	sess.Mode = session.ModeAwaitingNewTranslation
	h.sessions.Set(userID, sess)

	return c.Send("✏️ Please enter the new translation:", backToDictMarkup(sess.DictName))
}

// textNewTranslation applies the edit and returns to the dictionary view
func (h *Handler) textNewTranslation(c tele.Context, sess session.Session, text string) error {
	userID := c.Sender().ID

	err := h.dicts.RenameWord(userID, sess.DictName, sess.EditWord, text)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
		if sendErr := c.Send("❌ There was an error updating the word."); sendErr != nil {
			return sendErr
		}
	case err != nil:
		return h.fail(c, "Failed to update word", err)
	default:
		if sendErr := c.Send("✅ Word updated successfully!"); sendErr != nil {
			return sendErr
		}
	}

	return h.backToDict(c, sess)
}

// textSearchWord shows the counterpart of the given word
func (h *Handler) textSearchWord(c tele.Context, sess session.Session, text string) error {
	userID := c.Sender().ID

	counterpart, err := h.dicts.SearchWord(userID, sess.DictName, text)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if sendErr := c.Send("❌ There is no such word in this dictionary."); sendErr != nil {
			return sendErr
		}
	case err != nil:
		return h.fail(c, "Failed to search word", err)
	default:
		msg := fmt.Sprintf("🔎 Translation of <b>%s</b>: <b>%s</b>", domain.Normalize(text), counterpart)
		if sendErr := c.Send(msg); sendErr != nil {
			return sendErr
		}
	}

	return h.backToDict(c, sess)
}

// backToDict clears the sub-flow and re-renders the open dictionary on
// its first page
func (h *Handler) backToDict(c tele.Context, sess session.Session) error {
	userID := c.Sender().ID

	h.sessions.Set(userID, session.Session{
		Mode:     session.ModeDictOpen,
		DictName: sess.DictName,
		Page:     1,
	})

	return h.renderDictPage(c, sess.DictName, 1)
}
