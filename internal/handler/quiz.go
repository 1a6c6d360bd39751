package handler

import (
	"errors"
	"fmt"
	"strconv"

	"polyglot/internal/domain"
	"polyglot/internal/quiz"
	"polyglot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleViewTests shows the pick-a-dictionary-to-test list
func (h *Handler) handleViewTests(c tele.Context) error {
	userID := c.Sender().ID

	dictionaries, err := h.dicts.Dictionaries(userID)
	if err != nil {
		return h.fail(c, "Failed to load dictionaries", err)
	}

	h.sessions.Set(userID, session.Session{Mode: session.ModeChoosingQuizDict})

	names := dictionaries.Names()
	text := fmt.Sprintf("📝 <b>%s, choose dictionary to test:</b>\n\n%s\n%s",
		c.Sender().FirstName, divider, numberedDictList(names))
	markup := dictListMarkup(names, uniqueChooseTest, btnBackToMain)

	return h.editOrSend(c, text, markup)
}

// handleChooseTest offers the two drill directions for the picked
// dictionary
func (h *Handler) handleChooseTest(c tele.Context) error {
	name := c.Data()
	reversed := domain.Dictionary{Name: name}.ReversedName()

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(name, uniqueTestForward, name)),
		markup.Row(markup.Data(reversed, uniqueTestReversed, name)),
		markup.Row(btnBackToTests),
	)

	return h.editOrSend(c, "Choose test option:", markup)
}

// handleStartForward starts a quiz in the dictionary's own direction
func (h *Handler) handleStartForward(c tele.Context) error {
	return h.startQuiz(c, false)
}

// handleStartReversed starts a quiz with keys and translations swapped
func (h *Handler) handleStartReversed(c tele.Context) error {
	return h.startQuiz(c, true)
}

// startQuiz snapshots the dictionary into a shuffled run and shows the
// first question
func (h *Handler) startQuiz(c tele.Context, reversed bool) error {
	userID := c.Sender().ID
	name := c.Data()

	dict, err := h.dicts.Dictionary(userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.alert(c, fmt.Sprintf("❌ Dictionary %s not found.", name))
		}
		return h.fail(c, "Failed to load dictionary", err)
	}

	run, err := quiz.Start(dict, reversed, nil)
	if err != nil {
		if errors.Is(err, quiz.ErrNotEnoughWords) {
			return h.alert(c, fmt.Sprintf(
				"Dictionary '%s' has less than %d words. Please add more words to start a test.",
				name, quiz.MinWords,
			))
		}
		return h.fail(c, "Failed to start quiz", err)
	}

	h.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.String("dictionary", run.DictName),
		zap.Int("words", run.Len()),
	)

	h.sessions.Set(userID, session.Session{Mode: session.ModeOnQuiz, Quiz: run})
	return h.renderQuestion(c, run)
}

// renderQuestion shows the current question with its answer options.
// Option buttons carry only the option index; the correct answer stays
// in the session for grading.
func (h *Handler) renderQuestion(c tele.Context, run *quiz.Run) error {
	markup := &tele.ReplyMarkup{}

	btns := make([]tele.Btn, 0, len(run.Options)+1)
	for i, opt := range run.Options {
		btns = append(btns, markup.Data(opt, uniqueAnswer, strconv.Itoa(i)))
	}
	btns = append(btns, btnBackToTests)
	markup.Inline(arrange(markup, btns, []int{3, 2, 1})...)

	text := fmt.Sprintf("❓ What is the translation of <b>%s</b>?", run.Word)
	return h.editOrSend(c, text, markup)
}

// handleAnswer grades the chosen option and re-renders the options with
// correctness marks
func (h *Handler) handleAnswer(c tele.Context) error {
	userID := c.Sender().ID
	sess := h.sessions.Get(userID)

	// Only one attempt per question; repeated taps are acknowledged
	// without effect
	if sess.Mode == session.ModeAnswered {
		return c.Respond()
	}
	if sess.Mode != session.ModeOnQuiz || sess.Quiz == nil {
		return c.Respond()
	}

	run := sess.Quiz
	idx, err := strconv.Atoi(c.Data())
	if err != nil || idx < 0 || idx >= len(run.Options) {
		return c.Respond()
	}

	chosen := run.Options[idx]
	marked, correct := run.Grade(chosen)

	sess.Mode = session.ModeAnswered
	h.sessions.Set(userID, sess)

	markup := &tele.ReplyMarkup{}
	btns := make([]tele.Btn, 0, len(marked))
	for i, label := range marked {
		btns = append(btns, markup.Data(label, uniqueAnswer, strconv.Itoa(i)))
	}
	rows := arrange(markup, btns, []int{3, 2})
	rows = append(rows, markup.Row(btnNextQuestion), markup.Row(btnBackToTests))
	markup.Inline(rows...)

	prefix := "❌ Incorrect!\n"
	if correct {
		prefix = "✅ Correct!\n"
	}
	text := prefix + fmt.Sprintf("❓ What is the translation of <b>%s</b>?", run.Word)
	return h.editOrSend(c, text, markup)
}

// handleNextQuestion advances the run, reshuffling when a pass is done
func (h *Handler) handleNextQuestion(c tele.Context) error {
	userID := c.Sender().ID
	sess := h.sessions.Get(userID)

	if sess.Mode != session.ModeAnswered || sess.Quiz == nil {
		return c.Respond()
	}

	sess.Quiz.Next()
	sess.Mode = session.ModeOnQuiz
	h.sessions.Set(userID, sess)

	return h.renderQuestion(c, sess.Quiz)
}
