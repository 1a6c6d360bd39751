package handler

import (
	"strings"

	"polyglot/internal/service"
	"polyglot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// wordsPerPage is the page size of the dictionary word list
const wordsPerPage = 25

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	users    *service.UserService
	dicts    *service.DictionaryService
	sessions *session.Manager
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	dicts *service.DictionaryService,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		users:    users,
		dicts:    dicts,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages, dispatched by session mode
	h.bot.Handle(tele.OnText, h.handleText)

	// Main menu and dictionary list
	h.bot.Handle(&btnMyDicts, h.handleViewDicts)
	h.bot.Handle(&btnBackToMain, h.handleMainMenu)
	h.bot.Handle(&btnBackToDicts, h.handleBackToDicts)
	h.bot.Handle(&btnAddDict, h.handleAddDict)
	h.bot.Handle(&btnDeleteDict, h.handleDeleteDict)

	// Dynamic dictionary buttons (payload carries the dictionary name)
	h.bot.Handle(&tele.Btn{Unique: uniqueLang}, h.handleLanguage)
	h.bot.Handle(&tele.Btn{Unique: uniqueViewDict}, h.handleOpenDict)
	h.bot.Handle(&tele.Btn{Unique: uniqueConfirmDelete}, h.handleConfirmDelete)
	h.bot.Handle(&tele.Btn{Unique: uniqueDoDelete}, h.handleDoDelete)

	// Open-dictionary menu
	h.bot.Handle(&btnSwipeLeft, h.handleSwipeLeft)
	h.bot.Handle(&btnSwipeRight, h.handleSwipeRight)
	h.bot.Handle(&btnSearchWords, h.handleSearchWords)
	h.bot.Handle(&btnAddWords, h.handleAddWords)
	h.bot.Handle(&btnDeleteWords, h.handleDeleteWords)
	h.bot.Handle(&btnEditWords, h.handleEditWords)

	// Quiz flow
	h.bot.Handle(&btnTests, h.handleViewTests)
	h.bot.Handle(&btnBackToTests, h.handleViewTests)
	h.bot.Handle(&btnNextQuestion, h.handleNextQuestion)
	h.bot.Handle(&tele.Btn{Unique: uniqueChooseTest}, h.handleChooseTest)
	h.bot.Handle(&tele.Btn{Unique: uniqueTestForward}, h.handleStartForward)
	h.bot.Handle(&tele.Btn{Unique: uniqueTestReversed}, h.handleStartReversed)
	h.bot.Handle(&tele.Btn{Unique: uniqueAnswer}, h.handleAnswer)

	// Anything else is a stale button from a previous render
	h.bot.Handle(tele.OnCallback, h.handleStaleCallback)
}

// Callback uniques for dynamically minted buttons
const (
	uniqueLang          = "lang"
	uniqueViewDict      = "view_dict"
	uniqueConfirmDelete = "confirm_delete"
	uniqueDoDelete      = "do_delete"
	uniqueChooseTest    = "choosetest"
	uniqueTestForward   = "test_fwd"
	uniqueTestReversed  = "test_rev"
	uniqueAnswer        = "answer"
)

// Static inline keyboard buttons
var (
	btnMyDicts = tele.Btn{
		Unique: "view_dicts",
		Text:   "📚 My Dictionaries",
	}
	btnTests = tele.Btn{
		Unique: "view_tests",
		Text:   "📝 Tests",
	}
	btnAddDict = tele.Btn{
		Unique: "add_dict",
		Text:   "➕ Add Dictionary",
	}
	btnDeleteDict = tele.Btn{
		Unique: "delete_dict",
		Text:   "🗑️ Delete Dictionary",
	}
	btnBackToMain = tele.Btn{
		Unique: "back_to_functions",
		Text:   "🔙 Back",
	}
	btnBackToDicts = tele.Btn{
		Unique: "back_to_dictionaries",
		Text:   "🔙 Back",
	}
	btnCancelToDicts = tele.Btn{
		Unique: "back_to_dictionaries",
		Text:   "❌ Cancel",
	}
	btnStopToDicts = tele.Btn{
		Unique: "back_to_dictionaries",
		Text:   "🛑 Cancel",
	}
	btnSwipeLeft = tele.Btn{
		Unique: "swipe_left",
		Text:   "⬅️",
	}
	btnSwipeRight = tele.Btn{
		Unique: "swipe_right",
		Text:   "➡️",
	}
	btnSearchWords = tele.Btn{
		Unique: "search_words",
		Text:   "🔎 Search Words",
	}
	btnAddWords = tele.Btn{
		Unique: "add_words",
		Text:   "➕ Add Words",
	}
	btnDeleteWords = tele.Btn{
		Unique: "delete_words",
		Text:   "🗑️ Delete Words",
	}
	btnEditWords = tele.Btn{
		Unique: "edit_words",
		Text:   "✏️ Edit Words",
	}
	btnBackToTests = tele.Btn{
		Unique: "back_to_tests",
		Text:   "🔙 Back",
	}
	btnNextQuestion = tele.Btn{
		Unique: "next_question",
		Text:   "➡️ Next question",
	}
)

// mainMenuMarkup returns the welcome menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnMyDicts, btnTests),
	)
	return menu
}

// handleStaleCallback acknowledges buttons whose flow the session has
// already left, so an old keyboard never errors out.
func (h *Handler) handleStaleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}
	h.logger.Debug("Ignoring stale callback",
		zap.String("unique", callback.Unique),
		zap.String("data", callback.Data),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// alert shows a popup notice on a callback
func (h *Handler) alert(c tele.Context, text string) error {
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

// editOrSend edits the message behind a callback, falling back to a new
// message when editing fails. Plain messages are always sent fresh.
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		// Already edited by another callback, just acknowledge
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// editAnswered rewrites the message behind a callback that has already
// been answered with an alert. Only the message is edited; a second
// Respond on the same query would error.
func (h *Handler) editAnswered(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Send(text, markup)
	}
	return nil
}

// fail logs an internal error and shows a generic notice without
// touching the session
func (h *Handler) fail(c tele.Context, msg string, err error) error {
	h.logger.Error(msg,
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	if c.Callback() != nil {
		return h.alert(c, "⚠️ Something went wrong. Please try again later.")
	}
	return c.Send("⚠️ Something went wrong. Please try again later.")
}
