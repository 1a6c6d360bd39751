package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcomeText = "👋 Hello!\n\n" +
	"Welcome to the bot where you can create your own language dictionaries 📚 " +
	"and practice memorizing words 📝."

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.users.EnsureUser(userID); err != nil {
		return h.fail(c, "Failed to ensure user exists", err)
	}

	h.sessions.Reset(userID)
	return c.Send(welcomeText, mainMenuMarkup())
}

// handleMainMenu returns to the welcome menu, abandoning any flow
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.sessions.Reset(c.Sender().ID)
	return h.editOrSend(c, welcomeText, mainMenuMarkup())
}
