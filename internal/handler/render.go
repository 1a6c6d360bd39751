package handler

import (
	"fmt"
	"strings"

	"polyglot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// divider separates headers from list bodies in rendered views
const divider = "========================="

// emojiNums numbers the dictionary list buttons, 1-based
var emojiNums = []string{"", "1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// languages offered when creating a dictionary
var languages = []string{
	"🇬🇧 English",
	"🇪🇸 Spanish",
	"🇫🇷 French",
	"🇩🇪 German",
	"🇮🇹 Italian",
	"🇵🇹 Portuguese",
	"🇷🇺 Russian",
	"🇨🇳 Chinese",
	"🇯🇵 Japanese",
	"🇰🇷 Korean",
}

// numberedDictList renders dictionary names as an emoji-numbered list
func numberedDictList(names []string) string {
	if len(names) == 0 {
		return "No dictionaries yet."
	}
	lines := make([]string, 0, len(names))
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("%s <b>%s</b>", emojiNums[i+1], name))
	}
	return strings.Join(lines, "\n")
}

// dictListText renders the "your dictionaries" view body
func dictListText(firstName string, names []string) string {
	return fmt.Sprintf("📚 <b>%s, your dictionaries:</b>\n\n%s\n%s",
		firstName, divider, numberedDictList(names))
}

// dictPageText renders one page of a dictionary's word list. start is
// the zero-based index of the first pair so numbering stays global
// across pages.
func dictPageText(name string, page int, start int, pairs []domain.WordPair) string {
	if len(pairs) == 0 {
		return fmt.Sprintf("📖 <b>%s</b>\n\nNo words in this dictionary yet.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📖 <b>%s</b>\n%s\nCurrent page: %d\n", name, divider, page)
	for i, pair := range pairs {
		fmt.Fprintf(&b, "%d) <b>%s</b> - <b>%s</b>\n", start+i+1, pair.Word, pair.Translation)
	}
	return strings.TrimRight(b.String(), "\n")
}

// calcDictRows returns the keyboard row sizes for a dictionary list
// with n numbered buttons followed by three action buttons
// (add, delete, back) — the numbered buttons pack into rows of up to
// four, actions take the familiar 2+1 tail.
func calcDictRows(n int) []int {
	switch n {
	case 0:
		return []int{2, 1}
	case 1:
		return []int{1, 2, 1}
	case 2:
		return []int{2, 2, 1}
	case 3:
		return []int{3, 2, 1}
	case 4:
		return []int{3, 1, 2, 1}
	case 5:
		return []int{3, 2, 2, 1}
	case 6:
		return []int{4, 2, 2, 1}
	case 7:
		return []int{4, 3, 2, 1}
	case 8:
		return []int{4, 3, 1, 2, 1}
	case 9:
		return []int{4, 3, 2, 2, 1}
	default:
		return []int{4, 4, 2, 2, 1}
	}
}

// arrange splits buttons into rows of the given sizes. The last size is
// repeated for any remaining buttons.
func arrange(markup *tele.ReplyMarkup, btns []tele.Btn, sizes []int) []tele.Row {
	if len(sizes) == 0 {
		sizes = []int{2}
	}

	var rows []tele.Row
	i, s := 0, 0
	for i < len(btns) {
		size := sizes[len(sizes)-1]
		if s < len(sizes) {
			size = sizes[s]
			s++
		}
		end := i + size
		if end > len(btns) {
			end = len(btns)
		}
		rows = append(rows, markup.Row(btns[i:end]...))
		i = end
	}
	return rows
}

// dictListMarkup builds the numbered dictionary keyboard. unique is the
// callback namespace minted for the numbered buttons; the dictionary
// name travels as the payload.
func dictListMarkup(names []string, unique string, actions ...tele.Btn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	btns := make([]tele.Btn, 0, len(names)+len(actions))
	for i, name := range names {
		btns = append(btns, markup.Data(emojiNums[i+1], unique, name))
	}
	btns = append(btns, actions...)

	markup.Inline(arrange(markup, btns, calcDictRows(len(names)))...)
	return markup
}

// dictMenuMarkup builds the open-dictionary action keyboard
func dictMenuMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnSwipeLeft, btnSwipeRight),
		markup.Row(btnSearchWords, btnAddWords, btnDeleteWords),
		markup.Row(btnEditWords, btnBackToDicts),
	)
	return markup
}

// backToDictMarkup builds a single back button that reopens the
// dictionary, aborting the current text-expecting flow
func backToDictMarkup(dictName string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🔙 Back", uniqueViewDict, dictName)),
	)
	return markup
}

// languageMarkup builds the language picker, skipping an already chosen
// language, with a cancel button at the bottom
func languageMarkup(exclude string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var btns []tele.Btn
	for _, lang := range languages {
		if lang == exclude {
			continue
		}
		btns = append(btns, markup.Data("🌐 "+lang, uniqueLang, lang))
	}
	btns = append(btns, btnCancelToDicts)

	markup.Inline(arrange(markup, btns, []int{4, 3, 2, 1})...)
	return markup
}
