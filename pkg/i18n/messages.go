package i18n

// DefaultMessages returns the built-in translations. JSON files loaded with
// LoadDir override them.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleEn: enMessages,
		LocaleKo: koMessages,
	}
}

var enMessages = map[string]string{
	"validation.title.empty":      "Title is required",
	"validation.title.too_long":   "Title must be at most 255 characters",
	"validation.body.empty":       "Body is required",
	"validation.body.too_long":    "Body must be at most 255 characters",
	"validation.comment.empty":    "Comment is required",
	"validation.comment.too_long": "Comment must be at most 255 characters",
}

var koMessages = map[string]string{
	"validation.title.empty":      "제목을 입력해주세요",
	"validation.title.too_long":   "제목은 255자 이하로 입력해주세요",
	"validation.body.empty":       "본문을 입력해주세요",
	"validation.body.too_long":    "본문은 255자 이하로 입력해주세요",
	"validation.comment.empty":    "댓글을 입력해주세요",
	"validation.comment.too_long": "댓글은 255자 이하로 입력해주세요",
}
