package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatch(t *testing.T) {
	b := Default()
	tests := []struct {
		header string
		want   Locale
	}{
		{"", LocaleEn},
		{"ko", LocaleKo},
		{"ko-KR,ko;q=0.9,en-US;q=0.8", LocaleKo},
		{"en-US,en;q=0.9", LocaleEn},
		{"fr-FR,ko;q=0.5", LocaleKo},
		{"fr-FR,fr;q=0.9", LocaleEn}, // unsupported → fallback
	}

	for _, tt := range tests {
		if got := b.Match(tt.header); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	b := Default()

	if got := b.T(LocaleEn, "validation.title.empty"); got != "Title is required" {
		t.Errorf("en title.empty = %q", got)
	}
	if got := b.T(LocaleKo, "validation.comment.too_long"); got != "댓글은 255자 이하로 입력해주세요" {
		t.Errorf("ko comment.too_long = %q", got)
	}

	b.LoadMessages(LocaleEn, map[string]string{"only.en": "english"})
	if got := b.T(LocaleKo, "only.en"); got != "english" {
		t.Errorf("fallback = %q, want english", got)
	}
	if got := b.T(LocaleKo, "missing.key"); got != "missing.key" {
		t.Errorf("missing key = %q", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	msgs := DefaultMessages()
	for key := range msgs[LocaleEn] {
		if _, ok := msgs[LocaleKo][key]; !ok {
			t.Errorf("ko missing key %q", key)
		}
	}
	for key := range msgs[LocaleKo] {
		if _, ok := msgs[LocaleEn][key]; !ok {
			t.Errorf("en missing key %q", key)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"validation.title.empty":"Please add a title"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	b := Default()
	if err := b.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := b.T(LocaleEn, "validation.title.empty"); got != "Please add a title" {
		t.Errorf("override = %q", got)
	}
	if got := b.T(LocaleEn, "validation.body.empty"); got != "Body is required" {
		t.Errorf("untouched key = %q", got)
	}
}

func TestLoadDir_BadJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ko.json"), []byte(`{`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Default().LoadDir(dir); err == nil {
		t.Error("expected parse error")
	}
}
