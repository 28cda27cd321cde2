package main

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Ordered extension table for attachment classification. Earlier entries win
// if an extension ever appears in more than one category.
var fileFormats = []struct {
	exts  []string
	label string
}{
	{[]string{"zip", "7z", "rar", "gz", "xz"}, "a compressed file"},
	{[]string{"doc", "docx", "txt", "odt", "rtf"}, "a document file"},
	{[]string{"bat", "sh", "jar", "py", "php"}, "a script file"},
	{[]string{"mid", "midi", "mp3", "ogg", "wav", "wma"}, "an audio file"},
	{[]string{"bmp", "gif", "ico", "png", "psd", "svg"}, "an image file"},
	{[]string{"dmg", "iso", "img", "ima"}, "a disk image"},
	{[]string{"avi", "mp4", "wmv", "m4v", "mpg", "mpeg"}, "a video file"},
	{[]string{"apk", "exe", "msi", "deb"}, "a program"},
}

// extsToFormat describes a message's attachments as a spoken phrase.
// Returns "" when there are no attachments so callers can skip the phrase.
func extsToFormat(attachments []*discordgo.MessageAttachment) string {
	if len(attachments) >= 2 {
		return "multiple files"
	}
	if len(attachments) == 0 {
		return ""
	}

	// No dot means the whole filename is treated as the extension; it will
	// fall through to the generic label.
	name := attachments[0].Filename
	ext := name[strings.LastIndex(name, ".")+1:]
	for _, f := range fileFormats {
		for _, e := range f.exts {
			if e == ext {
				return f.label
			}
		}
	}
	return "a file"
}

// getValue walks a nested JSON-shaped structure by the given keys: string
// keys index maps, int keys index slices. The boolean reports whether every
// step succeeded; a missing key, bad index, or wrong container type is
// uniformly "not found".
func getValue(data any, keys ...any) (any, bool) {
	for _, key := range keys {
		switch c := data.(type) {
		case map[string]any:
			k, ok := key.(string)
			if !ok {
				return nil, false
			}
			v, ok := c[k]
			if !ok {
				return nil, false
			}
			data = v
		case []any:
			i, ok := key.(int)
			if !ok || i < 0 || i >= len(c) {
				return nil, false
			}
			data = c[i]
		default:
			return nil, false
		}
	}
	return data, true
}

// getValueOr is getValue with a fallback for the not-found case.
func getValueOr(data any, def any, keys ...any) any {
	if v, ok := getValue(data, keys...); ok {
		return v
	}
	return def
}

// removeChars renders value as a string and strips every occurrence of each
// substring, in argument order.
func removeChars(value any, substrings ...string) string {
	s := fmt.Sprint(value)
	for _, sub := range substrings {
		s = strings.ReplaceAll(s, sub, "")
	}
	return s
}

type dictEntry struct {
	Key   string
	Value any
}

// sortDict copies a map into a slice of entries sorted ascending by key.
func sortDict(m map[string]any) []dictEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]dictEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, dictEntry{Key: k, Value: m[k]})
	}
	return entries
}

// Custom emoji markup, anchored at the start of a token. Trailing garbage
// after a valid tag still matches.
var (
	animatedEmojiPattern = regexp.MustCompile(`^<a:.+:\d+>`)
	staticEmojiPattern   = regexp.MustCompile(`^<:.+:\d+>`)
)

// emojiToWord rewrites custom emoji markup into words a TTS voice can say:
// "<a:wave:123>" becomes "animated emoji wave", "<:smile:456>" becomes
// "emoji smile". Everything else passes through untouched.
func emojiToWord(text string) string {
	words := strings.Split(text, " ")
	for i, word := range words {
		switch {
		case animatedEmojiPattern.MatchString(word):
			words[i] = "animated emoji " + strings.Split(word, ":")[1]
		case staticEmojiPattern.MatchString(word):
			words[i] = "emoji " + strings.Split(word, ":")[1]
		}
	}
	return strings.Join(words, " ")
}

// Helper: Parse a channel or role mention or ID into just the ID
func parseID(input string) string {
	// Handles <#channel>, <@&role>, <@role>, or raw IDs
	return strings.Trim(input, "<#@&!>")
}
