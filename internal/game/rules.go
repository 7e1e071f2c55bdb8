package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"word-game-service/domain"
)

// LetterRule, zincirdeki bir sonraki kelimenin baş harfinin önceki kelimenin
// hangi harfinden türetileceğini belirler.
type LetterRule string

const (
	LetterRuleFirst  LetterRule = "first"
	LetterRuleMiddle LetterRule = "middle"
	LetterRuleLast   LetterRule = "last"
)

// ParseLetterRule, config'den gelen değeri doğrular. Bilinmeyen değerde
// varsayılan olan "last" kuralına döner.
func ParseLetterRule(s string) LetterRule {
	switch LetterRule(strings.ToLower(s)) {
	case LetterRuleFirst, LetterRuleMiddle, LetterRuleLast:
		return LetterRule(strings.ToLower(s))
	}
	return LetterRuleLast
}

// RequiredLetter, önceki kelimeye kurala göre bakar ve bir sonraki kelimenin
// başlaması gereken harfi (büyük) döndürür. Boş zincirde boş döner, yani ilk
// kelime serbesttir.
func (r LetterRule) RequiredLetter(previous string) string {
	if previous == "" {
		return ""
	}
	runes := []rune(previous)
	var ch rune
	switch r {
	case LetterRuleFirst:
		ch = runes[0]
	case LetterRuleMiddle:
		ch = runes[len(runes)/2]
	default:
		ch = runes[len(runes)-1]
	}
	return string(unicode.ToUpper(ch))
}

// ValidateWord, serbest metin cevabının yapısal kontrolü: boş olmamalı ve
// istenen harfle başlamalı. Anlamsal doğruluk hakemlik akışının işidir.
func ValidateWord(word, letter string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return fmt.Errorf("%w: empty answer", domain.ErrValidation)
	}
	if letter == "" {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(word)
	want, _ := utf8.DecodeRuneInString(letter)
	if unicode.ToUpper(first) != unicode.ToUpper(want) {
		return fmt.Errorf("%w: answer must start with '%s'", domain.ErrValidation, letter)
	}
	return nil
}

// ValidateChainWord, kelime zinciri kuralı: kelime boş olamaz, istenen harfle
// başlamalı ve zincirde daha önce (büyük/küçük harf farkı gözetmeden)
// kullanılmamış olmalı. Tekrar kontrolü harf kontrolünden önce gelir; tekrar
// eden kelime harfi tutsa bile reddedilir.
func ValidateChainWord(word, required string, used map[string]bool) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return fmt.Errorf("%w: empty word", domain.ErrValidation)
	}
	if used[strings.ToLower(word)] {
		return fmt.Errorf("%w: word '%s' was already used", domain.ErrValidation, word)
	}
	return ValidateWord(word, required)
}
