package game

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// DefaultCategories, hiçbir özel soru seti seçilmediğinde kullanılan sabit
// kategori listesi.
var DefaultCategories = []string{"Name", "Place", "Animal", "Food", "Thing"}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomLetter, rastgele bir büyük harf döndürür.
func RandomLetter() string {
	return string(letters[rand.Intn(len(letters))])
}

// GenerateQuestions, her tur için kategori başına bir soru üretir. letter
// boş değilse bütün sorular o harfe bağlanır, boşsa her soru rastgele bir
// harf çeker.
func GenerateQuestions(prompts []string, rounds int, letter string) []Question {
	if len(prompts) == 0 {
		prompts = DefaultCategories
	}
	if rounds < 1 {
		rounds = 1
	}
	letter = strings.ToUpper(strings.TrimSpace(letter))

	questions := make([]Question, 0, rounds*len(prompts))
	for round := 1; round <= rounds; round++ {
		for _, prompt := range prompts {
			l := letter
			if l == "" {
				l = RandomLetter()
			}
			questions = append(questions, Question{
				ID:     uuid.New(),
				Prompt: prompt,
				Letter: l,
				Round:  round,
			})
		}
	}
	return questions
}
