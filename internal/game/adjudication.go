package game

import (
	"context"
	"fmt"

	"word-game-service/domain"

	"github.com/google/uuid"
)

// Judge, serbest metin cevabının anlamsal doğruluğuna karar veren dış
// servis. Saf bir fonksiyon gibi davranır: (kategori, harf, metin) -> karar.
type Judge interface {
	Check(ctx context.Context, prompt, letter, text string) (Verdict, error)
}

// Adjudicator, oyun sonrası hakemlik akışı: otomatik kontrol -> topluluk
// oyu -> yönetici kararı. Bütün işlemler terminal oturum ister; oturumu
// yeniden açmaz, sadece cevapların karar alanlarına ekleme yapar.
type Adjudicator struct {
	judge Judge
}

func NewAdjudicator(judge Judge) *Adjudicator {
	return &Adjudicator{judge: judge}
}

func (s *Session) findAnswerLocked(answerID uuid.UUID) (*Answer, error) {
	answer, ok := s.answers[answerID]
	if !ok {
		return nil, fmt.Errorf("%w: answer %s", domain.ErrNotFound, answerID)
	}
	return answer, nil
}

func (s *Session) questionLocked(questionID uuid.UUID) *Question {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			return &s.questions[i]
		}
	}
	return nil
}

// RequestAutomatedCheck, cevabı dış hakeme gönderir ve sonucu otomatik
// karar olarak kaydeder. Tekrarlanabilir: yeni çağrı eski kararın üzerine
// yazar, geçmiş biriktirmez. Hakem çağrısı sırasında oda kilidi tutulmaz;
// kilit sadece sonucu yazarken alınır.
func (a *Adjudicator) RequestAutomatedCheck(ctx context.Context, s *Session, answerID uuid.UUID) (*Verdict, error) {
	s.mu.Lock()
	if !s.terminal {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: session is not finished", domain.ErrInvalidState)
	}
	answer, err := s.findAnswerLocked(answerID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	var prompt, letter string
	if q := s.questionLocked(answer.QuestionID); q != nil {
		prompt, letter = q.Prompt, q.Letter
	}
	text := answer.Text
	s.mu.Unlock()

	verdict, err := a.judge.Check(ctx, prompt, letter, text)
	if err != nil {
		return nil, fmt.Errorf("%w: judge call failed: %v", domain.ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	answer, err = s.findAnswerLocked(answerID)
	if err != nil {
		// Cevap bu arada veto edilmiş olabilir.
		return nil, err
	}
	answer.Auto = &Verdict{Correct: verdict.Correct, Explanation: verdict.Explanation}
	s.publisher.Publish(s.Name, EventVerdictUpdated, map[string]interface{}{
		"answer_id": answerID,
		"correct":   verdict.Correct,
	})
	return answer.Auto, nil
}

// RequestCommunityVote, cevabı oylamaya açar. Sadece cevabın sahibi, sadece
// bir kez isteyebilir ve önce otomatik kontrol yapılmış olmalıdır.
func (a *Adjudicator) RequestCommunityVote(s *Session, answerID uuid.UUID, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.terminal {
		return fmt.Errorf("%w: session is not finished", domain.ErrInvalidState)
	}
	answer, err := s.findAnswerLocked(answerID)
	if err != nil {
		return err
	}
	if answer.Username != requester {
		return fmt.Errorf("%w: only the answer's owner can request a vote", domain.ErrUnauthorized)
	}
	if answer.VoteRequested {
		return fmt.Errorf("%w: vote already requested for this answer", domain.ErrConflict)
	}
	if answer.Auto == nil {
		return fmt.Errorf("%w: check with the automated judge first", domain.ErrInvalidState)
	}

	answer.VoteRequested = true
	s.publisher.Publish(s.Name, EventVerdictUpdated, map[string]interface{}{
		"answer_id":      answerID,
		"vote_requested": true,
	})
	return nil
}

// CastVote, bir kullanıcının oyunu kaydeder. Aynı kullanıcının ikinci oyu
// öncekinin üzerine yazar; çift sayım olmaz.
func (a *Adjudicator) CastVote(s *Session, answerID uuid.UUID, voter string, yes bool) (voteYes, voteNo int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.terminal {
		return 0, 0, fmt.Errorf("%w: session is not finished", domain.ErrInvalidState)
	}
	answer, err := s.findAnswerLocked(answerID)
	if err != nil {
		return 0, 0, err
	}
	if !answer.VoteRequested {
		return 0, 0, fmt.Errorf("%w: voting was not requested for this answer", domain.ErrInvalidState)
	}

	answer.Votes[voter] = yes
	s.publisher.Publish(s.Name, EventVerdictUpdated, map[string]interface{}{
		"answer_id": answerID,
		"vote_yes":  answer.VoteYes(),
		"vote_no":   answer.VoteNo(),
	})
	return answer.VoteYes(), answer.VoteNo(), nil
}

// Override, yönetici kararı: oy ve otomatik sonuçları atlayarak nihai
// kararı koşulsuz belirler. Arayüzün "Admin Override" gösterebilmesi için
// ayrı bir alanda tutulur.
func (a *Adjudicator) Override(s *Session, answerID uuid.UUID, adminName string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.terminal {
		return fmt.Errorf("%w: session is not finished", domain.ErrInvalidState)
	}
	admin := s.adminLocked()
	if admin == nil || admin.Username != adminName {
		return fmt.Errorf("%w: only the room admin can override verdicts", domain.ErrUnauthorized)
	}
	answer, err := s.findAnswerLocked(answerID)
	if err != nil {
		return err
	}

	answer.Override = &value
	s.publisher.Publish(s.Name, EventVerdictUpdated, map[string]interface{}{
		"answer_id":      answerID,
		"admin_override": true,
		"override_value": value,
	})
	return nil
}

// Records, hakemlik ekranı için bütün cevapları karar alanlarıyla birlikte
// döndürür.
func (s *Session) Records() []domain.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.AnswerRecord, 0, len(s.answers))
	if s.Kind == KindWordChain {
		// Zincir cevapları kabul sırasına göre listelenir.
		for _, cw := range s.chain {
			if answer, ok := s.answers[cw.AnswerID]; ok {
				records = append(records, s.recordLocked(answer))
			}
		}
		return records
	}
	for _, q := range s.questions {
		for _, p := range s.players {
			if answer, ok := s.byKey[answerKey{questionID: q.ID, username: p.Username}]; ok {
				records = append(records, s.recordLocked(answer))
			}
		}
	}
	return records
}

func (s *Session) recordLocked(answer *Answer) domain.AnswerRecord {
	record := domain.AnswerRecord{
		ID:            answer.ID,
		RoomName:      s.Name,
		QuestionID:    answer.QuestionID,
		Username:      answer.Username,
		Word:          answer.Text,
		VoteRequested: answer.VoteRequested,
		VoteYes:       answer.VoteYes(),
		VoteNo:        answer.VoteNo(),
		SubmittedAt:   answer.SubmittedAt,
	}
	if q := s.questionLocked(answer.QuestionID); q != nil {
		record.QuestionPrompt = q.Prompt
		record.Letter = q.Letter
	}
	if answer.Auto != nil {
		record.AutoChecked = true
		record.AutoCorrect = answer.Auto.Correct
		record.AutoExplanation = answer.Auto.Explanation
	}
	if answer.Override != nil {
		record.AdminOverride = true
		record.OverrideValue = *answer.Override
	}
	return record
}
