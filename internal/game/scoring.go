package game

// FinalVerdict, bir cevabın nihai kararını çözer. Öncelik sırası: yönetici
// kararı > sonuçlanmış topluluk oyu (basit çoğunluk) > otomatik karar.
// Hiçbiri yoksa cevap beklemededir ve karar verilmemiş sayılır.
func FinalVerdict(a *Answer) (correct bool, decided bool) {
	if a == nil {
		return false, false
	}
	if a.Override != nil {
		return *a.Override, true
	}
	if a.VoteRequested {
		yes, no := a.VoteYes(), a.VoteNo()
		if yes+no > 0 && yes != no {
			return yes > no, true
		}
	}
	if a.Auto != nil {
		return a.Auto.Correct, true
	}
	return false, false
}

// ComputeScores, sabit bir cevap kümesinden oyuncu toplamlarını hesaplar.
// Nihai kararı doğru olan her cevap 1 puandır; bekleyen cevaplar 0 sayılır.
// Fonksiyon saftır: aynı girdiyle kaç kez çağrılırsa çağrılsın aynı sonucu
// verir.
func ComputeScores(answers []*Answer) map[string]int {
	scores := make(map[string]int)
	for _, a := range answers {
		if correct, decided := FinalVerdict(a); decided && correct {
			scores[a.Username]++
		} else {
			// Oyuncu haritada görünsün, puanı değişmesin.
			scores[a.Username] += 0
		}
	}
	return scores
}

// Winners, en yüksek puanı paylaşan oyuncuların kümesini katılım sırasına
// göre döndürür. Beraberlik bozulmaz; karar çağırana bırakılır.
func Winners(players []*Player, scores map[string]int) []string {
	if len(players) == 0 {
		return nil
	}
	best := 0
	for _, p := range players {
		if s := scores[p.Username]; s > best {
			best = s
		}
	}
	var winners []string
	for _, p := range players {
		if scores[p.Username] == best {
			winners = append(winners, p.Username)
		}
	}
	return winners
}
