// internal/quiz/session.go
package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"go_langlearn_quiz/internal/model"
)

// Session は1人のクイズ進行（デッキ＋現在カードの公開状態＋タイマー）を保持します。
// 全操作は s.mu で直列化します。タイマー発火もロックを取ってから状態に触れるため、
// API操作とティックが競合することはありません。
type Session struct {
	ID             uuid.UUID
	Kind           model.ItemKind
	PromptLanguage model.Language

	mu        sync.Mutex
	deck      *Deck
	reveal    *Reveal    // 空デッキの間は nil
	secondsFn func() int // カード1枚あたりのカウントダウン秒数。カード開始のたびに評価する

	clock    Clock
	timer    Timer
	timerGen uint64 // 停止済みタイマーの遅延発火を無効化する世代番号
	rng      *rand.Rand

	lastTouched time.Time
	closed      bool
}

// NewSession はデッキを構築し、先頭カードのカウントダウンを開始します。
// secondsFn はカードの開始・やり直しのたびに呼ばれるため、設定変更は
// 進行中のカウントダウンには影響せず、次の新しいカードから反映されます。
func NewSession(id uuid.UUID, kind model.ItemKind, prompt model.Language, secondsFn func() int, items []model.ReviewItem, order Order, clock Clock, rng *rand.Rand) *Session {
	s := &Session{
		ID:             id,
		Kind:           kind,
		PromptLanguage: prompt,
		deck:           NewDeck(items, order, rng),
		secondsFn:      secondsFn,
		clock:          clock,
		rng:            rng,
		lastTouched:    clock.Now(),
	}
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	return s
}

// CardSnapshot は現在カードの表示状態です
type CardSnapshot struct {
	ItemID    uuid.UUID     `json:"item_id"`
	Prompt    string        `json:"prompt"`
	ImageURL  *string       `json:"image_url,omitempty"`
	Remaining int           `json:"remaining"`
	Paused    bool          `json:"paused"`
	Revealed  bool          `json:"revealed"`
	Fields    []RevealField `json:"fields,omitempty"` // 公開後のみ設定
}

// Snapshot はセッション全体のAPIレスポンス用スナップショットです
type Snapshot struct {
	SessionID      uuid.UUID      `json:"session_id"`
	Kind           model.ItemKind `json:"kind"`
	PromptLanguage model.Language `json:"prompt_language"`
	Order          Order          `json:"order"`
	Index          int            `json:"index"`
	Total          int            `json:"total"`
	Card           *CardSnapshot  `json:"card"` // 空デッキの場合は null
}

// Snapshot は現在の状態を読み取ります
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = s.clock.Now()
	return s.snapshotLocked()
}

// Next は次のカードへ進み、カウントダウンを最初からやり直します
func (s *Session) Next() Snapshot {
	return s.mutate(func() {
		s.deck.Advance()
		s.resetLocked()
	})
}

// Previous は前のカードへ戻り、カウントダウンを最初からやり直します
func (s *Session) Previous() Snapshot {
	return s.mutate(func() {
		s.deck.Retreat()
		s.resetLocked()
	})
}

// Repeat は同じカードのカウントダウンを最初からやり直します
func (s *Session) Repeat() Snapshot {
	return s.mutate(func() {
		s.resetLocked()
	})
}

// RevealNow は残り時間に関わらず現在カードの答えを公開します
func (s *Session) RevealNow() Snapshot {
	return s.mutate(func() {
		if s.reveal == nil {
			return
		}
		s.reveal.RevealNow()
		s.disarmLocked()
	})
}

// TogglePause はカウントダウンの一時停止/再開を切り替えます。公開後は無効です。
func (s *Session) TogglePause() Snapshot {
	return s.mutate(func() {
		if s.reveal == nil {
			return
		}
		s.reveal.TogglePause()
		if s.reveal.Running() {
			s.armLocked()
		} else {
			s.disarmLocked()
		}
	})
}

// Reshuffle はデッキを並べ直して先頭から再開します
func (s *Session) Reshuffle() Snapshot {
	return s.mutate(func() {
		s.deck.Reshuffle(s.rng)
		s.resetLocked()
	})
}

// Close はタイマーを止め、以後の操作を無効化します
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.disarmLocked()
}

// LastTouched は最後にAPI操作が行われた時刻を返します（アイドル回収用）
func (s *Session) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

func (s *Session) mutate(f func()) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = s.clock.Now()
	if !s.closed {
		f()
	}
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:      s.ID,
		Kind:           s.Kind,
		PromptLanguage: s.PromptLanguage,
		Order:          s.deck.Order(),
		Index:          s.deck.Cursor(),
		Total:          s.deck.Len(),
	}
	item, ok := s.deck.Current()
	if !ok || s.reveal == nil {
		return snap
	}
	card := &CardSnapshot{
		ItemID:    item.ItemID(),
		Prompt:    PromptText(item, s.PromptLanguage),
		ImageURL:  item.Image(),
		Remaining: s.reveal.Remaining,
		Paused:    s.reveal.Paused,
		Revealed:  s.reveal.Revealed,
	}
	if s.reveal.Revealed {
		card.Fields = RevealFields(item, s.PromptLanguage)
	}
	snap.Card = card
	return snap
}

// resetLocked は現在カードのカウントダウンを初期状態から開始します
func (s *Session) resetLocked() {
	s.disarmLocked()
	if _, ok := s.deck.Current(); !ok {
		s.reveal = nil
		return
	}
	s.reveal = NewReveal(s.secondsFn())
	s.armLocked()
}

// armLocked は1秒後のティックを予約します
func (s *Session) armLocked() {
	if s.reveal == nil || !s.reveal.Running() {
		return
	}
	s.timerGen++
	gen := s.timerGen
	s.timer = s.clock.AfterFunc(time.Second, func() {
		s.onTick(gen)
	})
}

// disarmLocked は予約済みティックを取り消します。
// Stop に間に合わなかった発火は世代番号の不一致で無視されます。
func (s *Session) disarmLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
}

func (s *Session) onTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.timerGen || s.reveal == nil {
		return
	}
	s.reveal.Tick()
	if s.reveal.Running() {
		s.armLocked()
	}
}
