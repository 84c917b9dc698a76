//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go_langlearn_quiz/internal/config"
	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/quiz"
	"go_langlearn_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	StartSession(ctx context.Context, userID *uuid.UUID, req *model.PostQuizSessionRequest) (quiz.Snapshot, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	NextCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	PreviousCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	RepeatCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	RevealCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	TogglePause(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	Reshuffle(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}

// quizService はインメモリのセッションレジストリを持つクイズ進行サービスです。
// セッションはサーバ再起動で消える揮発データとして扱います。
type quizService struct {
	db          *gorm.DB
	phraseRepo  repository.PhraseRepository
	objectRepo  repository.ObjectRepository
	settingSvc  SettingService
	clock       quiz.Clock
	idleTimeout time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*quiz.Session
}

func NewQuizService(db *gorm.DB, phraseRepo repository.PhraseRepository, objectRepo repository.ObjectRepository, settingSvc SettingService, clock quiz.Clock) QuizService {
	return &quizService{
		db:          db,
		phraseRepo:  phraseRepo,
		objectRepo:  objectRepo,
		settingSvc:  settingSvc,
		clock:       clock,
		idleTimeout: config.SessionIdleMinutes * time.Minute,
		sessions:    make(map[uuid.UUID]*quiz.Session),
	}
}

func (s *quizService) StartSession(ctx context.Context, userID *uuid.UUID, req *model.PostQuizSessionRequest) (quiz.Snapshot, error) {
	logger := middleware.GetLogger(ctx)

	items, err := s.loadItems(ctx, req.Kind)
	if err != nil {
		logger.Error("Error loading quiz items", "error", err, "kind", string(req.Kind))
		return quiz.Snapshot{}, model.ErrInternalServer
	}

	order := quiz.OrderRandom
	if req.Random != nil && !*req.Random {
		order = quiz.OrderSequential
	}

	rng := rand.New(rand.NewSource(s.clock.Now().UnixNano()))
	session := quiz.NewSession(uuid.New(), req.Kind, req.PromptLanguage, s.countdownSecondsFn(userID, req.CountdownSeconds), items, order, s.clock, rng)

	s.mu.Lock()
	s.reapIdleLocked()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	logger.Info("Quiz session started",
		"session_id", session.ID.String(),
		"kind", string(req.Kind),
		"prompt_language", string(req.PromptLanguage),
		"items", len(items),
	)
	return session.Snapshot(), nil
}

func (s *quizService) GetSession(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *quizService) NextCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.Next(), nil
}

func (s *quizService) PreviousCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.Previous(), nil
}

func (s *quizService) RepeatCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.Repeat(), nil
}

func (s *quizService) RevealCard(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.RevealNow(), nil
}

func (s *quizService) TogglePause(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.TogglePause(), nil
}

func (s *quizService) Reshuffle(ctx context.Context, sessionID uuid.UUID) (quiz.Snapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.Reshuffle(), nil
}

func (s *quizService) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return model.ErrNotFound
	}
	session.Close()
	return nil
}

// loadItems は出題種別に応じたアイテム一覧をDBから読み込みます
func (s *quizService) loadItems(ctx context.Context, kind model.ItemKind) ([]model.ReviewItem, error) {
	switch kind {
	case model.KindPhrase:
		phrases, err := s.phraseRepo.FindAll(ctx, s.db)
		if err != nil {
			return nil, err
		}
		items := make([]model.ReviewItem, 0, len(phrases))
		for _, p := range phrases {
			items = append(items, p)
		}
		return items, nil
	case model.KindObject:
		objects, err := s.objectRepo.FindAll(ctx, s.db)
		if err != nil {
			return nil, err
		}
		items := make([]model.ReviewItem, 0, len(objects))
		for _, o := range objects {
			items = append(items, o)
		}
		return items, nil
	}
	return nil, model.ErrInvalidInput
}

// countdownSecondsFn はカード開始のたびに評価される秒数プロバイダを返します。
// 秒数は リクエスト指定 → ユーザー設定 → デフォルト の順で決まり、
// リクエスト指定があればセッション中は固定、ログイン済みなら保存済み設定を
// 都度読み直します。設定変更は次の新しいカードから反映されます。
func (s *quizService) countdownSecondsFn(userID *uuid.UUID, override *int) func() int {
	if override != nil {
		seconds := model.ClampCountdownSeconds(*override)
		return func() int { return seconds }
	}
	if userID == nil {
		return func() int { return model.DefaultCountdownSeconds }
	}

	// セッションは開始リクエストより長生きするため、コンテキストは毎回作る。
	// 読み直しに失敗した場合は最後に取得できた値を使い続ける。
	uid := *userID
	last := model.DefaultCountdownSeconds
	return func() int {
		seconds, err := s.settingSvc.GetCountdownSeconds(context.Background(), uid)
		if err != nil {
			return last
		}
		last = seconds
		return seconds
	}
}

func (s *quizService) lookup(sessionID uuid.UUID) (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return session, nil
}

// reapIdleLocked は一定時間操作のないセッションを回収します。s.mu を保持して呼ぶこと。
func (s *quizService) reapIdleLocked() {
	now := s.clock.Now()
	for id, session := range s.sessions {
		if now.Sub(session.LastTouched()) > s.idleTimeout {
			session.Close()
			delete(s.sessions, id)
		}
	}
}
