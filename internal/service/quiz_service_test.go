// internal/service/quiz_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/quiz"
	repomocks "go_langlearn_quiz/internal/repository/mocks"
	svcmocks "go_langlearn_quiz/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- テスト用の時計 ---
// 実時間に依存せず、Nowを手で進められるようにします。
// AfterFuncで予約されたティックはこのテストでは発火させません
// (カウントダウンの進行自体は quiz パッケージ側でテスト済み)。

type stubTimer struct{}

func (stubTimer) Stop() bool { return false }

type stubClock struct {
	now time.Time
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time {
	return c.now
}

func (c *stubClock) AfterFunc(d time.Duration, f func()) quiz.Timer {
	return stubTimer{}
}

func (c *stubClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func testPhrases(n int) []*model.Phrase {
	phrases := make([]*model.Phrase, 0, n)
	for i := 0; i < n; i++ {
		phrases = append(phrases, &model.Phrase{
			PhraseID:   uuid.New(),
			LangEn:     "phrase",
			LangJa:     "フレーズ",
			LangJaHira: strPtr("ふれーず"),
			LangMy:     "စကားစု",
		})
	}
	return phrases
}

// --- Test StartSession ---
func Test_quizService_StartSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	tests := []struct {
		name        string
		userID      *uuid.UUID
		req         *model.PostQuizSessionRequest
		setupMock   func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService)
		wantErr     error
		wantTotal   int
		wantOrder   quiz.Order
		wantSeconds int // 先頭カードのRemainingで検証
	}{
		{
			name:   "正常系: フレーズのセッション開始 (デフォルト5秒・シャッフルあり)",
			userID: nil,
			req: &model.PostQuizSessionRequest{
				Kind:           model.KindPhrase,
				PromptLanguage: model.LangEnglish,
			},
			setupMock: func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService) {
				phraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(testPhrases(3), nil).Once()
			},
			wantErr:     nil,
			wantTotal:   3,
			wantOrder:   quiz.OrderRandom,
			wantSeconds: model.DefaultCountdownSeconds,
		},
		{
			name:   "正常系: random=falseで順番どおり出題",
			userID: nil,
			req: &model.PostQuizSessionRequest{
				Kind:           model.KindPhrase,
				PromptLanguage: model.LangJapanese,
				Random:         boolPtr(false),
			},
			setupMock: func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService) {
				phraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(testPhrases(2), nil).Once()
			},
			wantErr:     nil,
			wantTotal:   2,
			wantOrder:   quiz.OrderSequential,
			wantSeconds: model.DefaultCountdownSeconds,
		},
		{
			name:   "正常系: リクエストの秒数指定が優先される (範囲外は丸める)",
			userID: &userID,
			req: &model.PostQuizSessionRequest{
				Kind:             model.KindPhrase,
				PromptLanguage:   model.LangEnglish,
				CountdownSeconds: intPtr(99),
			},
			setupMock: func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService) {
				phraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(testPhrases(1), nil).Once()
				// 指定があるのでユーザー設定は参照されない
			},
			wantErr:     nil,
			wantTotal:   1,
			wantOrder:   quiz.OrderRandom,
			wantSeconds: model.MaxCountdownSeconds,
		},
		{
			name:   "正常系: ログイン済みならユーザー設定の秒数を使う",
			userID: &userID,
			req: &model.PostQuizSessionRequest{
				Kind:           model.KindPhrase,
				PromptLanguage: model.LangBurmese,
			},
			setupMock: func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService) {
				phraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(testPhrases(1), nil).Once()
				settingSvc.On("GetCountdownSeconds", ctx, userID).
					Return(12, nil).Once()
			},
			wantErr:     nil,
			wantTotal:   1,
			wantOrder:   quiz.OrderRandom,
			wantSeconds: 12,
		},
		{
			name:   "正常系: アイテム0件でもセッションは開始できる (カードはnull)",
			userID: nil,
			req: &model.PostQuizSessionRequest{
				Kind:           model.KindPhrase,
				PromptLanguage: model.LangEnglish,
			},
			setupMock: func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService) {
				phraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Phrase{}, nil).Once()
			},
			wantErr:   nil,
			wantTotal: 0,
			wantOrder: quiz.OrderRandom,
		},
		{
			name:   "異常系: アイテム読み込みでDBエラー",
			userID: nil,
			req: &model.PostQuizSessionRequest{
				Kind:           model.KindPhrase,
				PromptLanguage: model.LangEnglish,
			},
			setupMock: func(phraseRepo *repomocks.PhraseRepository, objectRepo *repomocks.ObjectRepository, settingSvc *svcmocks.SettingService) {
				phraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(nil, errors.New("db error on find all")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPhraseRepo := new(repomocks.PhraseRepository)
			mockObjectRepo := new(repomocks.ObjectRepository)
			mockSettingSvc := new(svcmocks.SettingService)
			if tt.setupMock != nil {
				tt.setupMock(mockPhraseRepo, mockObjectRepo, mockSettingSvc)
			}
			quizService := NewQuizService(db, mockPhraseRepo, mockObjectRepo, mockSettingSvc, newStubClock())

			snap, err := quizService.StartSession(ctx, tt.userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, snap.SessionID)
				assert.Equal(t, tt.req.Kind, snap.Kind)
				assert.Equal(t, tt.req.PromptLanguage, snap.PromptLanguage)
				assert.Equal(t, tt.wantOrder, snap.Order)
				assert.Equal(t, tt.wantTotal, snap.Total)
				if tt.wantTotal == 0 {
					assert.Nil(t, snap.Card)
				} else {
					require.NotNil(t, snap.Card)
					assert.Equal(t, tt.wantSeconds, snap.Card.Remaining)
					assert.False(t, snap.Card.Revealed)
					assert.Empty(t, snap.Card.Fields)
				}
			}

			mockPhraseRepo.AssertExpectations(t)
			mockObjectRepo.AssertExpectations(t)
			mockSettingSvc.AssertExpectations(t)
		})
	}
}

// --- Test StartSession (objects) ---
func Test_quizService_StartSession_Objects(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockPhraseRepo := new(repomocks.PhraseRepository)
	mockObjectRepo := new(repomocks.ObjectRepository)
	mockSettingSvc := new(svcmocks.SettingService)
	quizService := NewQuizService(db, mockPhraseRepo, mockObjectRepo, mockSettingSvc, newStubClock())

	imageURL := "/media/objects/apple.jpg"
	objects := []*model.ObjectItem{
		{
			ObjectID:    uuid.New(),
			ImageURL:    &imageURL,
			LabelEn:     "Apple",
			LabelJa:     "りんご",
			LabelJaHira: strPtr("りんご"),
			LabelMy:     "ပန်းသီး",
		},
	}
	mockObjectRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(objects, nil).Once()

	snap, err := quizService.StartSession(ctx, nil, &model.PostQuizSessionRequest{
		Kind:           model.KindObject,
		PromptLanguage: model.LangEnglish,
	})

	require.NoError(t, err)
	assert.Equal(t, model.KindObject, snap.Kind)
	require.NotNil(t, snap.Card)
	assert.Equal(t, "Apple", snap.Card.Prompt)
	require.NotNil(t, snap.Card.ImageURL)
	assert.Equal(t, imageURL, *snap.Card.ImageURL)

	mockObjectRepo.AssertExpectations(t)
	mockPhraseRepo.AssertNotCalled(t, "FindAll")
}

// --- Test セッション操作のライフサイクル ---
func Test_quizService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockPhraseRepo := new(repomocks.PhraseRepository)
	mockObjectRepo := new(repomocks.ObjectRepository)
	mockSettingSvc := new(svcmocks.SettingService)
	quizService := NewQuizService(db, mockPhraseRepo, mockObjectRepo, mockSettingSvc, newStubClock())

	mockPhraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(testPhrases(3), nil).Once()

	started, err := quizService.StartSession(ctx, nil, &model.PostQuizSessionRequest{
		Kind:           model.KindPhrase,
		PromptLanguage: model.LangEnglish,
		Random:         boolPtr(false),
	})
	require.NoError(t, err)
	sessionID := started.SessionID

	t.Run("正常系: GetSessionで同じ状態が取れる", func(t *testing.T) {
		snap, err := quizService.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, sessionID, snap.SessionID)
		assert.Equal(t, 0, snap.Index)
	})

	t.Run("正常系: NextCardで次のカードへ進む", func(t *testing.T) {
		snap, err := quizService.NextCard(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.Index)
		require.NotNil(t, snap.Card)
		assert.Equal(t, model.DefaultCountdownSeconds, snap.Card.Remaining)
	})

	t.Run("正常系: PreviousCardで前のカードへ戻る", func(t *testing.T) {
		snap, err := quizService.PreviousCard(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 0, snap.Index)
	})

	t.Run("正常系: RevealCardで即公開され翻訳が含まれる", func(t *testing.T) {
		snap, err := quizService.RevealCard(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, snap.Card)
		assert.True(t, snap.Card.Revealed)
		assert.NotEmpty(t, snap.Card.Fields)
	})

	t.Run("正常系: RepeatCardでカウントダウンをやり直す", func(t *testing.T) {
		snap, err := quizService.RepeatCard(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, snap.Card)
		assert.False(t, snap.Card.Revealed)
		assert.Equal(t, model.DefaultCountdownSeconds, snap.Card.Remaining)
	})

	t.Run("正常系: TogglePauseで一時停止する", func(t *testing.T) {
		snap, err := quizService.TogglePause(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, snap.Card)
		assert.True(t, snap.Card.Paused)
	})

	t.Run("正常系: Reshuffleで先頭から再開する", func(t *testing.T) {
		snap, err := quizService.Reshuffle(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 0, snap.Index)
		require.NotNil(t, snap.Card)
		assert.False(t, snap.Card.Paused)
	})

	t.Run("正常系: CloseSessionで削除され以後は404相当", func(t *testing.T) {
		err := quizService.CloseSession(ctx, sessionID)
		require.NoError(t, err)

		_, err = quizService.GetSession(ctx, sessionID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test セッション中の秒数設定変更 ---
func Test_quizService_CountdownSettingRefresh(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	mockPhraseRepo := new(repomocks.PhraseRepository)
	mockSettingSvc := new(svcmocks.SettingService)
	quizService := NewQuizService(db, mockPhraseRepo, new(repomocks.ObjectRepository), mockSettingSvc, newStubClock())

	mockPhraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(testPhrases(2), nil).Once()
	// セッション中にユーザーが設定を 5 → 9 に変更した想定
	mockSettingSvc.On("GetCountdownSeconds", ctx, userID).Return(5, nil).Once()
	mockSettingSvc.On("GetCountdownSeconds", ctx, userID).Return(9, nil).Twice()

	started, err := quizService.StartSession(ctx, &userID, &model.PostQuizSessionRequest{
		Kind:           model.KindPhrase,
		PromptLanguage: model.LangEnglish,
		Random:         boolPtr(false),
	})
	require.NoError(t, err)
	require.NotNil(t, started.Card)
	assert.Equal(t, 5, started.Card.Remaining)

	// 進行中のカードには影響しない
	snap, err := quizService.GetSession(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Card.Remaining)

	// 次のカードから新しい秒数が使われる
	snap, err = quizService.NextCard(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 9, snap.Card.Remaining)

	snap, err = quizService.RepeatCard(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 9, snap.Card.Remaining)

	mockSettingSvc.AssertExpectations(t)
	mockPhraseRepo.AssertExpectations(t)
}

// --- Test 存在しないセッションID ---
func Test_quizService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	quizService := NewQuizService(db, new(repomocks.PhraseRepository), new(repomocks.ObjectRepository), new(svcmocks.SettingService), newStubClock())

	unknownID := uuid.New()

	_, err := quizService.GetSession(ctx, unknownID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = quizService.NextCard(ctx, unknownID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = quizService.CloseSession(ctx, unknownID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// --- Test アイドルセッションの回収 ---
func Test_quizService_IdleSessionReaping(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockPhraseRepo := new(repomocks.PhraseRepository)
	clock := newStubClock()
	quizService := NewQuizService(db, mockPhraseRepo, new(repomocks.ObjectRepository), new(svcmocks.SettingService), clock)

	mockPhraseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(testPhrases(1), nil).Twice()

	// 1つ目のセッションを開始してから、アイドル上限を超えて時間を進める
	first, err := quizService.StartSession(ctx, nil, &model.PostQuizSessionRequest{
		Kind:           model.KindPhrase,
		PromptLanguage: model.LangEnglish,
	})
	require.NoError(t, err)

	clock.advance(31 * time.Minute)

	// 2つ目のセッション開始時に回収が走る
	second, err := quizService.StartSession(ctx, nil, &model.PostQuizSessionRequest{
		Kind:           model.KindPhrase,
		PromptLanguage: model.LangEnglish,
	})
	require.NoError(t, err)

	_, err = quizService.GetSession(ctx, first.SessionID)
	assert.ErrorIs(t, err, model.ErrNotFound, "idle session should be reaped")

	_, err = quizService.GetSession(ctx, second.SessionID)
	assert.NoError(t, err)

	mockPhraseRepo.AssertExpectations(t)
}
