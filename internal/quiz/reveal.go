// internal/quiz/reveal.go
package quiz

// Reveal は1枚のカードの「カウントダウン→答え公開」状態機械です。
// 遷移は Tick / RevealNow / TogglePause のみ。公開後は再スタートせず、
// 次のカードへの移動（またはリピート）で NewReveal により作り直します。
type Reveal struct {
	Remaining int  // 残り秒数
	Paused    bool // 一時停止中か（公開時にもtrueへ倒す）
	Revealed  bool // 答えが公開済みか
}

// NewReveal は指定秒数からカウントダウンを開始する初期状態を返します
func NewReveal(seconds int) *Reveal {
	return &Reveal{Remaining: seconds}
}

// Running はカウントダウンが進行中かを返します
func (r *Reveal) Running() bool {
	return !r.Paused && !r.Revealed
}

// Tick は1秒経過を反映します。停止中・公開後は何もしません。
// 残りが0に達した時点で公開し、以後のタイマーを止めるため Paused も立てます。
func (r *Reveal) Tick() {
	if !r.Running() {
		return
	}
	if r.Remaining > 0 {
		r.Remaining--
	}
	if r.Remaining == 0 {
		r.Revealed = true
		r.Paused = true
	}
}

// RevealNow は残り時間に関わらず即座に答えを公開します
func (r *Reveal) RevealNow() {
	r.Revealed = true
	r.Paused = true
}

// TogglePause は一時停止/再開を切り替えます。公開後は無効です。
func (r *Reveal) TogglePause() {
	if r.Revealed {
		return
	}
	r.Paused = !r.Paused
}
