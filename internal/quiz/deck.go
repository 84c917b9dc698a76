// internal/quiz/deck.go
package quiz

import (
	"math/rand"

	"go_langlearn_quiz/internal/model"
)

// Order はデッキの出題順です
type Order string

const (
	OrderSequential Order = "sequential"
	OrderRandom     Order = "random"
)

// Deck はクイズ1回分の出題列とカーソルを保持します。
// 空デッキも正常な状態として扱います（Current が false を返すだけ）。
type Deck struct {
	items  []model.ReviewItem
	cursor int
	order  Order
}

// NewDeck はアイテム列からデッキを構築します。
// order が OrderRandom の場合は rng でシャッフルしたコピーを保持します（元スライスは変更しない）。
func NewDeck(items []model.ReviewItem, order Order, rng *rand.Rand) *Deck {
	copied := make([]model.ReviewItem, len(items))
	copy(copied, items)
	if order == OrderRandom {
		rng.Shuffle(len(copied), func(i, j int) {
			copied[i], copied[j] = copied[j], copied[i]
		})
	}
	return &Deck{items: copied, cursor: 0, order: order}
}

// Current は現在位置のアイテムを返します。空デッキの場合は ok=false。
func (d *Deck) Current() (model.ReviewItem, bool) {
	if len(d.items) == 0 {
		return nil, false
	}
	return d.items[d.cursor], true
}

// Advance はカーソルを1つ進めます。末尾の次は先頭に戻ります。
func (d *Deck) Advance() {
	if len(d.items) == 0 {
		return
	}
	d.cursor = (d.cursor + 1) % len(d.items)
}

// Retreat はカーソルを1つ戻します。先頭の前は末尾に戻ります。
func (d *Deck) Retreat() {
	if len(d.items) == 0 {
		return
	}
	d.cursor = (d.cursor - 1 + len(d.items)) % len(d.items)
}

// Reshuffle は同じアイテム集合を rng で並べ替え、カーソルを先頭に戻します。
// 順次モードのデッキでは並び替えず、カーソルのリセットのみ行います。
func (d *Deck) Reshuffle(rng *rand.Rand) {
	if d.order == OrderRandom {
		rng.Shuffle(len(d.items), func(i, j int) {
			d.items[i], d.items[j] = d.items[j], d.items[i]
		})
	}
	d.cursor = 0
}

func (d *Deck) Len() int {
	return len(d.items)
}

func (d *Deck) Cursor() int {
	return d.cursor
}

func (d *Deck) Order() Order {
	return d.order
}
