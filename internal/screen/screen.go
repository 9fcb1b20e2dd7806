// Package screen はSPAの各ページに相当する画面層。
// 画面はstoreを読み、usecaseを呼び、io.Writerにテキストを描画する。
// 通信エラーで落ちることはなく、空表示＋エラーメッセージに倒す。
package screen

import (
	"fmt"
	"io"

	"storefront/internal/usecase"
)

// 金額表示（通貨は"Rs"固定）
func money(amount float64) string {
	return fmt.Sprintf("%s.%.2f", usecase.Currency, amount)
}

func errorLine(out io.Writer, msg string) {
	fmt.Fprintf(out, "! %s\n", msg)
}
