package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration (info)
		"Starting run: %d scenes":              "実行を開始します: %d シーン",
		"Decoding %s":                          "%s をデコード中",
		"Compositing %d scenes":                "%d シーンを合成中",
		"Exporting %d images":                  "%d 枚の画像を書き出し中",
		"Wrote %s (%dx%d, %d bytes)":           "%s を書き出しました (%dx%d, %d バイト)",
		"Run completed in %d ms":               "実行が %d ms で完了しました",
		"Rendering %s":                         "%s をレンダリング中",
		"Loaded %d fonts from %s (%d skipped)": "%[2]s から %[1]d 個のフォントを読み込みました (%[3]d 個スキップ)",
		"Summary saved to %s":                  "サマリーを %s に保存しました",

		// Stages (debug)
		"Decoded %s: %dx%d at %.2gx":                     "%s をデコードしました: %dx%d (%.2g倍)",
		"Compositing %d scenes with %d workers":          "%d シーンを %d ワーカーで合成中",
		"Scene %s composed: %dx%d, %d overlays in %d ms": "シーン %s を合成しました: %dx%d, オーバーレイ %d 個, %d ms",
		"Composition completed":                          "合成が完了しました",

		// Warnings
		"Font family %q not found, using default": "フォントファミリー %q が見つかりません。既定のフォントを使用します",
		"Failed to save debug output: %v":         "デバッグ出力の保存に失敗しました: %v",
		"Interrupted, shutting down...":           "中断されました。シャットダウン中...",

		// Errors
		"Failed to decode %s: %v":     "%s のデコードに失敗しました: %v",
		"Failed to composite: %v":     "合成に失敗しました: %v",
		"Failed to write output: %v":  "出力の書き込みに失敗しました: %v",
		"Failed to write summary: %v": "サマリーの書き込みに失敗しました: %v",
	})
}
